package portfolio

import "time"

// ChartRow is one category-axis row of the stacked chart: a single grouping
// value with one count column per region. For a fixed grouping value the
// region counts form an exact partition of the filtered records carrying
// that value, so no record is double-counted or dropped.
type ChartRow struct {
	Value  string         `json:"value"`
	Counts map[Region]int `json:"counts"`
	Total  int            `json:"total"`
}

// CutoffFor returns the inclusive lower bound of the lookback window for a
// granularity, anchored at now.
func CutoffFor(g Granularity, now time.Time) time.Time {
	return now.AddDate(0, -g.LookbackMonths(), 0)
}

// FilterRecords keeps records matching the stage whose date is on or after
// the cutoff.
func FilterRecords(records []Record, stage Stage, cutoff time.Time) []Record {
	filtered := make([]Record, 0, len(records))
	for _, rec := range records {
		if rec.Stage != stage {
			continue
		}
		if rec.Date.Before(cutoff) {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}

// Aggregate buckets records along the grouping dimension, producing one row
// per enumerated dimension value with per-region counts. Every enumerated
// value appears in the output even when its counts are all zero, so the
// chart axis stays stable across filter changes.
func Aggregate(records []Record, d Dimension) []ChartRow {
	values := DimensionValues(d)
	rows := make([]ChartRow, len(values))
	index := make(map[string]int, len(values))
	for i, v := range values {
		rows[i] = ChartRow{Value: v, Counts: make(map[Region]int, len(Regions()))}
		for _, region := range Regions() {
			rows[i].Counts[region] = 0
		}
		index[v] = i
	}

	for _, rec := range records {
		i, ok := index[rec.DimensionValue(d)]
		if !ok {
			continue
		}
		rows[i].Counts[rec.Region]++
		rows[i].Total++
	}
	return rows
}

// DrillDown narrows filtered records to the single (dimension value, region)
// cell behind a clicked chart segment. The result is always a subset of its
// input.
func DrillDown(filtered []Record, d Dimension, value string, region Region) []Record {
	matched := make([]Record, 0)
	for _, rec := range filtered {
		if rec.DimensionValue(d) != value {
			continue
		}
		if rec.Region != region {
			continue
		}
		matched = append(matched, rec)
	}
	return matched
}
