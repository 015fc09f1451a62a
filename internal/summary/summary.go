// Package summary computes the headline statistics shown on the dashboard's
// stat cards from the current chart aggregate.
package summary

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"pulseboard/domain/portfolio"
)

// Cell identifies the busiest (grouping value, region) segment.
type Cell struct {
	Value  string           `json:"value"`
	Region portfolio.Region `json:"region"`
	Count  int              `json:"count"`
}

// Summary holds headline statistics for one aggregated chart view.
type Summary struct {
	TotalRecords  int     `json:"total_records"`
	RowCount      int     `json:"row_count"`
	MaxRowTotal   int     `json:"max_row_total"`
	MeanSegment   float64 `json:"mean_segment"`
	MedianSegment float64 `json:"median_segment"`
	StdDevSegment float64 `json:"stddev_segment"`
	Busiest       Cell    `json:"busiest"`
}

// Compute derives summary statistics from chart rows. An empty aggregate is
// a normal state: all figures come back zero.
func Compute(rows []portfolio.ChartRow) Summary {
	s := Summary{RowCount: len(rows)}
	if len(rows) == 0 {
		return s
	}

	segments := make([]float64, 0, len(rows)*len(portfolio.Regions()))
	totals := make([]float64, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, float64(row.Total))
		for _, region := range portfolio.Regions() {
			count := row.Counts[region]
			segments = append(segments, float64(count))
			if count > s.Busiest.Count {
				s.Busiest = Cell{Value: row.Value, Region: region, Count: count}
			}
		}
	}

	s.TotalRecords = int(floats.Sum(totals))
	s.MaxRowTotal = int(floats.Max(totals))

	// The segment list is never empty here, so these cannot fail.
	if mean, err := stats.Mean(segments); err == nil {
		s.MeanSegment = mean
	}
	if median, err := stats.Median(segments); err == nil {
		s.MedianSegment = median
	}
	if stddev, err := stats.StandardDeviation(segments); err == nil {
		s.StdDevSegment = stddev
	}
	return s
}
