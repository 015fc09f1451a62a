package ui

import (
	"net/http"
	"net/url"
	"time"

	"pulseboard/domain/portfolio"
	"pulseboard/internal/summary"
)

// stateFromRequest decodes the dashboard filter state from query parameters.
// Unknown enum values are ignored, so any URL yields a renderable state.
func stateFromRequest(r *http.Request) portfolio.State {
	q := r.URL.Query()
	s := portfolio.DefaultState()
	if stage, ok := portfolio.ParseStage(q.Get("stage")); ok {
		s = s.WithStage(stage)
	}
	if g, ok := portfolio.ParseGranularity(q.Get("window")); ok {
		s = s.WithGranularity(g)
	}
	if d, ok := portfolio.ParseDimension(q.Get("groupBy")); ok {
		s = s.WithDimension(d)
	}
	if value := q.Get("value"); value != "" {
		if region, ok := portfolio.ParseRegion(q.Get("region")); ok {
			s = s.WithSelection(value, region)
		}
	}
	return s
}

func queryFor(s portfolio.State) url.Values {
	v := url.Values{}
	v.Set("stage", string(s.Stage))
	v.Set("window", string(s.Granularity))
	v.Set("groupBy", string(s.Dimension))
	if s.Selection != nil {
		v.Set("value", s.Selection.Value)
		v.Set("region", string(s.Selection.Region))
	}
	return v
}

func fragmentURL(s portfolio.State) string {
	return "/fragments/board?" + queryFor(s).Encode()
}

// ControlLink is one option of a segmented control.
type ControlLink struct {
	Label  string
	URL    string
	Active bool
}

// SegmentView is one clickable region segment inside a stacked bar.
type SegmentView struct {
	Region   portfolio.Region
	Count    int
	WidthPct float64 // share of the bar's total
	URL      string
	Selected bool
}

// BarView is one category row of the stacked chart.
type BarView struct {
	Value    string
	Total    int
	WidthPct float64 // share of the widest row
	Segments []SegmentView
}

// BoardView is everything the board fragment renders: chart, stat cards and
// the drill-down table for one filter state.
type BoardView struct {
	State     portfolio.State
	Bars      []BarView
	Regions   []portfolio.Region
	Summary   summary.Summary
	TableRows []portfolio.Record

	Stages       []ControlLink
	Windows      []ControlLink
	Dimensions   []portfolio.Dimension
	DimensionURL string // base URL for the grouping dropdown; htmx appends groupBy
	ClearURL     string
	ExportURL    string
	WindowLabel  string
}

// DashboardView wraps the board for the full page render.
type DashboardView struct {
	Title string
	Board BoardView
}

// buildBoard runs the derivation pipeline for a state and shapes the result
// for the templates.
func (a *App) buildBoard(s portfolio.State) BoardView {
	cutoff := portfolio.CutoffFor(s.Granularity, a.now)
	filtered := portfolio.FilterRecords(a.records, s.Stage, cutoff)
	rows := portfolio.Aggregate(filtered, s.Dimension)
	sum := summary.Compute(rows)

	view := BoardView{
		State:       s,
		Regions:     portfolio.Regions(),
		Summary:     sum,
		Dimensions:  portfolio.Dimensions(),
		WindowLabel: windowLabel(s.Granularity),
		ClearURL:    fragmentURL(s.ClearSelection()),
		ExportURL:   "/export.xlsx?" + queryFor(s).Encode(),
	}

	for _, stage := range portfolio.Stages() {
		view.Stages = append(view.Stages, ControlLink{
			Label:  string(stage),
			URL:    fragmentURL(s.WithStage(stage)),
			Active: stage == s.Stage,
		})
	}
	for _, g := range portfolio.Granularities() {
		view.Windows = append(view.Windows, ControlLink{
			Label:  windowLabel(g),
			URL:    fragmentURL(s.WithGranularity(g)),
			Active: g == s.Granularity,
		})
	}

	// The grouping dropdown submits its own groupBy value; the base URL
	// carries the rest of the state plus the simulated-latency marker.
	dimQuery := queryFor(s.WithDimension(""))
	dimQuery.Del("groupBy")
	dimQuery.Set("simulate", "1")
	view.DimensionURL = "/fragments/board?" + dimQuery.Encode()

	view.Bars = buildBars(s, rows, sum.MaxRowTotal)

	if s.Selection != nil {
		view.TableRows = portfolio.DrillDown(filtered, s.Dimension, s.Selection.Value, s.Selection.Region)
	}
	return view
}

func buildBars(s portfolio.State, rows []portfolio.ChartRow, maxTotal int) []BarView {
	bars := make([]BarView, 0, len(rows))
	for _, row := range rows {
		bar := BarView{Value: row.Value, Total: row.Total}
		if maxTotal > 0 {
			bar.WidthPct = float64(row.Total) / float64(maxTotal) * 100
		}
		for _, region := range portfolio.Regions() {
			count := row.Counts[region]
			if count == 0 {
				continue
			}
			seg := SegmentView{
				Region: region,
				Count:  count,
				URL:    fragmentURL(s.WithSelection(row.Value, region)),
			}
			if row.Total > 0 {
				seg.WidthPct = float64(count) / float64(row.Total) * 100
			}
			if s.Selection != nil && s.Selection.Value == row.Value && s.Selection.Region == region {
				seg.Selected = true
			}
			bar.Segments = append(bar.Segments, seg)
		}
		bars = append(bars, bar)
	}
	return bars
}

func windowLabel(g portfolio.Granularity) string {
	switch g {
	case portfolio.GranularityMonth:
		return "3 months"
	case portfolio.GranularityQuarter:
		return "6 months"
	case portfolio.GranularityYear:
		return "12 months"
	default:
		return string(g)
	}
}

// dateFmt is the table display format for record dates.
func dateFmt(t time.Time) string {
	return t.Format("2006-01-02")
}
