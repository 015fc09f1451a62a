// Package portfolio holds the core record model and the pure derivation
// pipeline that turns a flat record list into chart-ready aggregates and
// drill-down rows. Nothing in this package touches I/O or clocks.
package portfolio

import "time"

// Stage is the lifecycle bucket of a project.
type Stage string

const (
	StageClosed   Stage = "Closed"
	StageActive   Stage = "Active"
	StageProposal Stage = "Proposal"
)

// Stages returns the canonical display order of lifecycle stages.
func Stages() []Stage {
	return []Stage{StageClosed, StageActive, StageProposal}
}

// Region is the delivery region a project belongs to.
type Region string

const (
	RegionEMEA  Region = "EMEA"
	RegionAPAC  Region = "APAC"
	RegionNA    Region = "NA"
	RegionLATAM Region = "LATAM"
)

// Regions returns the canonical column order used by the stacked chart.
func Regions() []Region {
	return []Region{RegionEMEA, RegionAPAC, RegionNA, RegionLATAM}
}

// Granularity selects the lookback window applied before aggregation.
type Granularity string

const (
	GranularityMonth   Granularity = "month"
	GranularityQuarter Granularity = "quarter"
	GranularityYear    Granularity = "year"
)

// Granularities returns the selectable lookback windows in display order.
func Granularities() []Granularity {
	return []Granularity{GranularityMonth, GranularityQuarter, GranularityYear}
}

// LookbackMonths maps a granularity to its window size. The "month" view is
// a rolling three-month window, not a calendar month.
func (g Granularity) LookbackMonths() int {
	switch g {
	case GranularityMonth:
		return 3
	case GranularityQuarter:
		return 6
	case GranularityYear:
		return 12
	default:
		return 12
	}
}

// Dimension is the field used to bucket records along the chart's
// category axis.
type Dimension string

const (
	DimensionIndustry Dimension = "industry"
	DimensionRegion   Dimension = "region"
	DimensionProduct  Dimension = "product"
	DimensionExpert   Dimension = "expert"
	DimensionCSAT     Dimension = "csat"
)

// Dimensions returns the groupable fields in display order.
func Dimensions() []Dimension {
	return []Dimension{DimensionIndustry, DimensionRegion, DimensionProduct, DimensionExpert, DimensionCSAT}
}

// Label returns the human-readable name of a dimension.
func (d Dimension) Label() string {
	switch d {
	case DimensionIndustry:
		return "Industry"
	case DimensionRegion:
		return "Region"
	case DimensionProduct:
		return "Product"
	case DimensionExpert:
		return "Expert"
	case DimensionCSAT:
		return "CSAT"
	default:
		return string(d)
	}
}

// Fixed value sets for the non-region grouping dimensions. These double as
// the sample space for the mock generator.
var (
	Industries = []string{"Retail", "Finance", "Healthcare", "Technology", "Energy", "Manufacturing"}
	Products   = []string{"Insights", "Automation", "Integrations", "Platform"}
	Experts    = []string{"A. Okafor", "B. Lindqvist", "C. Tanaka", "D. Mehta", "E. Novak"}
	CSATLevels = []string{"😃", "😐", "😞"}
)

// DimensionValues returns the fixed enumerated values for a dimension, in
// chart row order. Unknown dimensions yield nil rather than panicking.
func DimensionValues(d Dimension) []string {
	switch d {
	case DimensionIndustry:
		return Industries
	case DimensionRegion:
		values := make([]string, 0, len(Regions()))
		for _, r := range Regions() {
			values = append(values, string(r))
		}
		return values
	case DimensionProduct:
		return Products
	case DimensionExpert:
		return Experts
	case DimensionCSAT:
		return CSATLevels
	default:
		return nil
	}
}

// Record is a single synthetic project engagement. Records are immutable
// once generated and live in an unordered in-memory slice for the lifetime
// of the process.
type Record struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Industry string    `json:"industry"`
	Region   Region    `json:"region"`
	Stage    Stage     `json:"stage"`
	Date     time.Time `json:"date"`
	Product  string    `json:"product"`
	Expert   string    `json:"expert"`
	CSAT     string    `json:"csat"`
}

// DimensionValue returns the record's value along the given grouping
// dimension. Unknown dimensions yield the empty string.
func (r Record) DimensionValue(d Dimension) string {
	switch d {
	case DimensionIndustry:
		return r.Industry
	case DimensionRegion:
		return string(r.Region)
	case DimensionProduct:
		return r.Product
	case DimensionExpert:
		return r.Expert
	case DimensionCSAT:
		return r.CSAT
	default:
		return ""
	}
}
