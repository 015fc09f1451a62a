package portfolio

// Selection identifies one clicked chart segment: a grouping value plus the
// region of the clicked series.
type Selection struct {
	Value  string `json:"value"`
	Region Region `json:"region"`
}

// State is the full dashboard filter state. It is a value type: transitions
// return a new State and never mutate the receiver, which keeps handlers
// stateless and the transitions trivially testable.
type State struct {
	Stage       Stage
	Granularity Granularity
	Dimension   Dimension
	Selection   *Selection
}

// DefaultState is the view presented before any user interaction.
func DefaultState() State {
	return State{
		Stage:       StageActive,
		Granularity: GranularityMonth,
		Dimension:   DimensionIndustry,
	}
}

func (s State) WithStage(stage Stage) State {
	s.Stage = stage
	return s
}

func (s State) WithGranularity(g Granularity) State {
	s.Granularity = g
	return s
}

// WithDimension switches the grouping dimension and drops any selection,
// since a selection's value is only meaningful within its dimension.
func (s State) WithDimension(d Dimension) State {
	s.Dimension = d
	s.Selection = nil
	return s
}

func (s State) WithSelection(value string, region Region) State {
	s.Selection = &Selection{Value: value, Region: region}
	return s
}

func (s State) ClearSelection() State {
	s.Selection = nil
	return s
}

// HasSelection reports whether a chart segment is currently selected.
func (s State) HasSelection() bool {
	return s.Selection != nil
}
