package portfolio

// Parse helpers turn untyped request input into enum values. They report
// whether the input named a known value; callers fall back to defaults on
// unknown input instead of erroring, which keeps every derivation total.

func ParseStage(s string) (Stage, bool) {
	for _, stage := range Stages() {
		if string(stage) == s {
			return stage, true
		}
	}
	return "", false
}

func ParseGranularity(s string) (Granularity, bool) {
	for _, g := range Granularities() {
		if string(g) == s {
			return g, true
		}
	}
	return "", false
}

func ParseDimension(s string) (Dimension, bool) {
	for _, d := range Dimensions() {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

func ParseRegion(s string) (Region, bool) {
	for _, r := range Regions() {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}
