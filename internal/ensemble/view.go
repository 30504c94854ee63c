package ensemble

// ViewMode selects which derived fields the chart reads from a record.
type ViewMode string

const (
	ViewAll     ViewMode = "all"
	ViewMain    ViewMode = "main"
	ViewAverage ViewMode = "avg"
	ViewSpread  ViewMode = "spread"
	ViewDensity ViewMode = "density"
)

// ParseViewMode normalizes a mode string; "average" is accepted as an alias
// for "avg". ok is false for anything unrecognized.
func ParseViewMode(s string) (ViewMode, bool) {
	switch s {
	case "all":
		return ViewAll, true
	case "main":
		return ViewMain, true
	case "avg", "average":
		return ViewAverage, true
	case "spread":
		return ViewSpread, true
	case "density":
		return ViewDensity, true
	}
	return "", false
}

// ViewFields is the contract between the engine and the charting layer: which
// record fields a given view should render.
type ViewFields struct {
	Members    bool `json:"members"`    // every individual member line
	Main       bool `json:"main"`       // the deterministic run only
	ModelMains bool `json:"modelMains"` // per-model "<modelId>_main" lines
	Avg        bool `json:"avg"`        // the mean line
	ModelMeans bool `json:"modelMeans"` // per-model "<modelId>" mean lines
	Range      bool `json:"range"`      // shaded [min, max] area
	Density    bool `json:"density"`    // the five quantile bands
}

// SelectView resolves the lookup table from (mode, comparison, circular) to
// renderable fields. Density is never available for circular variables; those
// views fall back to drawing the individual lines instead.
func SelectView(mode ViewMode, comparison, circular bool) ViewFields {
	if comparison {
		switch mode {
		case ViewAll, ViewMain:
			// "all" has no cross-model meaning; it falls back to mains
			return ViewFields{ModelMains: true}
		case ViewAverage:
			return ViewFields{Avg: true, ModelMeans: true}
		case ViewSpread:
			return ViewFields{Avg: true, Range: true}
		case ViewDensity:
			if circular {
				return ViewFields{ModelMains: true}
			}
			return ViewFields{Avg: true, Density: true}
		}
		return ViewFields{ModelMains: true}
	}

	switch mode {
	case ViewAll:
		return ViewFields{Members: true}
	case ViewMain:
		return ViewFields{Main: true}
	case ViewAverage:
		return ViewFields{Avg: true}
	case ViewSpread:
		return ViewFields{Avg: true, Range: true}
	case ViewDensity:
		if circular {
			return ViewFields{Members: true}
		}
		return ViewFields{Avg: true, Density: true}
	}
	return ViewFields{Members: true}
}
