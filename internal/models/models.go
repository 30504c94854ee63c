package models

import "time"

// RawSeries is one model's decoded ensemble payload: a shared time axis plus
// one value sequence per raw column, index-aligned with the axis. A nil entry
// is a missing sample. Column keys follow the upstream naming convention:
// the bare variable name is the deterministic run and "<variable>_member<NN>"
// are the perturbed runs.
type RawSeries struct {
	Time    []time.Time
	Columns map[string][]*float64
}

// Units holds the user's display unit choices. The engine receives raw values
// in metric (°C, km/h, mm, hPa) and converts on the way out.
type Units struct {
	Temperature   string `json:"temperature"`   // "celsius" or "fahrenheit"
	WindSpeed     string `json:"windSpeed"`     // "kmh", "ms", "mph" or "kn"
	Precipitation string `json:"precipitation"` // "mm" or "inch"
	Pressure      string `json:"pressure"`      // "hpa" or "inhg"
}

func DefaultUnits() Units {
	return Units{
		Temperature:   "celsius",
		WindSpeed:     "kmh",
		Precipitation: "mm",
		Pressure:      "hpa",
	}
}

// Preferences is the per-user display configuration passed into the engine on
// every call. Persistence is the store's concern, never the engine's.
type Preferences struct {
	Units    Units    `json:"units"`
	ViewMode string   `json:"viewMode"`
	Models   []string `json:"models"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Units:    DefaultUnits(),
		ViewMode: "density",
		Models:   []string{"icon_seamless", "gfs_seamless"},
	}
}

// EnsembleModel is one selectable forecast system. Selection order determines
// chart color/legend assignment and nothing else.
type EnsembleModel struct {
	ID   string
	Name string
}

var EnsembleModels = []EnsembleModel{
	{ID: "icon_seamless", Name: "DWD ICON EPS"},
	{ID: "gfs_seamless", Name: "NOAA GEFS"},
	{ID: "ecmwf_ifs025", Name: "ECMWF IFS Ensemble"},
	{ID: "gem_global", Name: "CMC GEM Ensemble"},
	{ID: "bom_access_global_ensemble", Name: "BOM ACCESS-GE"},
}

func KnownModel(id string) bool {
	for _, m := range EnsembleModels {
		if m.ID == id {
			return true
		}
	}
	return false
}

// Comparison mode requires between 2 and 5 selected models.
const (
	MinComparisonModels = 2
	MaxComparisonModels = 5
)
