package ensemble

import "strings"

// UnitFamily groups variables that share a display unit.
type UnitFamily string

const (
	FamilyTemperature      UnitFamily = "temperature"
	FamilyWind             UnitFamily = "wind"
	FamilyPrecipitation    UnitFamily = "precipitation"
	FamilyPressure         UnitFamily = "pressure"
	FamilyDirection        UnitFamily = "direction"
	FamilyDistance         UnitFamily = "distance"
	FamilyPercent          UnitFamily = "percent"
	FamilyEnergy           UnitFamily = "energy"
	FamilyRadiation        UnitFamily = "radiation"
	FamilyPressureFraction UnitFamily = "pressure_fraction"
	FamilyDimensionless    UnitFamily = "dimensionless"
)

// VariableInfo describes how a raw variable is displayed and aggregated.
// Circular variables (wind direction) need vector means instead of linear ones.
type VariableInfo struct {
	Key      string
	Family   UnitFamily
	Circular bool
}

// classifyRules are checked in order; the first substring match wins.
// vapour_pressure must precede the bare "pressure" rule.
var classifyRules = []struct {
	substrings []string
	family     UnitFamily
	circular   bool
}{
	{substrings: []string{"temperature", "dewpoint"}, family: FamilyTemperature},
	{substrings: []string{"wind_speed", "gusts"}, family: FamilyWind},
	{substrings: []string{"rain", "precipitation", "snow", "evapotranspiration"}, family: FamilyPrecipitation},
	{substrings: []string{"vapour_pressure"}, family: FamilyPressureFraction},
	{substrings: []string{"pressure"}, family: FamilyPressure},
	{substrings: []string{"direction"}, family: FamilyDirection, circular: true},
	{substrings: []string{"visibility"}, family: FamilyDistance},
	{substrings: []string{"cloud", "humidity"}, family: FamilyPercent},
	{substrings: []string{"cape"}, family: FamilyEnergy},
	{substrings: []string{"radiation"}, family: FamilyRadiation},
}

// Classify maps a variable key to its unit family by substring convention.
// Unrecognized keys are dimensionless rather than an error, so new upstream
// variables chart without code changes.
func Classify(key string) VariableInfo {
	for _, rule := range classifyRules {
		for _, sub := range rule.substrings {
			if strings.Contains(key, sub) {
				return VariableInfo{Key: key, Family: rule.family, Circular: rule.circular}
			}
		}
	}
	return VariableInfo{Key: key, Family: FamilyDimensionless}
}
