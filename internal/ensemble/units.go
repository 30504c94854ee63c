package ensemble

import "github.com/gustfront/meteogram/internal/models"

// Raw payloads are metric: °C, km/h, mm, hPa, metres.
const (
	kmhPerMS    = 3.6
	milesPerKm  = 0.621371
	knotsPerKmh = 0.539957
	mmPerInch   = 25.4
	inHgPerHPa  = 0.02953
	metresPerKm = 1000
)

// Convert maps a raw metric value to the user's display unit for the given
// variable. Families without a configurable unit pass through unchanged,
// except visibility which is always reduced to kilometres.
func Convert(v float64, variable string, u models.Units) float64 {
	switch Classify(variable).Family {
	case FamilyTemperature:
		if u.Temperature == "fahrenheit" {
			return v*9/5 + 32
		}
	case FamilyWind:
		switch u.WindSpeed {
		case "ms":
			return v / kmhPerMS
		case "mph":
			return v * milesPerKm
		case "kn":
			return v * knotsPerKmh
		}
	case FamilyPrecipitation:
		if u.Precipitation == "inch" {
			return v / mmPerInch
		}
	case FamilyPressure:
		if u.Pressure == "inhg" {
			return v * inHgPerHPa
		}
	case FamilyDistance:
		return v / metresPerKm
	}
	return v
}

// ConvertPtr propagates missing samples: nil in, nil out.
func ConvertPtr(v *float64, variable string, u models.Units) *float64 {
	if v == nil {
		return nil
	}
	out := Convert(*v, variable, u)
	return &out
}

// UnitLabel returns the display label for a variable under the user's units.
func UnitLabel(variable string, u models.Units) string {
	switch Classify(variable).Family {
	case FamilyTemperature:
		if u.Temperature == "fahrenheit" {
			return "°F"
		}
		return "°C"
	case FamilyWind:
		switch u.WindSpeed {
		case "ms":
			return "m/s"
		case "mph":
			return "mph"
		case "kn":
			return "kn"
		}
		return "km/h"
	case FamilyPrecipitation:
		if u.Precipitation == "inch" {
			return "in"
		}
		return "mm"
	case FamilyPressure:
		if u.Pressure == "inhg" {
			return "inHg"
		}
		return "hPa"
	case FamilyDirection:
		return "°"
	case FamilyDistance:
		return "km"
	case FamilyPercent:
		return "%"
	case FamilyEnergy:
		return "J/kg"
	case FamilyRadiation:
		return "MJ/m²"
	case FamilyPressureFraction:
		return "kPa"
	}
	return ""
}
