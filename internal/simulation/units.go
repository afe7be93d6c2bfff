package simulation

import "freeze_dryer/internal/models"

// TorrPerMbar converts between the two supported pressure units:
// 1 Torr = 1.33322 mBar.
const TorrPerMbar = 1.33322

func CelsiusToFahrenheit(c float64) float64 { return c*9/5 + 32 }

func FahrenheitToCelsius(f float64) float64 { return (f - 32) * 5 / 9 }

func TorrToMbar(t float64) float64 { return t * TorrPerMbar }

func MbarToTorr(m float64) float64 { return m / TorrPerMbar }

// NormalizeTemperature converts a temperature to Celsius. Unknown units are
// treated as Celsius; callers validate unit strings at the import boundary.
func NormalizeTemperature(value float64, unit string) float64 {
	if unit == models.UnitFahrenheit {
		return FahrenheitToCelsius(value)
	}
	return value
}

// NormalizePressure converts a pressure to mBar.
func NormalizePressure(value float64, unit string) float64 {
	if unit == models.UnitTorr {
		return TorrToMbar(value)
	}
	return value
}
