package simulation

import (
	"math"
	"testing"

	"freeze_dryer/internal/models"
)

const roundTripTol = 1e-9

func TestTemperatureRoundTrip(t *testing.T) {
	for _, c := range []float64{-273.15, -40, -10.5, 0, 25, 100, 176} {
		got := FahrenheitToCelsius(CelsiusToFahrenheit(c))
		if math.Abs(got-c) > roundTripTol {
			t.Fatalf("round trip %v → %v, diff %v", c, got, got-c)
		}
	}
	// -40 is the fixed point of the two scales
	if CelsiusToFahrenheit(-40) != -40 {
		t.Fatalf("expected -40C == -40F")
	}
	if CelsiusToFahrenheit(0) != 32 {
		t.Fatalf("expected 0C == 32F, got %v", CelsiusToFahrenheit(0))
	}
}

func TestPressureRoundTrip(t *testing.T) {
	for _, p := range []float64{0.001, 0.2, 1, 7.5, 760, 1013.25} {
		got := MbarToTorr(TorrToMbar(p))
		if math.Abs(got-p) > roundTripTol {
			t.Fatalf("round trip %v → %v, diff %v", p, got, got-p)
		}
	}
	if got := TorrToMbar(1); got != 1.33322 {
		t.Fatalf("1 Torr = %v mBar, want 1.33322", got)
	}
}

func TestNormalizeTemperature(t *testing.T) {
	if got := NormalizeTemperature(32, models.UnitFahrenheit); got != 0 {
		t.Fatalf("32F → %vC, want 0", got)
	}
	if got := NormalizeTemperature(-10, models.UnitCelsius); got != -10 {
		t.Fatalf("celsius should pass through, got %v", got)
	}
}

func TestNormalizePressure(t *testing.T) {
	if got := NormalizePressure(2, models.UnitTorr); math.Abs(got-2.66644) > roundTripTol {
		t.Fatalf("2 Torr → %v mBar, want 2.66644", got)
	}
	if got := NormalizePressure(0.5, models.UnitMbar); got != 0.5 {
		t.Fatalf("mBar should pass through, got %v", got)
	}
}
