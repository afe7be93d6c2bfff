package service

import (
	"errors"
	"math"
	"testing"

	"freeze_dryer/internal/models"
)

func TestNormalizeSettings_DerivesIceWeight(t *testing.T) {
	s := NormalizeSettings(models.FreezeDryerSettings{
		HashPerTrayKg:   0.15,
		NumberOfTrays:   3,
		WaterPercentage: 75,
	})
	if s.IceWeightKg != 0.15*3*0.75 {
		t.Fatalf("ice weight = %v, want 0.3375 exactly", s.IceWeightKg)
	}
}

func TestNormalizeSettings_Defaults(t *testing.T) {
	s := NormalizeSettings(models.FreezeDryerSettings{})
	if s.NumberOfTrays != 1 {
		t.Fatalf("trays = %d, want 1", s.NumberOfTrays)
	}
	if s.HashPerTrayKg != defaultHashPerTrayKg || s.WaterPercentage != defaultWaterPercentage {
		t.Fatalf("defaults not applied: %+v", s)
	}
	if s.TraySizeCm2 != defaultTrayLengthCm*defaultTrayWidthCm {
		t.Fatalf("tray area = %v, want %v", s.TraySizeCm2, defaultTrayLengthCm*defaultTrayWidthCm)
	}
	// 0.15 kg * 1 tray * 75% water
	if math.Abs(s.IceWeightKg-0.1125) > 1e-12 {
		t.Fatalf("derived ice weight = %v, want 0.1125", s.IceWeightKg)
	}
}

func TestNormalizeSettings_TrayAreaRecomputedFromDimensions(t *testing.T) {
	s := NormalizeSettings(models.FreezeDryerSettings{
		TrayLengthCm: 30,
		TrayWidthCm:  20,
		TraySizeCm2:  9999, // stale value must lose to length*width
	})
	if s.TraySizeCm2 != 600 {
		t.Fatalf("tray area = %v, want 600", s.TraySizeCm2)
	}
}

func TestNormalizeSettings_DirectIceWeightSurvivesOnlyWithoutInputs(t *testing.T) {
	t.Run("no inputs: direct value kept", func(t *testing.T) {
		s := NormalizeSettings(models.FreezeDryerSettings{IceWeightKg: 2.5})
		if s.IceWeightKg != 2.5 {
			t.Fatalf("direct ice weight lost: %v", s.IceWeightKg)
		}
	})
	t.Run("inputs present: derived value wins", func(t *testing.T) {
		s := NormalizeSettings(models.FreezeDryerSettings{
			IceWeightKg:     2.5,
			HashPerTrayKg:   0.2,
			NumberOfTrays:   2,
			WaterPercentage: 50,
		})
		if s.IceWeightKg != 0.2 {
			t.Fatalf("ice weight = %v, want derived 0.2", s.IceWeightKg)
		}
	})
}

func TestRun_EmptyStepsYieldEmptyCurve(t *testing.T) {
	svc := NewSimulationService()
	res, err := svc.Run(models.FreezeDryerSettings{IceWeightKg: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Points) != 0 {
		t.Fatalf("expected empty curve, got %d points", len(res.Points))
	}
}

func TestRun_RejectsOversizedProgram(t *testing.T) {
	svc := NewSimulationService()
	steps := make([]models.DryingStep, models.MaxProgramSteps+1)
	for i := range steps {
		steps[i] = models.DryingStep{Temperature: -10, TempUnit: models.UnitCelsius, Pressure: 0.5, PressureUnit: models.UnitMbar, DurationMin: 30}
	}
	if _, err := svc.Run(models.FreezeDryerSettings{Steps: steps}); !errors.Is(err, ErrTooManySteps) {
		t.Fatalf("expected ErrTooManySteps, got %v", err)
	}
}

func TestRun_NormalizesBeforeSimulating(t *testing.T) {
	svc := NewSimulationService()
	// No ice weight given: normalization derives it, so the curve is non-empty.
	res, err := svc.Run(models.FreezeDryerSettings{
		Steps: []models.DryingStep{
			{Temperature: -20, TempUnit: models.UnitCelsius, Pressure: 0.5, PressureUnit: models.UnitMbar, DurationMin: 120},
		},
		HeatingPowerWatts: 250,
		NumberOfTrays:     3,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Points) == 0 {
		t.Fatalf("expected non-empty curve after normalization derived ice weight")
	}
}

func TestBoilingPoints(t *testing.T) {
	svc := NewSimulationService()

	t.Run("rejects non-positive pressure", func(t *testing.T) {
		for _, p := range []float64{0, -0.1} {
			if _, err := svc.BoilingPoints(p); err == nil {
				t.Fatalf("expected error at pressure %v", p)
			}
		}
	})

	t.Run("covers the whole table", func(t *testing.T) {
		points, err := svc.BoilingPoints(0.2)
		if err != nil {
			t.Fatalf("BoilingPoints: %v", err)
		}
		if len(points) != len(svc.Terpenes("")) {
			t.Fatalf("got %d rows, want %d", len(points), len(svc.Terpenes("")))
		}
		for _, p := range points {
			// Under deep vacuum every terpene boils far below its 1-atm point.
			if p.BoilingPointC > 100 {
				t.Fatalf("%s: implausible boiling point %v at 0.2 mBar", p.Name, p.BoilingPointC)
			}
		}
	})
}

func TestTerpenesGroupFilter(t *testing.T) {
	svc := NewSimulationService()
	major := svc.Terpenes(models.GroupMajor)
	all := svc.Terpenes("")
	if len(major) == 0 || len(major) >= len(all) {
		t.Fatalf("unexpected filter sizes: major=%d all=%d", len(major), len(all))
	}
}
