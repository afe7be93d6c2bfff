package simulation

import (
	"math"
	"reflect"
	"testing"

	"freeze_dryer/internal/models"
)

// ampleSettings is the reference scenario: one cold low-pressure step with far
// more energy available than the 0.1 kg of ice needs.
func ampleSettings(durationMin float64) models.FreezeDryerSettings {
	return models.FreezeDryerSettings{
		Steps: []models.DryingStep{
			{ID: "s1", Temperature: -10, TempUnit: models.UnitCelsius, Pressure: 0.2, PressureUnit: models.UnitMbar, DurationMin: durationMin},
		},
		IceWeightKg:       0.1,
		HeatingPowerWatts: 250,
		NumberOfTrays:     3,
	}
}

func TestProgressCurve_EmptyInputGuards(t *testing.T) {
	t.Run("no steps", func(t *testing.T) {
		res := ProgressCurve(models.FreezeDryerSettings{IceWeightKg: 1})
		if len(res.Points) != 0 {
			t.Fatalf("expected empty curve, got %d points", len(res.Points))
		}
	})
	t.Run("zero ice weight", func(t *testing.T) {
		s := ampleSettings(600)
		s.IceWeightKg = 0
		if res := ProgressCurve(s); len(res.Points) != 0 {
			t.Fatalf("expected empty curve, got %d points", len(res.Points))
		}
	})
	t.Run("all durations zero", func(t *testing.T) {
		s := ampleSettings(0)
		if res := ProgressCurve(s); len(res.Points) != 0 {
			t.Fatalf("expected empty curve for zero total time, got %d points", len(res.Points))
		}
	})
}

func TestProgressCurve_MonotonicTimeAndProgress(t *testing.T) {
	res := ProgressCurve(ampleSettings(600))
	if len(res.Points) < minSamples {
		t.Fatalf("expected at least %d samples, got %d", minSamples, len(res.Points))
	}
	if res.Points[0].TimeHours != 0 || res.Points[0].Progress != 0 {
		t.Fatalf("first point must be (0,0), got %+v", res.Points[0])
	}
	capped := false
	for i := 1; i < len(res.Points); i++ {
		prev, cur := res.Points[i-1], res.Points[i]
		if cur.TimeHours < prev.TimeHours {
			t.Fatalf("time decreased at %d: %v → %v", i, prev.TimeHours, cur.TimeHours)
		}
		if cur.Progress < prev.Progress {
			t.Fatalf("progress decreased at %d: %v → %v", i, prev.Progress, cur.Progress)
		}
		if capped && cur.Progress != 100 {
			t.Fatalf("progress left the cap at %d: %v", i, cur.Progress)
		}
		if cur.Progress == 100 {
			capped = true
		}
		if cur.Progress > 100 {
			t.Fatalf("progress exceeded 100 at %d: %v", i, cur.Progress)
		}
	}
}

func TestProgressCurve_AmpleEnergyScenario(t *testing.T) {
	res := ProgressCurve(ampleSettings(600))
	last := res.Points[len(res.Points)-1]
	if math.Abs(last.TimeHours-10.0) > 1e-9 {
		t.Fatalf("final time = %v h, want 10", last.TimeHours)
	}
	if res.FinalProgress < 99 {
		t.Fatalf("final progress = %v, want >= 99", res.FinalProgress)
	}
	if !res.Completed || res.UnderDried {
		t.Fatalf("expected completed run, got %+v", res)
	}
	// 283.5 kJ needed against ~936 kJ/hr base: finishes long before hour ten.
	if !res.OverDried {
		t.Fatalf("expected over-dried verdict, completion at %v h of 10", res.CompletionHours)
	}
	if res.CompletionHours <= 0 || res.CompletionHours >= 10 {
		t.Fatalf("completion hours out of range: %v", res.CompletionHours)
	}
}

func TestProgressCurve_InsufficientDurationScenario(t *testing.T) {
	res := ProgressCurve(ampleSettings(10))
	if res.FinalProgress >= 99 {
		t.Fatalf("10-minute run should under-dry, final progress %v", res.FinalProgress)
	}
	if !res.UnderDried || res.Completed || res.OverDried {
		t.Fatalf("expected under-dried verdict, got %+v", res)
	}
}

func TestProgressCurve_EnergyCeiling(t *testing.T) {
	res := ProgressCurve(ampleSettings(600))
	totalKJ := 0.1 * LatentHeatSublimationKJ
	for _, p := range res.Points {
		if p.Progress/100*totalKJ > totalKJ+1e-9 {
			t.Fatalf("accounted energy exceeds ceiling at t=%v", p.TimeHours)
		}
	}
}

func TestProgressCurve_MultiStepBoundariesAndUnits(t *testing.T) {
	s := models.FreezeDryerSettings{
		Steps: []models.DryingStep{
			{ID: "a", Temperature: 14, TempUnit: models.UnitFahrenheit, Pressure: 0.15, PressureUnit: models.UnitTorr, DurationMin: 60},
			{ID: "b", Temperature: 0, TempUnit: models.UnitCelsius, Pressure: 0.3, PressureUnit: models.UnitMbar, DurationMin: 120},
		},
		IceWeightKg:       5,
		HeatingPowerWatts: 250,
		NumberOfTrays:     3,
	}
	res := ProgressCurve(s)
	if len(res.Points) < minSamples {
		t.Fatalf("sample count %d below minimum", len(res.Points))
	}

	// 14F = -10C; 0.15 Torr ≈ 0.2 mBar
	first := res.Points[0]
	if math.Abs(first.TemperatureC-(-10)) > 1e-9 {
		t.Fatalf("first step temp = %v, want -10C", first.TemperatureC)
	}
	if math.Abs(first.PressureMbar-0.15*TorrPerMbar) > 1e-9 {
		t.Fatalf("first step pressure = %v, want %v", first.PressureMbar, 0.15*TorrPerMbar)
	}

	for _, p := range res.Points {
		switch {
		case p.TimeHours <= 1.0:
			if p.StepIndex != 0 {
				t.Fatalf("t=%v assigned to step %d, want 0 (boundary ties go to the earlier step)", p.TimeHours, p.StepIndex)
			}
		default:
			if p.StepIndex != 1 {
				t.Fatalf("t=%v assigned to step %d, want 1", p.TimeHours, p.StepIndex)
			}
		}
	}

	last := res.Points[len(res.Points)-1]
	if math.Abs(last.TimeHours-3.0) > 1e-9 {
		t.Fatalf("final time %v, want 3.0 h", last.TimeHours)
	}
}

// A trailing zero-duration step shares its boundary with the step before it;
// the terminal point must tie to the earlier step like every other sample.
func TestProgressCurve_TrailingZeroDurationStep(t *testing.T) {
	s := ampleSettings(70)
	s.Steps = append(s.Steps, models.DryingStep{
		ID: "s2", Temperature: 15, TempUnit: models.UnitCelsius, Pressure: 5, PressureUnit: models.UnitMbar, DurationMin: 0,
	})
	res := ProgressCurve(s)

	last := res.Points[len(res.Points)-1]
	if math.Abs(last.TimeHours-70.0/60.0) > 1e-9 {
		t.Fatalf("final time %v, want %v h", last.TimeHours, 70.0/60.0)
	}
	if last.StepIndex != 0 {
		t.Fatalf("terminal point assigned to step %d, want 0", last.StepIndex)
	}
	if last.TemperatureC != -10 || last.PressureMbar != 0.2 {
		t.Fatalf("terminal point carries step-1 conditions: %+v", last)
	}
}

func TestProgressCurve_Idempotent(t *testing.T) {
	a := ProgressCurve(ampleSettings(600))
	b := ProgressCurve(ampleSettings(600))
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical inputs produced different results")
	}
}
