package simulation

import (
	"math"

	"freeze_dryer/internal/models"
)

// LatentHeatSublimationKJ is the latent heat of sublimation of ice, kJ/kg.
const LatentHeatSublimationKJ = 2835.0

const (
	minSamples     = 200
	samplesPerStep = 50

	// Effective heat rate drops toward this floor as the dried layer builds up.
	progressFactorFloor = 0.15

	completionThreshold = 99.0 // final progress below this = under-dried
)

// normalizedStep is a DryingStep converted to canonical units, with its
// cumulative end boundary in hours.
type normalizedStep struct {
	tempC        float64
	pressureMbar float64
	endHours     float64
	baseRateKJ   float64
}

// normalizeSteps converts the program to Celsius/mBar and computes step
// boundaries and per-step base heat rates. Steps with non-positive duration
// contribute no time but keep their index so StepIndex stays aligned.
func normalizeSteps(s models.FreezeDryerSettings, est HeatRateEstimator) []normalizedStep {
	out := make([]normalizedStep, 0, len(s.Steps))
	elapsed := 0.0
	for _, st := range s.Steps {
		n := normalizedStep{
			tempC:        NormalizeTemperature(st.Temperature, st.TempUnit),
			pressureMbar: NormalizePressure(st.Pressure, st.PressureUnit),
		}
		if st.DurationMin > 0 {
			elapsed += st.DurationMin / 60
		}
		n.endHours = elapsed
		n.baseRateKJ = est.Rate(n.tempC, n.pressureMbar)
		out = append(out, n)
	}
	return out
}

// activeStep returns the index of the step whose boundary interval contains t.
// Ties resolve to the earlier step.
func activeStep(steps []normalizedStep, t float64) int {
	for i, st := range steps {
		if t <= st.endHours {
			return i
		}
	}
	return len(steps) - 1
}

// ProgressCurve walks simulated time across the step program and produces the
// cumulative sublimation curve plus explicit completion verdicts.
//
// Progress is hard-capped at 100: once the accumulated energy reaches
// iceWeight * latent heat, later samples stay flat at 100. Over-drying is
// reported through Completed/CompletionHours/OverDried (the program kept
// running after the cap), never by letting progress exceed 100. A final
// progress below 99 marks the run under-dried.
//
// An empty program or non-positive ice weight yields an empty result; that is
// the documented "nothing to simulate" state, not an error.
func ProgressCurve(s models.FreezeDryerSettings) models.SimulationResult {
	if len(s.Steps) == 0 || s.IceWeightKg <= 0 {
		return models.SimulationResult{Points: []models.SubTimePoint{}}
	}

	steps := normalizeSteps(s, SelectEstimator(s))
	totalHours := steps[len(steps)-1].endHours
	if totalHours <= 0 {
		return models.SimulationResult{Points: []models.SubTimePoint{}}
	}

	totalEnergyKJ := s.IceWeightKg * LatentHeatSublimationKJ

	n := minSamples
	if v := samplesPerStep * len(steps); v > n {
		n = v
	}
	dt := totalHours / float64(n-1)

	points := make([]models.SubTimePoint, 0, n+1)
	points = append(points, models.SubTimePoint{
		TimeHours:    0,
		Progress:     0,
		StepIndex:    0,
		TemperatureC: steps[0].tempC,
		PressureMbar: steps[0].pressureMbar,
	})

	var (
		accumulatedKJ   float64
		complete        bool
		completionHours float64
	)
	t := 0.0
	for i := 1; i < n; i++ {
		t += dt
		idx := activeStep(steps, t)
		st := steps[idx]

		// Diminishing returns: the dried layer insulates the remaining ice.
		currentProgress := accumulatedKJ / totalEnergyKJ * 100
		factor := 0.7 - 0.65*math.Pow(currentProgress/100, 0.8)
		if factor < progressFactorFloor {
			factor = progressFactorFloor
		}

		if !complete {
			accumulatedKJ += st.baseRateKJ * factor * dt
			if accumulatedKJ >= totalEnergyKJ {
				accumulatedKJ = totalEnergyKJ
				complete = true
				completionHours = t
			}
		}

		points = append(points, models.SubTimePoint{
			TimeHours:    t,
			Progress:     accumulatedKJ / totalEnergyKJ * 100,
			StepIndex:    idx,
			TemperatureC: st.tempC,
			PressureMbar: st.pressureMbar,
		})
	}

	// Floating-point drift can leave the last sample shy of the program end;
	// force a closing point at exactly totalHours.
	if last := points[len(points)-1]; last.TimeHours != totalHours {
		idx := activeStep(steps, totalHours)
		st := steps[idx]
		points = append(points, models.SubTimePoint{
			TimeHours:    totalHours,
			Progress:     last.Progress,
			StepIndex:    idx,
			TemperatureC: st.tempC,
			PressureMbar: st.pressureMbar,
		})
	}

	final := points[len(points)-1].Progress
	return models.SimulationResult{
		Points:          points,
		FinalProgress:   final,
		Completed:       complete,
		CompletionHours: completionHours,
		OverDried:       complete && completionHours < totalHours,
		UnderDried:      final < completionThreshold,
	}
}
