package simulation

import "freeze_dryer/internal/models"

// Empirical heat-transfer constants. Derived from bench observations of small
// harvest-right style units; not first-principles values.
const (
	WattsToKJPerHour   = 3.6  // 1 W sustained for 1 hr = 3.6 kJ
	AdjustmentFactor   = 0.6  // global derating for real-world inefficiency
	MeshFactor         = 0.85 // barrier between heater and material
	ConductivityFactor = 0.8  // shelf-to-product contact, legacy area path
	AreaBaseRateKJ     = 500  // kJ/hr per m² at unity efficiency, legacy area path

	minEfficiency = 0.2
	maxEfficiency = 0.9
)

// EstimateEfficiency returns the heat-transfer efficiency for the given
// chamber conditions. Lower pressure and higher temperature both favor faster
// sublimation; inputs are clamped to the empirically validated range.
func EstimateEfficiency(tempC, pressureMbar float64) float64 {
	t := clamp(tempC, -40, 20)
	tempFactor := 0.6 + (t+40)/120

	p := clamp(pressureMbar, 0.1, 1000)
	var pressureFactor float64
	switch {
	case p <= 1:
		pressureFactor = 0.8
	case p <= 10:
		pressureFactor = 0.7 - (p-1)*0.02
	case p <= 100:
		pressureFactor = 0.5 - (p-10)*0.001
	default:
		pressureFactor = 0.4 - (p-100)*0.0001
		if pressureFactor < 0.3 {
			pressureFactor = 0.3
		}
	}

	return clamp(tempFactor*pressureFactor, minEfficiency, maxEfficiency)
}

// HeatRateEstimator yields the base chamber heat-input rate in kJ/hr for one
// normalized step. Exactly one strategy is selected per settings value; the
// two formulas are never mixed in a single run.
type HeatRateEstimator interface {
	Rate(tempC, pressureMbar float64) float64
}

// PowerBased estimates from the configured heater wattage. Both strategies
// include the mesh derating.
type PowerBased struct {
	HeatingPowerWatts float64
	NumberOfTrays     int
}

func (e PowerBased) Rate(tempC, pressureMbar float64) float64 {
	eff := EstimateEfficiency(tempC, pressureMbar)
	return e.HeatingPowerWatts * float64(e.NumberOfTrays) * WattsToKJPerHour * eff * AdjustmentFactor * MeshFactor
}

// AreaBased is the legacy estimate from total shelf area, used when no heater
// wattage is configured.
type AreaBased struct {
	TotalShelfAreaM2 float64
}

func (e AreaBased) Rate(tempC, pressureMbar float64) float64 {
	eff := EstimateEfficiency(tempC, pressureMbar)
	return AreaBaseRateKJ * eff * ConductivityFactor * MeshFactor * e.TotalShelfAreaM2
}

// FixedRate passes through an externally supplied kJ/hr override.
type FixedRate struct {
	KJPerHour float64
}

func (e FixedRate) Rate(tempC, pressureMbar float64) float64 { return e.KJPerHour }

// SelectEstimator picks the heat-rate strategy for a settings value:
// configured wattage wins, then an explicit rate override, then the legacy
// area estimate from tray geometry.
func SelectEstimator(s models.FreezeDryerSettings) HeatRateEstimator {
	if s.HeatingPowerWatts > 0 {
		trays := s.NumberOfTrays
		if trays < 1 {
			trays = 1
		}
		return PowerBased{HeatingPowerWatts: s.HeatingPowerWatts, NumberOfTrays: trays}
	}
	if s.HeatInputRate > 0 {
		return FixedRate{KJPerHour: s.HeatInputRate}
	}
	trays := s.NumberOfTrays
	if trays < 1 {
		trays = 1
	}
	areaM2 := s.TraySizeCm2 * float64(trays) / 10000
	return AreaBased{TotalShelfAreaM2: areaM2}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
