package simulation

import (
	"errors"
	"math"

	"freeze_dryer/internal/models"
)

// Domain errors for boiling-point lookups.
var (
	ErrNonPositivePressure = errors.New("pressure must be > 0 mBar")
	ErrPressureOutOfRange  = errors.New("pressure exceeds the valid range of the vapor-pressure fit")
)

// terpeneTable is the fixed reference catalog. Antoine coefficients are fit
// for pressure in Torr and temperature in °C; boiling points are literature
// values at 1 atm.
var terpeneTable = []models.Terpene{
	{Name: "alpha-Pinene", A: 6.86, B: 1448.424, C: 208.0, Color: "#2e7d32", BoilingPointC: 156, Group: models.GroupMajor},
	{Name: "beta-Pinene", A: 6.91, B: 1500.872, C: 206.5, Color: "#388e3c", BoilingPointC: 166, Group: models.GroupMajor},
	{Name: "Myrcene", A: 7.06, B: 1579.732, C: 211.0, Color: "#7cb342", BoilingPointC: 167, Group: models.GroupMajor},
	{Name: "D-Limonene", A: 7.37, B: 1768.908, C: 213.559, Color: "#f9a825", BoilingPointC: 176, Group: models.GroupMajor},
	{Name: "Terpinolene", A: 7.12, B: 1674.479, C: 209.0, Color: "#9e9d24", BoilingPointC: 186, Group: models.GroupMajor},
	{Name: "Linalool", A: 7.45, B: 1887.074, C: 215.0, Color: "#5e35b1", BoilingPointC: 198, Group: models.GroupMajor},
	{Name: "beta-Caryophyllene", A: 7.26, B: 2040.701, C: 204.0, Color: "#6d4c41", BoilingPointC: 262, Group: models.GroupMajor},
	{Name: "alpha-Humulene", A: 7.22, B: 2076.301, C: 202.5, Color: "#8d6e63", BoilingPointC: 276, Group: models.GroupMajor},
	{Name: "Camphene", A: 6.92, B: 1478.342, C: 207.0, Color: "#43a047", BoilingPointC: 159, Group: models.GroupMinor},
	{Name: "3-Carene", A: 6.98, B: 1549.492, C: 210.0, Color: "#66bb6a", BoilingPointC: 168, Group: models.GroupMinor},
	{Name: "Sabinene", A: 6.95, B: 1511.703, C: 208.5, Color: "#81c784", BoilingPointC: 163, Group: models.GroupMinor},
	{Name: "Ocimene", A: 7.09, B: 1626.851, C: 210.5, Color: "#aed581", BoilingPointC: 176, Group: models.GroupMinor},
	{Name: "alpha-Terpineol", A: 7.52, B: 1994.85, C: 212.0, Color: "#7e57c2", BoilingPointC: 218, Group: models.GroupMinor},
	{Name: "Eucalyptol", A: 7.08, B: 1631.384, C: 212.5, Color: "#26a69a", BoilingPointC: 176, Group: models.GroupMinor},
	{Name: "Geraniol", A: 7.61, B: 2080.842, C: 210.0, Color: "#ec407a", BoilingPointC: 230, Group: models.GroupMinor},
	{Name: "Nerol", A: 7.58, B: 2051.195, C: 211.5, Color: "#f06292", BoilingPointC: 225, Group: models.GroupMinor},
	{Name: "Citronellol", A: 7.55, B: 2033.431, C: 210.5, Color: "#e91e63", BoilingPointC: 225, Group: models.GroupMinor},
	{Name: "Fenchol", A: 7.41, B: 1875.083, C: 213.0, Color: "#ab47bc", BoilingPointC: 201, Group: models.GroupMinor},
	{Name: "Borneol", A: 7.48, B: 1950.055, C: 211.0, Color: "#8e24aa", BoilingPointC: 213, Group: models.GroupMinor},
	{Name: "Isopulegol", A: 7.44, B: 1933.095, C: 212.0, Color: "#ba68c8", BoilingPointC: 212, Group: models.GroupMinor},
	{Name: "Camphor", A: 7.40, B: 1891.28, C: 209.5, Color: "#78909c", BoilingPointC: 209, Group: models.GroupOther},
	{Name: "Menthol", A: 7.47, B: 1945.815, C: 210.0, Color: "#90a4ae", BoilingPointC: 214, Group: models.GroupOther},
	{Name: "Pulegone", A: 7.50, B: 1995.489, C: 208.0, Color: "#a1887f", BoilingPointC: 224, Group: models.GroupOther},
	{Name: "Valencene", A: 7.28, B: 2098.412, C: 203.0, Color: "#bf360c", BoilingPointC: 274, Group: models.GroupOther},
	{Name: "Nerolidol", A: 7.30, B: 2107.952, C: 201.0, Color: "#d84315", BoilingPointC: 276, Group: models.GroupOther},
	{Name: "Caryophyllene Oxide", A: 7.32, B: 2130.809, C: 200.0, Color: "#4e342e", BoilingPointC: 280, Group: models.GroupOther},
	{Name: "Guaiol", A: 7.35, B: 2176.494, C: 199.0, Color: "#3e2723", BoilingPointC: 288, Group: models.GroupOther},
	{Name: "alpha-Bisabolol", A: 7.38, B: 2202.352, C: 198.5, Color: "#5d4037", BoilingPointC: 291, Group: models.GroupOther},
}

// Terpenes returns a copy of the reference table so callers cannot mutate the
// shared catalog.
func Terpenes() []models.Terpene {
	out := make([]models.Terpene, len(terpeneTable))
	copy(out, terpeneTable)
	return out
}

// TerpenesByGroup filters the table by group; an empty group returns the
// whole catalog.
func TerpenesByGroup(group string) []models.Terpene {
	if group == "" {
		return Terpenes()
	}
	out := make([]models.Terpene, 0, len(terpeneTable))
	for _, t := range terpeneTable {
		if t.Group == group {
			out = append(out, t)
		}
	}
	return out
}

// BoilingPointAt inverts the Antoine equation to find the boiling temperature
// (°C) of a terpene at the given chamber pressure in mBar:
//
//	T = B / (A - log10(P_torr)) - C
//
// Pressure must be positive; the formula is rejected, not NaN-propagated, on
// bad input.
func BoilingPointAt(t models.Terpene, pressureMbar float64) (float64, error) {
	if pressureMbar <= 0 {
		return 0, ErrNonPositivePressure
	}
	denom := t.A - math.Log10(MbarToTorr(pressureMbar))
	if denom <= 0 {
		return 0, ErrPressureOutOfRange
	}
	return t.B/denom - t.C, nil
}

// AtRisk reports whether a terpene would boil off at the given point on the
// progress curve: its boiling temperature at the point's pressure is at or
// below the process temperature.
func AtRisk(t models.Terpene, point models.SubTimePoint) (bool, error) {
	boil, err := BoilingPointAt(t, point.PressureMbar)
	if err != nil {
		return false, err
	}
	return boil <= point.TemperatureC, nil
}
