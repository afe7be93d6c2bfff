package models

// Terpene groups used for bulk selection in the UI. Classification only,
// no computational weight.
const (
	GroupMajor = "major"
	GroupMinor = "minor"
	GroupOther = "other"
)

// Terpene is one entry of the immutable reference table. A, B, C are Antoine
// coefficients fit for pressure in Torr and temperature in °C:
// log10(P) = A - B/(T + C).
type Terpene struct {
	Name          string  `json:"name"`
	A             float64 `json:"a"`
	B             float64 `json:"b"`
	C             float64 `json:"c"`
	Color         string  `json:"color"`
	BoilingPointC float64 `json:"boiling_point_c"` // reference, 1 atm
	Group         string  `json:"group"`           // major | minor | other
}
