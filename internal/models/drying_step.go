package models

// Temperature and pressure units accepted on input. Internally everything
// runs in Celsius and mBar.
const (
	UnitCelsius    = "C"
	UnitFahrenheit = "F"
	UnitMbar       = "mBar"
	UnitTorr       = "Torr"
)

// DryingStep is one stage of a multi-stage temperature/pressure program.
// Order in the slice defines execution order.
type DryingStep struct {
	ID           string  `json:"id"`
	Temperature  float64 `json:"temperature"`
	TempUnit     string  `json:"temp_unit"`     // C | F
	Pressure     float64 `json:"pressure"`
	PressureUnit string  `json:"pressure_unit"` // mBar | Torr
	DurationMin  float64 `json:"duration_min"`  // minutes; must be > 0 to contribute time
}

// MaxProgramSteps caps the length of a drying program.
const MaxProgramSteps = 8
