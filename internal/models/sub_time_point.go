package models

// SubTimePoint is one element of the sublimation progress curve.
type SubTimePoint struct {
	TimeHours    float64 `json:"time_hours"`    // elapsed time, non-decreasing, starts at 0
	Progress     float64 `json:"progress"`      // percent of ice sublimated, capped at 100
	StepIndex    int     `json:"step_index"`    // active DryingStep at this time
	TemperatureC float64 `json:"temperature_c"` // normalized conditions
	PressureMbar float64 `json:"pressure_mbar"`
}

// SimulationResult carries the progress curve together with explicit
// completion verdicts. Progress is hard-capped at 100; over-drying is
// signalled by Completed/CompletionHours, never by progress overshoot.
type SimulationResult struct {
	Points          []SubTimePoint `json:"points"`
	FinalProgress   float64        `json:"final_progress"`
	Completed       bool           `json:"completed"`
	CompletionHours float64        `json:"completion_hours,omitempty"` // first sample at 100%
	OverDried       bool           `json:"over_dried"`                 // finished before program end
	UnderDried      bool           `json:"under_dried"`                // final progress < 99
}
