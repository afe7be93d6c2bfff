package models

import "time"

// FreezeDryerSettings holds the batch/equipment parameters for one simulation
// run, together with a snapshot of the step program.
type FreezeDryerSettings struct {
	Steps             []DryingStep `json:"steps"`
	IceWeightKg       float64      `json:"ice_weight_kg"`       // derived from hash/water/trays; may be set directly on load
	HeatInputRate     float64      `json:"heat_input_rate"`     // optional kJ/hr override (legacy path)
	TraySizeCm2       float64      `json:"tray_size_cm2"`       // always recomputed from length*width when both set
	TrayLengthCm      float64      `json:"tray_length_cm"`
	TrayWidthCm       float64      `json:"tray_width_cm"`
	NumberOfTrays     int          `json:"number_of_trays"`
	HashPerTrayKg     float64      `json:"hash_per_tray_kg"`
	WaterPercentage   float64      `json:"water_percentage"`    // 0..100
	HeatingPowerWatts float64      `json:"heating_power_watts"` // per-tray heater wattage
}

// SavedConfig is a named, timestamped snapshot of settings+steps, keyed by an
// owning user id (0 = anonymous bucket).
type SavedConfig struct {
	ID        string              `json:"id"`
	OwnerID   int                 `json:"owner_id"`
	Name      string              `json:"name"`
	Settings  FreezeDryerSettings `json:"settings"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}
