package models

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// FlexFloat decodes a JSON number that may arrive as a bare number, a quoted
// string, or null. Saved configurations and imported step documents come from
// generic serializers that sometimes stringify numerics; coercion happens here
// so typed settings never carry string-shaped numbers.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(bytes.Trim(data, `"`)))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("numeric field %q: %w", s, err)
	}
	*f = FlexFloat(v)
	return nil
}

// StepDocument is the wire form of a DryingStep with coercible numerics.
type StepDocument struct {
	ID           string    `json:"id"`
	Temperature  FlexFloat `json:"temperature"`
	TempUnit     string    `json:"temp_unit"`
	Pressure     FlexFloat `json:"pressure"`
	PressureUnit string    `json:"pressure_unit"`
	DurationMin  FlexFloat `json:"duration_min"`
}

// SettingsDocument is the wire form of FreezeDryerSettings with coercible
// numerics, used when loading stored or imported payloads.
type SettingsDocument struct {
	Steps             []StepDocument `json:"steps"`
	IceWeightKg       FlexFloat      `json:"ice_weight_kg"`
	HeatInputRate     FlexFloat      `json:"heat_input_rate"`
	TraySizeCm2       FlexFloat      `json:"tray_size_cm2"`
	TrayLengthCm      FlexFloat      `json:"tray_length_cm"`
	TrayWidthCm       FlexFloat      `json:"tray_width_cm"`
	NumberOfTrays     FlexFloat      `json:"number_of_trays"`
	HashPerTrayKg     FlexFloat      `json:"hash_per_tray_kg"`
	WaterPercentage   FlexFloat      `json:"water_percentage"`
	HeatingPowerWatts FlexFloat      `json:"heating_power_watts"`
}

// ToStep converts a wire step to the typed model. Unit validation/defaulting
// lives in the step import service, not here.
func (d StepDocument) ToStep() DryingStep {
	return DryingStep{
		ID:           d.ID,
		Temperature:  float64(d.Temperature),
		TempUnit:     d.TempUnit,
		Pressure:     float64(d.Pressure),
		PressureUnit: d.PressureUnit,
		DurationMin:  float64(d.DurationMin),
	}
}

// ToSettings converts a wire settings payload to the typed model.
func (d SettingsDocument) ToSettings() FreezeDryerSettings {
	steps := make([]DryingStep, 0, len(d.Steps))
	for _, s := range d.Steps {
		steps = append(steps, s.ToStep())
	}
	return FreezeDryerSettings{
		Steps:             steps,
		IceWeightKg:       float64(d.IceWeightKg),
		HeatInputRate:     float64(d.HeatInputRate),
		TraySizeCm2:       float64(d.TraySizeCm2),
		TrayLengthCm:      float64(d.TrayLengthCm),
		TrayWidthCm:       float64(d.TrayWidthCm),
		NumberOfTrays:     int(d.NumberOfTrays),
		HashPerTrayKg:     float64(d.HashPerTrayKg),
		WaterPercentage:   float64(d.WaterPercentage),
		HeatingPowerWatts: float64(d.HeatingPowerWatts),
	}
}
