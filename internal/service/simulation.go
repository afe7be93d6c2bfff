package service

import (
	"errors"
	"fmt"

	"freeze_dryer/internal/models"
	"freeze_dryer/internal/simulation"
)

// Defaults applied by settings normalization. The reference hardware is a
// small 3-tray unit loaded with 150 g per tray at 75% water content.
const (
	defaultHashPerTrayKg   = 0.15
	defaultWaterPercentage = 75.0
	defaultTrayLengthCm    = 45.0
	defaultTrayWidthCm     = 20.0
)

var ErrTooManySteps = fmt.Errorf("drying program exceeds %d steps", models.MaxProgramSteps)

var errInvalidBoilingPressure = errors.New("pressure must be > 0 mBar")

// TerpeneBoilingPoint is one row of a boiling-point lookup at a fixed
// chamber pressure.
type TerpeneBoilingPoint struct {
	Name          string  `json:"name"`
	Color         string  `json:"color"`
	Group         string  `json:"group"`
	BoilingPointC float64 `json:"boiling_point_c"`
}

type SimulationService struct{}

func NewSimulationService() *SimulationService { return &SimulationService{} }

// NormalizeSettings produces a fully populated settings value: defaults
// filled, tray area recomputed from its dimensions, and ice weight derived
// from hash weight / water content / tray count. A directly supplied ice
// weight (e.g. from an old saved configuration) survives only when none of
// its three inputs are present.
func NormalizeSettings(s models.FreezeDryerSettings) models.FreezeDryerSettings {
	deriveIce := s.HashPerTrayKg > 0 || s.WaterPercentage > 0

	if s.NumberOfTrays < 1 {
		s.NumberOfTrays = 1
	}
	if s.HashPerTrayKg <= 0 {
		s.HashPerTrayKg = defaultHashPerTrayKg
	}
	if s.WaterPercentage <= 0 || s.WaterPercentage > 100 {
		s.WaterPercentage = defaultWaterPercentage
	}
	if s.TrayLengthCm <= 0 {
		s.TrayLengthCm = defaultTrayLengthCm
	}
	if s.TrayWidthCm <= 0 {
		s.TrayWidthCm = defaultTrayWidthCm
	}
	s.TraySizeCm2 = s.TrayLengthCm * s.TrayWidthCm

	if deriveIce || s.IceWeightKg <= 0 {
		s.IceWeightKg = s.HashPerTrayKg * float64(s.NumberOfTrays) * s.WaterPercentage / 100
	}
	return s
}

// validateProgram rejects programs with more than MaxProgramSteps steps.
// Steps with non-positive duration are legal; they simply contribute no time.
func validateProgram(steps []models.DryingStep) error {
	if len(steps) > models.MaxProgramSteps {
		return ErrTooManySteps
	}
	return nil
}

// Run normalizes, validates and simulates one settings snapshot. An empty
// program or zero derived ice weight yields an empty curve, not an error.
func (s *SimulationService) Run(settings models.FreezeDryerSettings) (models.SimulationResult, error) {
	if err := validateProgram(settings.Steps); err != nil {
		return models.SimulationResult{}, err
	}
	if len(settings.Steps) == 0 {
		return models.SimulationResult{Points: []models.SubTimePoint{}}, nil
	}
	return simulation.ProgressCurve(NormalizeSettings(settings)), nil
}

// Terpenes returns the reference table, optionally filtered by group.
func (s *SimulationService) Terpenes(group string) []models.Terpene {
	return simulation.TerpenesByGroup(group)
}

// BoilingPoints evaluates every terpene's boiling temperature at the given
// chamber pressure.
func (s *SimulationService) BoilingPoints(pressureMbar float64) ([]TerpeneBoilingPoint, error) {
	if pressureMbar <= 0 {
		return nil, errInvalidBoilingPressure
	}
	table := simulation.Terpenes()
	out := make([]TerpeneBoilingPoint, 0, len(table))
	for _, t := range table {
		bp, err := simulation.BoilingPointAt(t, pressureMbar)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", t.Name, err)
		}
		out = append(out, TerpeneBoilingPoint{
			Name:          t.Name,
			Color:         t.Color,
			Group:         t.Group,
			BoilingPointC: bp,
		})
	}
	return out, nil
}
