package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"freeze_dryer/internal/models"

	"github.com/google/uuid"
)

var errEmptyStepDocument = errors.New("step document contains no steps")

// stepListDocument is the exchange format for drying programs.
type stepListDocument struct {
	Steps []models.StepDocument `json:"steps"`
}

type StepIOService struct{}

func NewStepIOService() *StepIOService { return &StepIOService{} }

// normalizeTempUnit defaults missing or unrecognized units to Celsius rather
// than failing the whole import.
func normalizeTempUnit(u string) string {
	switch u {
	case models.UnitCelsius, models.UnitFahrenheit:
		return u
	default:
		return models.UnitCelsius
	}
}

func normalizePressureUnit(u string) string {
	switch u {
	case models.UnitMbar, models.UnitTorr:
		return u
	default:
		return models.UnitMbar
	}
}

// Import parses a step-list JSON document: numeric fields are coerced (string
// forms accepted), unit enums validated and defaulted, and missing step IDs
// assigned. Programs longer than the step cap are rejected.
func (s *StepIOService) Import(doc []byte) ([]models.DryingStep, error) {
	var parsed stepListDocument
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return nil, fmt.Errorf("parse step document: %w", err)
	}
	if len(parsed.Steps) == 0 {
		return nil, errEmptyStepDocument
	}
	if len(parsed.Steps) > models.MaxProgramSteps {
		return nil, ErrTooManySteps
	}

	steps := make([]models.DryingStep, 0, len(parsed.Steps))
	for _, d := range parsed.Steps {
		st := d.ToStep()
		st.TempUnit = normalizeTempUnit(st.TempUnit)
		st.PressureUnit = normalizePressureUnit(st.PressureUnit)
		if st.ID == "" {
			st.ID = uuid.NewString()
		}
		steps = append(steps, st)
	}
	return steps, nil
}

// Export emits the canonical JSON document for a step list, running it
// through the same unit defaulting so exports are always well-formed.
func (s *StepIOService) Export(steps []models.DryingStep) ([]byte, error) {
	if err := validateProgram(steps); err != nil {
		return nil, err
	}
	out := stepListDocument{Steps: make([]models.StepDocument, 0, len(steps))}
	for _, st := range steps {
		id := st.ID
		if id == "" {
			id = uuid.NewString()
		}
		out.Steps = append(out.Steps, models.StepDocument{
			ID:           id,
			Temperature:  models.FlexFloat(st.Temperature),
			TempUnit:     normalizeTempUnit(st.TempUnit),
			Pressure:     models.FlexFloat(st.Pressure),
			PressureUnit: normalizePressureUnit(st.PressureUnit),
			DurationMin:  models.FlexFloat(st.DurationMin),
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
