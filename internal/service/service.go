package service

import (
	"context"

	"freeze_dryer/internal/models"
	"freeze_dryer/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Simulation runs the sublimation engine on a settings snapshot and exposes
// the terpene reference data.
type Simulation interface {
	Run(settings models.FreezeDryerSettings) (models.SimulationResult, error)
	Terpenes(group string) []models.Terpene
	BoilingPoints(pressureMbar float64) ([]TerpeneBoilingPoint, error)
}

// Configs persists named settings snapshots, keyed by owner id
// (0 = anonymous bucket).
type Configs interface {
	Save(ctx context.Context, ownerID int, name string, settings models.FreezeDryerSettings) (models.SavedConfig, error)
	Load(ctx context.Context, ownerID int, name string) (models.SavedConfig, error)
	List(ctx context.Context, ownerID int) ([]models.SavedConfig, error)
	Delete(ctx context.Context, ownerID int, name string) error
}

// StepIO imports/exports drying programs as JSON documents.
type StepIO interface {
	Import(doc []byte) ([]models.DryingStep, error)
	Export(steps []models.DryingStep) ([]byte, error)
}

// Service aggregates all sub-services behind embedded interfaces.
type Service struct {
	Simulation
	Configs
	StepIO
	Authorization
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, signingKey string) *Service {
	return &Service{
		Simulation:    NewSimulationService(),
		Configs:       NewConfigService(repos.Configs),
		StepIO:        NewStepIOService(),
		Authorization: NewAuthService(repos.Auth, signingKey),
	}
}
