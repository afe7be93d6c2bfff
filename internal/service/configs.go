package service

import (
	"context"
	"errors"
	"strings"

	"freeze_dryer/internal/models"
	"freeze_dryer/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrEmptyConfigName = errors.New("configuration name must not be empty")
	ErrConfigNotFound  = errors.New("configuration not found")
)

type ConfigService struct {
	repo repository.ConfigRepo
}

func NewConfigService(repo repository.ConfigRepo) *ConfigService {
	return &ConfigService{repo: repo}
}

// deepCopySettings snapshots settings so later edits to the live session
// cannot reach into the stored value.
func deepCopySettings(s models.FreezeDryerSettings) models.FreezeDryerSettings {
	steps := make([]models.DryingStep, len(s.Steps))
	copy(steps, s.Steps)
	s.Steps = steps
	return s
}

// Save normalizes and snapshots the settings under (owner, name). Saving an
// existing name overwrites its payload and bumps updated_at.
func (s *ConfigService) Save(ctx context.Context, ownerID int, name string, settings models.FreezeDryerSettings) (models.SavedConfig, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.SavedConfig{}, ErrEmptyConfigName
	}
	if err := validateProgram(settings.Steps); err != nil {
		return models.SavedConfig{}, err
	}
	cfg := models.SavedConfig{
		ID:       uuid.NewString(),
		OwnerID:  ownerID,
		Name:     name,
		Settings: deepCopySettings(NormalizeSettings(settings)),
	}
	if err := s.repo.Upsert(ctx, cfg); err != nil {
		return models.SavedConfig{}, err
	}
	stored, err := s.repo.Get(ctx, ownerID, name)
	if err != nil {
		return models.SavedConfig{}, err
	}
	if stored == nil {
		return models.SavedConfig{}, ErrConfigNotFound
	}
	return *stored, nil
}

// Load fetches a snapshot and re-normalizes it, so configurations written by
// older clients (e.g. direct ice weight, no tray geometry) come back fully
// populated.
func (s *ConfigService) Load(ctx context.Context, ownerID int, name string) (models.SavedConfig, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.SavedConfig{}, ErrEmptyConfigName
	}
	stored, err := s.repo.Get(ctx, ownerID, name)
	if err != nil {
		return models.SavedConfig{}, err
	}
	if stored == nil {
		return models.SavedConfig{}, ErrConfigNotFound
	}
	cfg := *stored
	cfg.Settings = NormalizeSettings(cfg.Settings)
	return cfg, nil
}

func (s *ConfigService) List(ctx context.Context, ownerID int) ([]models.SavedConfig, error) {
	return s.repo.List(ctx, ownerID)
}

func (s *ConfigService) Delete(ctx context.Context, ownerID int, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyConfigName
	}
	deleted, err := s.repo.Delete(ctx, ownerID, name)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrConfigNotFound
	}
	return nil
}
