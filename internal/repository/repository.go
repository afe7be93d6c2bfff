package repository

import (
	"context"
	"database/sql"

	"freeze_dryer/internal/models"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// ConfigRepo stores named settings snapshots per owner. Owner id 0 is the
// anonymous bucket.
type ConfigRepo interface {
	Upsert(ctx context.Context, cfg models.SavedConfig) error
	Get(ctx context.Context, ownerID int, name string) (*models.SavedConfig, error)
	List(ctx context.Context, ownerID int) ([]models.SavedConfig, error)
	Delete(ctx context.Context, ownerID int, name string) (bool, error)
}

type Repository struct {
	Configs ConfigRepo
	Auth    Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Configs: NewConfigSQLite(db),
		Auth:    NewUserRepository(db),
	}
}
