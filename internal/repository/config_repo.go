package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"freeze_dryer/internal/models"
)

type ConfigSQLite struct {
	db *sql.DB
}

func NewConfigSQLite(db *sql.DB) *ConfigSQLite { return &ConfigSQLite{db: db} }

var _ ConfigRepo = (*ConfigSQLite)(nil)

const (
	upsertConfigSQL = `
		INSERT INTO saved_configs (id, owner_id, name, payload, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(owner_id, name) DO UPDATE SET
			payload=excluded.payload,
			updated_at=excluded.updated_at
	`

	selectConfigSQL = `
		SELECT id, owner_id, name, payload, created_at, updated_at
		FROM saved_configs WHERE owner_id = ? AND name = ?
	`

	listConfigsSQL = `
		SELECT id, owner_id, name, payload, created_at, updated_at
		FROM saved_configs WHERE owner_id = ? ORDER BY name ASC
	`

	deleteConfigSQL = `DELETE FROM saved_configs WHERE owner_id = ? AND name = ?`
)

// Upsert writes a snapshot; an existing (owner, name) row keeps its id and
// created_at and only refreshes payload/updated_at.
func (r *ConfigSQLite) Upsert(ctx context.Context, cfg models.SavedConfig) error {
	payload, err := json.Marshal(cfg.Settings)
	if err != nil {
		return fmt.Errorf("marshal settings payload: %w", err)
	}

	now := time.Now().UTC()
	created := cfg.CreatedAt
	if created.IsZero() {
		created = now
	} else {
		created = created.UTC()
	}

	_, err = r.db.ExecContext(ctx, upsertConfigSQL,
		cfg.ID,
		cfg.OwnerID,
		cfg.Name,
		string(payload),
		created,
		now,
	)
	if err != nil {
		return fmt.Errorf("upsert config %q: %w", cfg.Name, err)
	}
	return nil
}

// Get returns (nil, nil) when no snapshot exists for (owner, name).
func (r *ConfigSQLite) Get(ctx context.Context, ownerID int, name string) (*models.SavedConfig, error) {
	row := r.db.QueryRowContext(ctx, selectConfigSQL, ownerID, name)
	cfg, err := scanConfig(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select config %q: %w", name, err)
	}
	return cfg, nil
}

func (r *ConfigSQLite) List(ctx context.Context, ownerID int) ([]models.SavedConfig, error) {
	rows, err := r.db.QueryContext(ctx, listConfigsSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list configs for owner %d: %w", ownerID, err)
	}
	defer rows.Close()

	out := make([]models.SavedConfig, 0, 16)
	for rows.Next() {
		cfg, err := scanConfig(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ConfigSQLite) Delete(ctx context.Context, ownerID int, name string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteConfigSQL, ownerID, name)
	if err != nil {
		return false, fmt.Errorf("delete config %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// scanConfig reads one row. The payload goes through SettingsDocument so
// numerics stored as strings by foreign writers are coerced back to numbers.
func scanConfig(scan func(dest ...any) error) (*models.SavedConfig, error) {
	var (
		cfg     models.SavedConfig
		payload string
	)
	if err := scan(&cfg.ID, &cfg.OwnerID, &cfg.Name, &payload, &cfg.CreatedAt, &cfg.UpdatedAt); err != nil {
		return nil, err
	}

	var doc models.SettingsDocument
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, fmt.Errorf("decode settings payload of %q: %w", cfg.Name, err)
	}
	cfg.Settings = doc.ToSettings()
	cfg.CreatedAt = cfg.CreatedAt.UTC()
	cfg.UpdatedAt = cfg.UpdatedAt.UTC()
	return &cfg, nil
}
