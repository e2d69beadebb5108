package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/bazarhub/admin-api/internal/models"
)

// SettingsRepository provides database access to the platform settings row.
type SettingsRepository struct {
	db *sqlx.DB
}

// NewSettingsRepository creates a new instance of SettingsRepository.
func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the singleton settings row.
func (r *SettingsRepository) Get(ctx context.Context) (*models.AppSettings, error) {
	const query = `SELECT id, maintenance_mode, min_version_ios, min_version_android, support_phone FROM app_settings WHERE id = 1 LIMIT 1`
	var settings models.AppSettings
	if err := r.db.GetContext(ctx, &settings, query); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &settings, nil
}

// Update replaces the singleton settings row.
func (r *SettingsRepository) Update(ctx context.Context, settings *models.AppSettings) error {
	const query = `UPDATE app_settings SET maintenance_mode = $1, min_version_ios = $2, min_version_android = $3, support_phone = $4 WHERE id = 1`
	if _, err := r.db.ExecContext(ctx, query, settings.MaintenanceMode, settings.MinVersionIOS, settings.MinVersionAndroid, settings.SupportPhone); err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}
