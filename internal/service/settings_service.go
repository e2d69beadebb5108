package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/bazarhub/admin-api/internal/dto"
	"github.com/bazarhub/admin-api/internal/models"
	appErrors "github.com/bazarhub/admin-api/pkg/errors"
)

type settingsStore interface {
	Get(ctx context.Context) (*models.AppSettings, error)
	Update(ctx context.Context, settings *models.AppSettings) error
}

// SettingsService manages the singleton platform configuration.
type SettingsService struct {
	gate     authorizer
	repo     settingsStore
	audit    auditRecorder
	validate *validator.Validate
	logger   *zap.Logger
}

// NewSettingsService constructs the service.
func NewSettingsService(gate authorizer, repo settingsStore, audit auditRecorder, validate *validator.Validate, logger *zap.Logger) *SettingsService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{gate: gate, repo: repo, audit: audit, validate: validate, logger: logger}
}

// Get returns the current platform settings.
func (s *SettingsService) Get(ctx context.Context, claims *models.StaffClaims) (*models.AppSettings, error) {
	if _, err := s.gate.Authorize(ctx, claims, models.OpSettingsChange); err != nil {
		return nil, err
	}
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load settings")
	}
	return settings, nil
}

// Update replaces the platform settings.
func (s *SettingsService) Update(ctx context.Context, claims *models.StaffClaims, req dto.SettingsRequest) error {
	caller, err := s.gate.Authorize(ctx, claims, models.OpSettingsChange)
	if err != nil {
		return err
	}
	if err := s.validate.Struct(req); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "invalid settings payload")
	}

	settings := &models.AppSettings{
		ID:                1,
		MaintenanceMode:   *req.MaintenanceMode,
		MinVersionIOS:     *req.MinVersionIOS,
		MinVersionAndroid: *req.MinVersionAndroid,
		SupportPhone:      *req.SupportPhone,
	}
	if err := s.repo.Update(ctx, settings); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update settings")
	}

	log := &models.AuditLog{
		AdminID:    &caller.ID,
		AdminEmail: &caller.Email,
		ActionType: models.AuditActionSystemConfigChange,
		Details:    fmt.Sprintf("Updated config. Maintenance: %t", settings.MaintenanceMode),
	}
	if err := s.audit.Create(ctx, log); err != nil {
		s.logger.Error("audit write failed, failing operation", zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record audit trail")
	}
	return nil
}
