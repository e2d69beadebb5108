package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazarhub/admin-api/internal/dto"
	"github.com/bazarhub/admin-api/internal/models"
	appErrors "github.com/bazarhub/admin-api/pkg/errors"
)

type settingsStoreStub struct {
	settings *models.AppSettings
	updated  *models.AppSettings
}

func (s *settingsStoreStub) Get(ctx context.Context) (*models.AppSettings, error) {
	return s.settings, nil
}

func (s *settingsStoreStub) Update(ctx context.Context, settings *models.AppSettings) error {
	s.updated = settings
	return nil
}

func strPtr(s string) *string { return &s }

func TestSettingsUpdate(t *testing.T) {
	store := &settingsStoreStub{}
	audit := &auditStub{}
	svc := NewSettingsService(&gateStub{}, store, audit, nil, nil)

	err := svc.Update(context.Background(), &models.StaffClaims{StaffID: "root"}, dto.SettingsRequest{
		MaintenanceMode:   boolPtr(true),
		MinVersionIOS:     strPtr("2.4.0"),
		MinVersionAndroid: strPtr("2.3.1"),
		SupportPhone:      strPtr("+62-21-555-0101"),
	})
	require.NoError(t, err)
	require.NotNil(t, store.updated)
	assert.Equal(t, 1, store.updated.ID)
	assert.True(t, store.updated.MaintenanceMode)
	require.Len(t, audit.logs, 1)
	assert.Equal(t, models.AuditActionSystemConfigChange, audit.logs[0].ActionType)
	assert.Contains(t, audit.logs[0].Details, "Maintenance: true")
}

func TestSettingsUpdateRejectsPartialPayload(t *testing.T) {
	svc := NewSettingsService(&gateStub{}, &settingsStoreStub{}, &auditStub{}, nil, nil)

	err := svc.Update(context.Background(), &models.StaffClaims{StaffID: "root"}, dto.SettingsRequest{
		MaintenanceMode: boolPtr(false),
	})
	require.Error(t, err)
	assert.Equal(t, 400, appErrors.FromError(err).Status)
}

func TestSettingsGet(t *testing.T) {
	store := &settingsStoreStub{settings: &models.AppSettings{ID: 1, MinVersionIOS: "2.0.0"}}
	svc := NewSettingsService(&gateStub{}, store, &auditStub{}, nil, nil)

	settings, err := svc.Get(context.Background(), &models.StaffClaims{StaffID: "root"})
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", settings.MinVersionIOS)
}
