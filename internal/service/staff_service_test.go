package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazarhub/admin-api/internal/dto"
	"github.com/bazarhub/admin-api/internal/models"
	appErrors "github.com/bazarhub/admin-api/pkg/errors"
)

type staffStoreStub struct {
	staff          *models.StaffUser
	findErr        error
	setActiveErr   error
	setActiveCalls int
	created        *models.StaffUser
	platformUserID string
	platformErr    error
	sessions       []models.StaffUser
}

func (s *staffStoreStub) FindByID(ctx context.Context, id string) (*models.StaffUser, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.staff, nil
}

func (s *staffStoreStub) SetActive(ctx context.Context, id string, isActive bool) error {
	s.setActiveCalls++
	return s.setActiveErr
}

func (s *staffStoreStub) Create(ctx context.Context, staff *models.StaffUser) error {
	s.created = staff
	return nil
}

func (s *staffStoreStub) ListSessions(ctx context.Context) ([]models.StaffUser, error) {
	return s.sessions, nil
}

func (s *staffStoreStub) FindPlatformUserIDByEmail(ctx context.Context, email string) (string, error) {
	if s.platformErr != nil {
		return "", s.platformErr
	}
	return s.platformUserID, nil
}

func boolPtr(b bool) *bool { return &b }

func TestStaffSetStatusSuspends(t *testing.T) {
	store := &staffStoreStub{staff: &models.StaffUser{ID: "a2", Email: "mod@bazarhub.test", Role: models.RoleModerator, IsActive: true}}
	audit := &auditStub{}
	svc := NewStaffService(&gateStub{}, store, audit, nil, nil)

	outcome, err := svc.SetStatus(context.Background(), &models.StaffClaims{StaffID: "root"}, dto.StaffStatusRequest{StaffID: "a2", IsActive: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, outcome.Idempotent)
	assert.Equal(t, 1, store.setActiveCalls)
	require.Len(t, audit.logs, 1)
	assert.Equal(t, models.AuditActionStaffSuspended, audit.logs[0].ActionType)
	assert.Contains(t, audit.logs[0].Details, "mod@bazarhub.test")
}

func TestStaffSetStatusSuperAdminImmutable(t *testing.T) {
	store := &staffStoreStub{staff: &models.StaffUser{ID: "root", Role: models.RoleSuperAdmin, IsActive: true}}
	svc := NewStaffService(&gateStub{}, store, &auditStub{}, nil, nil)

	_, err := svc.SetStatus(context.Background(), &models.StaffClaims{StaffID: "root"}, dto.StaffStatusRequest{StaffID: "root", IsActive: boolPtr(false)})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 403, appErr.Status)
	assert.Contains(t, appErr.Message, "super_admin")
	assert.Equal(t, 0, store.setActiveCalls)
}

func TestStaffSetStatusSameStateIsIdempotent(t *testing.T) {
	store := &staffStoreStub{staff: &models.StaffUser{ID: "a2", Role: models.RoleSupport, IsActive: true}}
	audit := &auditStub{}
	svc := NewStaffService(&gateStub{}, store, audit, nil, nil)

	outcome, err := svc.SetStatus(context.Background(), &models.StaffClaims{StaffID: "root"}, dto.StaffStatusRequest{StaffID: "a2", IsActive: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, outcome.Idempotent)
	assert.Equal(t, 0, store.setActiveCalls)
	assert.Empty(t, audit.logs)
}

func TestStaffSetStatusConcurrentRoleChange(t *testing.T) {
	store := &staffStoreStub{
		staff:        &models.StaffUser{ID: "a2", Role: models.RoleFinance, IsActive: true},
		setActiveErr: sql.ErrNoRows,
	}
	svc := NewStaffService(&gateStub{}, store, &auditStub{}, nil, nil)

	_, err := svc.SetStatus(context.Background(), &models.StaffClaims{StaffID: "root"}, dto.StaffStatusRequest{StaffID: "a2", IsActive: boolPtr(false)})
	require.Error(t, err)
	assert.Equal(t, 409, appErrors.FromError(err).Status)
}

func TestStaffInvite(t *testing.T) {
	store := &staffStoreStub{platformUserID: "u9"}
	audit := &auditStub{}
	svc := NewStaffService(&gateStub{}, store, audit, nil, nil)

	err := svc.Invite(context.Background(), &models.StaffClaims{StaffID: "root"}, dto.StaffInviteRequest{
		Email:    "New@BazarHub.Test",
		FullName: "New Mod",
		Role:     models.RoleModerator,
	})
	require.NoError(t, err)
	require.NotNil(t, store.created)
	assert.Equal(t, "u9", store.created.ID)
	assert.Equal(t, "new@bazarhub.test", store.created.Email)
	assert.True(t, store.created.IsActive)
	require.Len(t, audit.logs, 1)
	assert.Equal(t, models.AuditActionStaffInvite, audit.logs[0].ActionType)
}

func TestStaffInviteSuperAdminNotGrantable(t *testing.T) {
	svc := NewStaffService(&gateStub{}, &staffStoreStub{platformUserID: "u9"}, &auditStub{}, nil, nil)

	err := svc.Invite(context.Background(), &models.StaffClaims{StaffID: "root"}, dto.StaffInviteRequest{
		Email:    "new@bazarhub.test",
		FullName: "New Root",
		Role:     models.RoleSuperAdmin,
	})
	require.Error(t, err)
	assert.Contains(t, appErrors.FromError(err).Message, "invalid role")
}

func TestStaffInviteRequiresExistingPlatformUser(t *testing.T) {
	svc := NewStaffService(&gateStub{}, &staffStoreStub{platformErr: sql.ErrNoRows}, &auditStub{}, nil, nil)

	err := svc.Invite(context.Background(), &models.StaffClaims{StaffID: "root"}, dto.StaffInviteRequest{
		Email:    "ghost@bazarhub.test",
		FullName: "Ghost",
		Role:     models.RoleSupport,
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 404, appErr.Status)
	assert.Contains(t, appErr.Message, "sign up on the app first")
}

func TestStaffSessions(t *testing.T) {
	store := &staffStoreStub{sessions: []models.StaffUser{{ID: "a1"}, {ID: "a2"}}}
	svc := NewStaffService(&gateStub{}, store, &auditStub{}, nil, nil)

	sessions, err := svc.Sessions(context.Background(), &models.StaffClaims{StaffID: "root"})
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}
