package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazarhub/admin-api/internal/models"
	appErrors "github.com/bazarhub/admin-api/pkg/errors"
)

type staffDirectoryStub struct {
	staff *models.StaffUser
	err   error
}

func (s *staffDirectoryStub) FindByID(ctx context.Context, id string) (*models.StaffUser, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.staff, nil
}

func TestGateAuthorizeHappyPath(t *testing.T) {
	gate := NewGateService(&staffDirectoryStub{staff: &models.StaffUser{
		ID: "a1", Email: "fin@bazarhub.test", Role: models.RoleFinance, IsActive: true,
	}}, nil)

	caller, err := gate.Authorize(context.Background(), &models.StaffClaims{StaffID: "a1"}, models.OpPayoutDecision)
	require.NoError(t, err)
	assert.Equal(t, "a1", caller.ID)
	assert.Equal(t, models.RoleFinance, caller.Role)
}

func TestGateAuthorizeNilClaims(t *testing.T) {
	gate := NewGateService(&staffDirectoryStub{}, nil)

	_, err := gate.Authorize(context.Background(), nil, models.OpPayoutDecision)
	require.Error(t, err)
	assert.Equal(t, 401, appErrors.FromError(err).Status)
}

func TestGateAuthorizeUnknownStaff(t *testing.T) {
	gate := NewGateService(&staffDirectoryStub{err: sql.ErrNoRows}, nil)

	_, err := gate.Authorize(context.Background(), &models.StaffClaims{StaffID: "ghost"}, models.OpPayoutDecision)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 403, appErr.Status)
	assert.Equal(t, "admin access required", appErr.Message)
}

func TestGateAuthorizeFailsClosedOnDirectoryError(t *testing.T) {
	gate := NewGateService(&staffDirectoryStub{err: errors.New("connection refused")}, nil)

	_, err := gate.Authorize(context.Background(), &models.StaffClaims{StaffID: "a1"}, models.OpPayoutDecision)
	require.Error(t, err)
	assert.Equal(t, 401, appErrors.FromError(err).Status)
}

func TestGateAuthorizeInactiveStaff(t *testing.T) {
	gate := NewGateService(&staffDirectoryStub{staff: &models.StaffUser{
		ID: "a1", Role: models.RoleSuperAdmin, IsActive: false,
	}}, nil)

	_, err := gate.Authorize(context.Background(), &models.StaffClaims{StaffID: "a1"}, models.OpSettingsChange)
	require.Error(t, err)
	assert.Equal(t, 403, appErrors.FromError(err).Status)
}

// The directory record decides, not the token: a stale role claim in the JWT
// cannot widen access.
func TestGateAuthorizeIgnoresTokenRole(t *testing.T) {
	gate := NewGateService(&staffDirectoryStub{staff: &models.StaffUser{
		ID: "a1", Role: models.RoleAnalyst, IsActive: true,
	}}, nil)

	claims := &models.StaffClaims{StaffID: "a1", Role: models.RoleSuperAdmin}
	_, err := gate.Authorize(context.Background(), claims, models.OpPayoutDecision)
	require.Error(t, err)
	assert.Equal(t, 403, appErrors.FromError(err).Status)
}

// Every operation/role pair resolves to an explicit allow or deny.
func TestCapabilityTableTotality(t *testing.T) {
	ops := []models.Operation{
		models.OpOrderForceStatus, models.OpDisputeVerdict, models.OpPayoutDecision,
		models.OpAppealDecision, models.OpAccountStatus, models.OpStaffStatus,
		models.OpStaffInvite, models.OpStaffSessions, models.OpVerificationDecision,
		models.OpSettingsChange, models.OpAuditExport, models.OpSupportTicketResolve,
	}
	roles := []models.StaffRole{
		models.RoleSuperAdmin, models.RoleModerator, models.RoleFinance,
		models.RoleSupport, models.RoleContent, models.RoleAnalyst,
	}

	for _, op := range ops {
		assert.NotEmpty(t, models.RolesFor(op), "operation %s has no capability set", op)
		assert.True(t, models.OperationAllows(op, models.RoleSuperAdmin), "super_admin locked out of %s", op)
		for _, role := range roles {
			// Must not panic and must return a definite answer.
			_ = models.OperationAllows(op, role)
		}
	}

	// Unknown operations deny everyone.
	assert.False(t, models.OperationAllows(models.Operation("orders.delete"), models.RoleSuperAdmin))
	assert.Empty(t, models.RolesFor(models.Operation("orders.delete")))

	// Spot checks on the narrow sets.
	assert.False(t, models.OperationAllows(models.OpPayoutDecision, models.RoleSupport))
	assert.False(t, models.OperationAllows(models.OpStaffInvite, models.RoleModerator))
	assert.True(t, models.OperationAllows(models.OpAuditExport, models.RoleAnalyst))
	assert.False(t, models.OperationAllows(models.OpAuditExport, models.RoleContent))
}
