package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/bazarhub/admin-api/internal/dto"
	"github.com/bazarhub/admin-api/internal/models"
	appErrors "github.com/bazarhub/admin-api/pkg/errors"
)

type staffStore interface {
	FindByID(ctx context.Context, id string) (*models.StaffUser, error)
	SetActive(ctx context.Context, id string, isActive bool) error
	Create(ctx context.Context, staff *models.StaffUser) error
	ListSessions(ctx context.Context) ([]models.StaffUser, error)
	FindPlatformUserIDByEmail(ctx context.Context, email string) (string, error)
}

// StaffService manages console access: suspending and reactivating staff,
// granting roles through the invite flow, and the sessions view.
type StaffService struct {
	gate     authorizer
	repo     staffStore
	audit    auditRecorder
	validate *validator.Validate
	logger   *zap.Logger
}

// NewStaffService constructs the service.
func NewStaffService(gate authorizer, repo staffStore, audit auditRecorder, validate *validator.Validate, logger *zap.Logger) *StaffService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StaffService{gate: gate, repo: repo, audit: audit, validate: validate, logger: logger}
}

// SetStatus toggles console access for a staff member. super_admin records
// are immutable through this path, always.
func (s *StaffService) SetStatus(ctx context.Context, claims *models.StaffClaims, req dto.StaffStatusRequest) (*TransitionOutcome, error) {
	caller, err := s.gate.Authorize(ctx, claims, models.OpStaffStatus)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "staffId and isActive are required")
	}

	staff, err := s.repo.FindByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "staff member not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load staff member")
	}

	if staff.Role == models.RoleSuperAdmin {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "cannot modify super_admin access state")
	}

	isActive := *req.IsActive
	if staff.IsActive == isActive {
		return &TransitionOutcome{Idempotent: true}, nil
	}

	if err := s.repo.SetActive(ctx, req.StaffID, isActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "staff record changed concurrently")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update staff status")
	}

	action := models.AuditActionStaffSuspended
	label := "Suspended"
	if isActive {
		action = models.AuditActionStaffActivated
		label = "Activated"
	}
	if err := s.recordAudit(ctx, caller, action, req.StaffID, fmt.Sprintf("%s access for staff: %s", label, staff.Email)); err != nil {
		return nil, err
	}
	return &TransitionOutcome{}, nil
}

// Invite grants a console role to an existing platform user. The user must
// have signed up on the marketplace first; super_admin is never grantable.
func (s *StaffService) Invite(ctx context.Context, claims *models.StaffClaims, req dto.StaffInviteRequest) error {
	caller, err := s.gate.Authorize(ctx, claims, models.OpStaffInvite)
	if err != nil {
		return err
	}
	if err := s.validate.Struct(req); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "email, fullName and role are required")
	}
	if _, ok := models.InvitableRoles[req.Role]; !ok {
		return appErrors.Clone(appErrors.ErrValidation, "invalid role for staff invite")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	userID, err := s.repo.FindPlatformUserIDByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "user not found; they must sign up on the app first")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve user")
	}

	fullName := strings.TrimSpace(req.FullName)
	staff := &models.StaffUser{
		ID:       userID,
		Email:    email,
		FullName: &fullName,
		Role:     req.Role,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, staff); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create staff record")
	}

	return s.recordAudit(ctx, caller, models.AuditActionStaffInvite, userID, fmt.Sprintf("Granted %s admin role to %s.", req.Role, email))
}

// Sessions returns the staff roster with last login data for the
// super_admin sessions view.
func (s *StaffService) Sessions(ctx context.Context, claims *models.StaffClaims) ([]models.StaffUser, error) {
	if _, err := s.gate.Authorize(ctx, claims, models.OpStaffSessions); err != nil {
		return nil, err
	}
	staff, err := s.repo.ListSessions(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list staff sessions")
	}
	return staff, nil
}

func (s *StaffService) recordAudit(ctx context.Context, caller *models.CallerContext, actionType, targetID, detail string) error {
	log := &models.AuditLog{
		AdminID:    &caller.ID,
		AdminEmail: &caller.Email,
		ActionType: actionType,
		TargetID:   &targetID,
		Details:    detail,
	}
	if err := s.audit.Create(ctx, log); err != nil {
		s.logger.Error("audit write failed, failing operation", zap.String("action", actionType), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record audit trail")
	}
	return nil
}
