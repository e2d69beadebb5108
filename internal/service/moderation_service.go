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

type profileStore interface {
	FindByID(ctx context.Context, id string) (*models.Profile, error)
	UpdateAccountStatus(ctx context.Context, id string, status models.AccountStatus) error
	UpdateVerification(ctx context.Context, id string, verified bool) error
}

type verificationStore interface {
	FindByID(ctx context.Context, id string) (*models.MerchantVerification, error)
	UpdateStatus(ctx context.Context, id string, status models.MerchantVerificationStatus) error
}

// ModerationService covers trust & safety actions: account status changes
// and merchant KYC verification decisions.
type ModerationService struct {
	gate          authorizer
	profiles      profileStore
	verifications verificationStore
	audit         auditRecorder
	validate      *validator.Validate
	logger        *zap.Logger
}

// NewModerationService constructs the service.
func NewModerationService(gate authorizer, profiles profileStore, verifications verificationStore, audit auditRecorder, validate *validator.Validate, logger *zap.Logger) *ModerationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ModerationService{gate: gate, profiles: profiles, verifications: verifications, audit: audit, validate: validate, logger: logger}
}

// SetAccountStatus suspends or reactivates a marketplace user account.
func (s *ModerationService) SetAccountStatus(ctx context.Context, claims *models.StaffClaims, req dto.AccountStatusRequest) (*TransitionOutcome, error) {
	caller, err := s.gate.Authorize(ctx, claims, models.OpAccountStatus)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "userId, accountStatus and reason are required")
	}
	if len(strings.TrimSpace(req.Reason)) < 10 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "reason must be at least 10 characters")
	}

	profile, err := s.profiles.FindByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load profile")
	}
	if profile.AccountStatus == req.AccountStatus {
		return &TransitionOutcome{Idempotent: true}, nil
	}

	if err := s.profiles.UpdateAccountStatus(ctx, req.UserID, req.AccountStatus); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update account status")
	}

	detail := fmt.Sprintf("Changed account status to %s. Reason: %s", req.AccountStatus, req.Reason)
	if err := s.recordAudit(ctx, caller, models.AuditActionUserStatusChange, req.UserID, detail); err != nil {
		return nil, err
	}
	return &TransitionOutcome{}, nil
}

// DecideVerification rules on a merchant KYC request and mirrors the
// outcome onto the profile so the app shows correct state.
func (s *ModerationService) DecideVerification(ctx context.Context, claims *models.StaffClaims, req dto.VerificationDecisionRequest) (*TransitionOutcome, error) {
	caller, err := s.gate.Authorize(ctx, claims, models.OpVerificationDecision)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "requestId, profileId and decision are required")
	}

	request, err := s.verifications.FindByID(ctx, req.RequestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "verification request not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load verification request")
	}
	if request.ProfileID != req.ProfileID {
		return nil, appErrors.Clone(appErrors.ErrValidation, "profileId does not match the verification request")
	}

	verified := req.Decision == "verified"
	target := models.MerchantVerificationRejected
	if verified {
		target = models.MerchantVerificationApproved
	}
	if request.Status == target {
		return &TransitionOutcome{Idempotent: true}, nil
	}

	if err := s.verifications.UpdateStatus(ctx, req.RequestID, target); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "verification request not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update verification request")
	}
	if err := s.profiles.UpdateVerification(ctx, req.ProfileID, verified); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update profile verification")
	}

	label := "Rejected"
	if verified {
		label = "Approved"
	}
	detail := fmt.Sprintf("Merchant %s. Request ID: %s", label, req.RequestID)
	if err := s.recordAudit(ctx, caller, models.AuditActionKYCVerification, req.ProfileID, detail); err != nil {
		return nil, err
	}
	return &TransitionOutcome{}, nil
}

func (s *ModerationService) recordAudit(ctx context.Context, caller *models.CallerContext, actionType, targetID, detail string) error {
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
