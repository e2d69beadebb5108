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

type profileStoreStub struct {
	profile           *models.Profile
	findErr           error
	statusCalls       int
	lastStatus        models.AccountStatus
	verificationCalls int
	lastVerified      bool
}

func (s *profileStoreStub) FindByID(ctx context.Context, id string) (*models.Profile, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.profile, nil
}

func (s *profileStoreStub) UpdateAccountStatus(ctx context.Context, id string, status models.AccountStatus) error {
	s.statusCalls++
	s.lastStatus = status
	return nil
}

func (s *profileStoreStub) UpdateVerification(ctx context.Context, id string, verified bool) error {
	s.verificationCalls++
	s.lastVerified = verified
	return nil
}

type verificationStoreStub struct {
	request     *models.MerchantVerification
	findErr     error
	updateCalls int
	lastStatus  models.MerchantVerificationStatus
}

func (s *verificationStoreStub) FindByID(ctx context.Context, id string) (*models.MerchantVerification, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.request, nil
}

func (s *verificationStoreStub) UpdateStatus(ctx context.Context, id string, status models.MerchantVerificationStatus) error {
	s.updateCalls++
	s.lastStatus = status
	return nil
}

func accountStatusReq() dto.AccountStatusRequest {
	return dto.AccountStatusRequest{
		UserID:        "u1",
		AccountStatus: models.AccountSuspended,
		Reason:        "repeated counterfeit listings",
	}
}

func TestSetAccountStatusSuspends(t *testing.T) {
	profiles := &profileStoreStub{profile: &models.Profile{ID: "u1", AccountStatus: models.AccountActive}}
	audit := &auditStub{}
	svc := NewModerationService(&gateStub{}, profiles, &verificationStoreStub{}, audit, nil, nil)

	outcome, err := svc.SetAccountStatus(context.Background(), &models.StaffClaims{StaffID: "mod-1"}, accountStatusReq())
	require.NoError(t, err)
	assert.False(t, outcome.Idempotent)
	assert.Equal(t, models.AccountSuspended, profiles.lastStatus)
	require.Len(t, audit.logs, 1)
	assert.Equal(t, models.AuditActionUserStatusChange, audit.logs[0].ActionType)
	assert.Contains(t, audit.logs[0].Details, "suspended")
}

func TestSetAccountStatusReasonFloor(t *testing.T) {
	svc := NewModerationService(&gateStub{}, &profileStoreStub{}, &verificationStoreStub{}, &auditStub{}, nil, nil)

	req := accountStatusReq()
	req.Reason = "spam"
	_, err := svc.SetAccountStatus(context.Background(), &models.StaffClaims{StaffID: "mod-1"}, req)
	require.Error(t, err)
	assert.Contains(t, appErrors.FromError(err).Message, "at least 10 characters")
}

func TestSetAccountStatusSameStatusIsIdempotent(t *testing.T) {
	profiles := &profileStoreStub{profile: &models.Profile{ID: "u1", AccountStatus: models.AccountSuspended}}
	audit := &auditStub{}
	svc := NewModerationService(&gateStub{}, profiles, &verificationStoreStub{}, audit, nil, nil)

	outcome, err := svc.SetAccountStatus(context.Background(), &models.StaffClaims{StaffID: "mod-1"}, accountStatusReq())
	require.NoError(t, err)
	assert.True(t, outcome.Idempotent)
	assert.Equal(t, 0, profiles.statusCalls)
	assert.Empty(t, audit.logs)
}

func TestSetAccountStatusUnknownUser(t *testing.T) {
	svc := NewModerationService(&gateStub{}, &profileStoreStub{findErr: sql.ErrNoRows}, &verificationStoreStub{}, &auditStub{}, nil, nil)

	_, err := svc.SetAccountStatus(context.Background(), &models.StaffClaims{StaffID: "mod-1"}, accountStatusReq())
	require.Error(t, err)
	assert.Equal(t, 404, appErrors.FromError(err).Status)
}

func verificationReq() dto.VerificationDecisionRequest {
	return dto.VerificationDecisionRequest{
		RequestID: "vr1",
		ProfileID: "u1",
		Decision:  "verified",
	}
}

func TestDecideVerificationApproveMirrorsToProfile(t *testing.T) {
	verifications := &verificationStoreStub{request: &models.MerchantVerification{ID: "vr1", ProfileID: "u1", Status: models.MerchantVerificationPending}}
	profiles := &profileStoreStub{profile: &models.Profile{ID: "u1"}}
	audit := &auditStub{}
	svc := NewModerationService(&gateStub{}, profiles, verifications, audit, nil, nil)

	outcome, err := svc.DecideVerification(context.Background(), &models.StaffClaims{StaffID: "mod-1"}, verificationReq())
	require.NoError(t, err)
	assert.False(t, outcome.Idempotent)
	assert.Equal(t, models.MerchantVerificationApproved, verifications.lastStatus)
	assert.Equal(t, 1, profiles.verificationCalls)
	assert.True(t, profiles.lastVerified)
	require.Len(t, audit.logs, 1)
	assert.Equal(t, models.AuditActionKYCVerification, audit.logs[0].ActionType)
}

func TestDecideVerificationReject(t *testing.T) {
	verifications := &verificationStoreStub{request: &models.MerchantVerification{ID: "vr1", ProfileID: "u1", Status: models.MerchantVerificationPending}}
	profiles := &profileStoreStub{profile: &models.Profile{ID: "u1"}}
	svc := NewModerationService(&gateStub{}, profiles, verifications, &auditStub{}, nil, nil)

	req := verificationReq()
	req.Decision = "rejected"
	_, err := svc.DecideVerification(context.Background(), &models.StaffClaims{StaffID: "mod-1"}, req)
	require.NoError(t, err)
	assert.Equal(t, models.MerchantVerificationRejected, verifications.lastStatus)
	assert.False(t, profiles.lastVerified)
}

func TestDecideVerificationProfileMismatch(t *testing.T) {
	verifications := &verificationStoreStub{request: &models.MerchantVerification{ID: "vr1", ProfileID: "u2", Status: models.MerchantVerificationPending}}
	svc := NewModerationService(&gateStub{}, &profileStoreStub{}, verifications, &auditStub{}, nil, nil)

	_, err := svc.DecideVerification(context.Background(), &models.StaffClaims{StaffID: "mod-1"}, verificationReq())
	require.Error(t, err)
	assert.Contains(t, appErrors.FromError(err).Message, "profileId does not match")
	assert.Equal(t, 0, verifications.updateCalls)
}

func TestDecideVerificationSameOutcomeIsIdempotent(t *testing.T) {
	verifications := &verificationStoreStub{request: &models.MerchantVerification{ID: "vr1", ProfileID: "u1", Status: models.MerchantVerificationApproved}}
	profiles := &profileStoreStub{}
	svc := NewModerationService(&gateStub{}, profiles, verifications, &auditStub{}, nil, nil)

	outcome, err := svc.DecideVerification(context.Background(), &models.StaffClaims{StaffID: "mod-1"}, verificationReq())
	require.NoError(t, err)
	assert.True(t, outcome.Idempotent)
	assert.Equal(t, 0, verifications.updateCalls)
	assert.Equal(t, 0, profiles.verificationCalls)
}
