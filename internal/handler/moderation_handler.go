package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bazarhub/admin-api/internal/dto"
	"github.com/bazarhub/admin-api/internal/models"
	"github.com/bazarhub/admin-api/internal/service"
	appErrors "github.com/bazarhub/admin-api/pkg/errors"
	"github.com/bazarhub/admin-api/pkg/response"
)

type moderationService interface {
	SetAccountStatus(ctx context.Context, claims *models.StaffClaims, req dto.AccountStatusRequest) (*service.TransitionOutcome, error)
	DecideVerification(ctx context.Context, claims *models.StaffClaims, req dto.VerificationDecisionRequest) (*service.TransitionOutcome, error)
}

// ModerationHandler exposes user moderation endpoints.
type ModerationHandler struct {
	service moderationService
}

// NewModerationHandler builds a new handler.
func NewModerationHandler(service moderationService) *ModerationHandler {
	return &ModerationHandler{service: service}
}

// AccountStatus godoc
// @Summary Suspend or reactivate a marketplace account
// @Tags Moderation
// @Accept json
// @Produce json
// @Param payload body dto.AccountStatusRequest true "Status payload"
// @Success 200 {object} response.Ack
// @Router /api/v1/users/account-status [post]
func (h *ModerationHandler) AccountStatus(c *gin.Context) {
	var req dto.AccountStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid status payload"))
		return
	}
	outcome, err := h.service.SetAccountStatus(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	ackOutcome(c, outcome.Idempotent)
}

// Verification godoc
// @Summary Decide a merchant verification request
// @Tags Moderation
// @Accept json
// @Produce json
// @Param payload body dto.VerificationDecisionRequest true "Decision payload"
// @Success 200 {object} response.Ack
// @Router /api/v1/verifications/decision [post]
func (h *ModerationHandler) Verification(c *gin.Context) {
	var req dto.VerificationDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid decision payload"))
		return
	}
	outcome, err := h.service.DecideVerification(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	ackOutcome(c, outcome.Idempotent)
}
