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

type payoutTransitionService interface {
	PayoutDecision(ctx context.Context, claims *models.StaffClaims, token string, req dto.PayoutDecisionRequest) (*service.TransitionOutcome, error)
}

// PayoutHandler exposes payout approval endpoints.
type PayoutHandler struct {
	service payoutTransitionService
}

// NewPayoutHandler builds a new handler.
func NewPayoutHandler(service payoutTransitionService) *PayoutHandler {
	return &PayoutHandler{service: service}
}

// Decide godoc
// @Summary Approve or reject a pending payout
// @Tags Payouts
// @Accept json
// @Produce json
// @Param X-Idempotency-Key header string true "Idempotency token"
// @Param payload body dto.PayoutDecisionRequest true "Decision payload"
// @Success 200 {object} response.Ack
// @Router /api/v1/payouts/decision [post]
func (h *PayoutHandler) Decide(c *gin.Context) {
	var req dto.PayoutDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid decision payload"))
		return
	}
	outcome, err := h.service.PayoutDecision(c.Request.Context(), claimsFromContext(c), idempotencyToken(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	ackOutcome(c, outcome.Idempotent)
}
