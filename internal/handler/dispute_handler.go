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

type disputeTransitionService interface {
	DisputeVerdict(ctx context.Context, claims *models.StaffClaims, token string, req dto.DisputeVerdictRequest) (*service.TransitionOutcome, error)
}

// DisputeHandler exposes tribunal endpoints.
type DisputeHandler struct {
	service disputeTransitionService
}

// NewDisputeHandler builds a new handler.
func NewDisputeHandler(service disputeTransitionService) *DisputeHandler {
	return &DisputeHandler{service: service}
}

// Verdict godoc
// @Summary Resolve an open dispute with a verdict
// @Tags Disputes
// @Accept json
// @Produce json
// @Param X-Idempotency-Key header string true "Idempotency token"
// @Param payload body dto.DisputeVerdictRequest true "Verdict payload"
// @Success 200 {object} response.Ack
// @Router /api/v1/disputes/verdict [post]
func (h *DisputeHandler) Verdict(c *gin.Context) {
	var req dto.DisputeVerdictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid verdict payload"))
		return
	}
	outcome, err := h.service.DisputeVerdict(c.Request.Context(), claimsFromContext(c), idempotencyToken(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	ackOutcome(c, outcome.Idempotent)
}
