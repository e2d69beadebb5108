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

type appealTransitionService interface {
	AppealDecision(ctx context.Context, claims *models.StaffClaims, req dto.AppealDecisionRequest) (*service.TransitionOutcome, error)
}

// AppealHandler exposes suspension appeal endpoints.
type AppealHandler struct {
	service appealTransitionService
}

// NewAppealHandler builds a new handler.
func NewAppealHandler(service appealTransitionService) *AppealHandler {
	return &AppealHandler{service: service}
}

// Decide godoc
// @Summary Rule on a suspension appeal
// @Tags Appeals
// @Accept json
// @Produce json
// @Param payload body dto.AppealDecisionRequest true "Decision payload"
// @Success 200 {object} response.Ack
// @Router /api/v1/appeals/decision [post]
func (h *AppealHandler) Decide(c *gin.Context) {
	var req dto.AppealDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid decision payload"))
		return
	}
	outcome, err := h.service.AppealDecision(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	ackOutcome(c, outcome.Idempotent)
}
