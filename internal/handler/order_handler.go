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

type orderTransitionService interface {
	ForceOrderStatus(ctx context.Context, claims *models.StaffClaims, token string, req dto.ForceOrderStatusRequest) (*service.TransitionOutcome, error)
}

// OrderHandler exposes order intervention endpoints.
type OrderHandler struct {
	service orderTransitionService
}

// NewOrderHandler builds a new handler.
func NewOrderHandler(service orderTransitionService) *OrderHandler {
	return &OrderHandler{service: service}
}

// ForceStatus godoc
// @Summary Force an order into a terminal status
// @Tags Orders
// @Accept json
// @Produce json
// @Param X-Idempotency-Key header string true "Idempotency token"
// @Param payload body dto.ForceOrderStatusRequest true "Intervention payload"
// @Success 200 {object} response.Ack
// @Router /api/v1/orders/force-status [post]
func (h *OrderHandler) ForceStatus(c *gin.Context) {
	var req dto.ForceOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid intervention payload"))
		return
	}
	outcome, err := h.service.ForceOrderStatus(c.Request.Context(), claimsFromContext(c), idempotencyToken(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	ackOutcome(c, outcome.Idempotent)
}
