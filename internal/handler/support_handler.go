package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bazarhub/admin-api/internal/dto"
	"github.com/bazarhub/admin-api/internal/models"
	appErrors "github.com/bazarhub/admin-api/pkg/errors"
	"github.com/bazarhub/admin-api/pkg/response"
)

type supportService interface {
	ResolveTicket(ctx context.Context, claims *models.StaffClaims, req dto.SupportResolveRequest) error
}

// SupportHandler exposes support ticket endpoints.
type SupportHandler struct {
	service supportService
}

// NewSupportHandler builds a new handler.
func NewSupportHandler(service supportService) *SupportHandler {
	return &SupportHandler{service: service}
}

// Resolve godoc
// @Summary Mark a support ticket resolved
// @Tags Support
// @Accept json
// @Produce json
// @Param payload body dto.SupportResolveRequest true "Ticket payload"
// @Success 200 {object} response.Ack
// @Router /api/v1/support/resolve [post]
func (h *SupportHandler) Resolve(c *gin.Context) {
	var req dto.SupportResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid ticket payload"))
		return
	}
	if err := h.service.ResolveTicket(c.Request.Context(), claimsFromContext(c), req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}
