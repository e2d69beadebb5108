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

type staffService interface {
	SetStatus(ctx context.Context, claims *models.StaffClaims, req dto.StaffStatusRequest) (*service.TransitionOutcome, error)
	Invite(ctx context.Context, claims *models.StaffClaims, req dto.StaffInviteRequest) error
	Sessions(ctx context.Context, claims *models.StaffClaims) ([]models.StaffUser, error)
}

// StaffHandler exposes staff directory management endpoints.
type StaffHandler struct {
	service staffService
}

// NewStaffHandler builds a new handler.
func NewStaffHandler(service staffService) *StaffHandler {
	return &StaffHandler{service: service}
}

// SetStatus godoc
// @Summary Activate or suspend a staff account
// @Tags Staff
// @Accept json
// @Produce json
// @Param payload body dto.StaffStatusRequest true "Status payload"
// @Success 200 {object} response.Ack
// @Router /api/v1/staff/status [post]
func (h *StaffHandler) SetStatus(c *gin.Context) {
	var req dto.StaffStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid status payload"))
		return
	}
	outcome, err := h.service.SetStatus(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	ackOutcome(c, outcome.Idempotent)
}

// Invite godoc
// @Summary Grant a console role to a platform user
// @Tags Staff
// @Accept json
// @Produce json
// @Param payload body dto.StaffInviteRequest true "Invite payload"
// @Success 200 {object} response.Ack
// @Router /api/v1/staff/invite [post]
func (h *StaffHandler) Invite(c *gin.Context) {
	var req dto.StaffInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid invite payload"))
		return
	}
	if err := h.service.Invite(c.Request.Context(), claimsFromContext(c), req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

// Sessions godoc
// @Summary List staff accounts with their last console activity
// @Tags Staff
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/v1/staff/sessions [get]
func (h *StaffHandler) Sessions(c *gin.Context) {
	sessions, err := h.service.Sessions(c.Request.Context(), claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sessions)
}
