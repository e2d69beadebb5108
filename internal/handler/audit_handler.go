package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bazarhub/admin-api/internal/dto"
	"github.com/bazarhub/admin-api/internal/models"
	"github.com/bazarhub/admin-api/internal/service"
	appErrors "github.com/bazarhub/admin-api/pkg/errors"
	"github.com/bazarhub/admin-api/pkg/response"
)

type exportService interface {
	AuditTrail(ctx context.Context, claims *models.StaffClaims, query dto.AuditExportQuery) (*service.ExportFile, error)
}

// AuditHandler exposes the compliance export endpoint.
type AuditHandler struct {
	service exportService
}

// NewAuditHandler builds a new handler.
func NewAuditHandler(service exportService) *AuditHandler {
	return &AuditHandler{service: service}
}

// Export godoc
// @Summary Download the audit trail as CSV or PDF
// @Tags Audit
// @Produce octet-stream
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param action_type query string false "Filter by action type"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /api/v1/audit/export [get]
func (h *AuditHandler) Export(c *gin.Context) {
	query := dto.AuditExportQuery{
		ActionType: c.Query("action_type"),
		Format:     c.DefaultQuery("format", "csv"),
	}
	if query.Format != "csv" && query.Format != "pdf" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
		return
	}

	var err error
	if query.From, err = parseDateQuery(c.Query("from"), false); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid from date, expected YYYY-MM-DD"))
		return
	}
	if query.To, err = parseDateQuery(c.Query("to"), true); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid to date, expected YYYY-MM-DD"))
		return
	}

	file, err := h.service.AuditTrail(c.Request.Context(), claimsFromContext(c), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(200, file.ContentType, file.Content)
}

// parseDateQuery reads a YYYY-MM-DD value. End dates cover the whole day.
func parseDateQuery(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
