package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bazarhub/admin-api/internal/dto"
	"github.com/bazarhub/admin-api/internal/models"
	appErrors "github.com/bazarhub/admin-api/pkg/errors"
	"github.com/bazarhub/admin-api/pkg/export"
)

type auditQueryStore interface {
	List(ctx context.Context, filter models.AuditFilter) ([]models.AuditLog, error)
}

// ExportFile is a rendered compliance download.
type ExportFile struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders the audit trail for compliance download.
type ExportService struct {
	gate    authorizer
	audit   auditQueryStore
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	maxRows int
	logger  *zap.Logger
}

// NewExportService constructs the service.
func NewExportService(gate authorizer, audit auditQueryStore, maxRows int, logger *zap.Logger) *ExportService {
	if maxRows <= 0 {
		maxRows = 10000
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		gate:    gate,
		audit:   audit,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		maxRows: maxRows,
		logger:  logger,
	}
}

var auditExportHeaders = []string{"created_at", "admin_email", "action_type", "target_id", "details"}

// AuditTrail renders audit records matching the filter as CSV or PDF.
func (s *ExportService) AuditTrail(ctx context.Context, claims *models.StaffClaims, query dto.AuditExportQuery) (*ExportFile, error) {
	if _, err := s.gate.Authorize(ctx, claims, models.OpAuditExport); err != nil {
		return nil, err
	}

	logs, err := s.audit.List(ctx, models.AuditFilter{
		From:       query.From,
		To:         query.To,
		ActionType: query.ActionType,
		Limit:      s.maxRows,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to query audit trail")
	}

	dataset := export.Dataset{Headers: auditExportHeaders, Rows: make([]map[string]string, 0, len(logs))}
	for _, log := range logs {
		row := map[string]string{
			"created_at":  log.CreatedAt.UTC().Format(time.RFC3339),
			"action_type": log.ActionType,
			"details":     log.Details,
		}
		if log.AdminEmail != nil {
			row["admin_email"] = *log.AdminEmail
		}
		if log.TargetID != nil {
			row["target_id"] = *log.TargetID
		}
		dataset.Rows = append(dataset.Rows, row)
	}

	stem := fmt.Sprintf("audit-log-%s-%s", rangeLabel(query.From), rangeLabel(query.To))

	if query.Format == "pdf" {
		content, err := s.pdf.Render(dataset, "Audit Trail")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render audit export")
		}
		return &ExportFile{Content: content, ContentType: "application/pdf", Filename: stem + ".pdf"}, nil
	}

	content, err := s.csv.Render(dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render audit export")
	}
	return &ExportFile{Content: content, ContentType: "text/csv; charset=utf-8", Filename: stem + ".csv"}, nil
}

func rangeLabel(t *time.Time) string {
	if t == nil {
		return "all"
	}
	return t.UTC().Format("2006-01-02")
}
