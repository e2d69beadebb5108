package service

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazarhub/admin-api/internal/dto"
	"github.com/bazarhub/admin-api/internal/models"
)

type auditQueryStub struct {
	logs   []models.AuditLog
	err    error
	filter models.AuditFilter
}

func (a *auditQueryStub) List(ctx context.Context, filter models.AuditFilter) ([]models.AuditLog, error) {
	a.filter = filter
	if a.err != nil {
		return nil, a.err
	}
	return a.logs, nil
}

func sampleLogs() []models.AuditLog {
	email := "root@bazarhub.test"
	target := "o1"
	return []models.AuditLog{{
		ID:         "l1",
		AdminEmail: &email,
		ActionType: "ORDER_INTERVENTION",
		TargetID:   &target,
		Details:    "Forced status PAID -> CANCELLED. Category: fraud. Reason: confirmed chargeback. idem:tok-1",
		CreatedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}}
}

func TestAuditTrailCSVShape(t *testing.T) {
	store := &auditQueryStub{logs: sampleLogs()}
	svc := NewExportService(&gateStub{}, store, 500, nil)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	file, err := svc.AuditTrail(context.Background(), &models.StaffClaims{StaffID: "root"}, dto.AuditExportQuery{From: &from, Format: "csv"})
	require.NoError(t, err)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)
	assert.Equal(t, "audit-log-2026-03-01-all.csv", file.Filename)
	assert.Equal(t, 500, store.filter.Limit)

	records, err := csv.NewReader(strings.NewReader(string(file.Content))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"created_at", "admin_email", "action_type", "target_id", "details"}, records[0])
	assert.Equal(t, "2026-03-01T12:00:00Z", records[1][0])
	assert.Equal(t, "root@bazarhub.test", records[1][1])
	assert.Equal(t, "ORDER_INTERVENTION", records[1][2])
	assert.Contains(t, records[1][4], "idem:tok-1")
}

func TestAuditTrailPDF(t *testing.T) {
	svc := NewExportService(&gateStub{}, &auditQueryStub{logs: sampleLogs()}, 500, nil)

	file, err := svc.AuditTrail(context.Background(), &models.StaffClaims{StaffID: "root"}, dto.AuditExportQuery{Format: "pdf"})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.Equal(t, "audit-log-all-all.pdf", file.Filename)
	assert.True(t, strings.HasPrefix(string(file.Content), "%PDF"))
}

func TestAuditTrailGateDenied(t *testing.T) {
	deny := &gateStub{err: assert.AnError}
	store := &auditQueryStub{logs: sampleLogs()}
	svc := NewExportService(deny, store, 500, nil)

	_, err := svc.AuditTrail(context.Background(), &models.StaffClaims{StaffID: "content-1"}, dto.AuditExportQuery{Format: "csv"})
	require.Error(t, err)
	assert.Empty(t, store.filter.ActionType)
}
