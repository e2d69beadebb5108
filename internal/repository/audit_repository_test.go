package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazarhub/admin-api/internal/models"
)

func TestAuditRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAuditRepository(db)

	mock.ExpectExec("INSERT INTO admin_audit_logs").
		WillReturnResult(sqlmock.NewResult(1, 1))

	adminID := "a1"
	email := "root@bazarhub.test"
	log := &models.AuditLog{
		AdminID:    &adminID,
		AdminEmail: &email,
		ActionType: models.AuditActionOrderIntervention,
		Details:    "Forced status PAID -> CANCELLED. Category: fraud. Reason: chargeback confirmed. idem:tok-1",
	}
	require.NoError(t, repo.Create(context.Background(), log))
	assert.NotEmpty(t, log.ID)
	assert.False(t, log.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepositoryHasIdempotentEntry(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAuditRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM admin_audit_logs WHERE action_type = $1 AND target_id = $2 AND details ILIKE $3)")).
		WithArgs(models.AuditActionOrderIntervention, "o1", "%idem:tok-1%").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	seen, err := repo.HasIdempotentEntry(context.Background(), models.AuditActionOrderIntervention, "o1", "tok-1")
	require.NoError(t, err)
	assert.True(t, seen)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepositoryHasIdempotentEntryEscapesWildcards(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAuditRepository(db)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(models.AuditActionPayoutApprove, "p1", `%idem:tok\%\_1%`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	seen, err := repo.HasIdempotentEntry(context.Background(), models.AuditActionPayoutApprove, "p1", "tok%_1")
	require.NoError(t, err)
	assert.False(t, seen)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepositoryListWithFilters(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAuditRepository(db)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "admin_id", "admin_email", "action_type", "target_id", "details", "created_at"}).
		AddRow("l1", "a1", "root@bazarhub.test", "PAYOUT_APPROVE", "p1", "Payout approve. idem:t1", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("created_at >= $1 AND created_at <= $2 AND action_type = $3 ORDER BY created_at DESC LIMIT 500")).
		WithArgs(from, to, "PAYOUT_APPROVE").
		WillReturnRows(rows)

	logs, err := repo.List(context.Background(), models.AuditFilter{
		From:       &from,
		To:         &to,
		ActionType: "PAYOUT_APPROVE",
		Limit:      500,
	})
	require.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
