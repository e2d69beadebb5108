package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/bazarhub/admin-api/internal/models"
)

// DisputeRepository provides database access for dispute verdicts.
type DisputeRepository struct {
	db *sqlx.DB
}

// NewDisputeRepository creates a new instance of DisputeRepository.
func NewDisputeRepository(db *sqlx.DB) *DisputeRepository {
	return &DisputeRepository{db: db}
}

// FindByID returns the current state of a dispute.
func (r *DisputeRepository) FindByID(ctx context.Context, id string) (*models.Dispute, error) {
	const query = `SELECT id, order_id, status, admin_verdict, resolved_at, created_at FROM disputes WHERE id = $1 LIMIT 1`
	var dispute models.Dispute
	if err := r.db.GetContext(ctx, &dispute, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find dispute by id: %w", err)
	}
	return &dispute, nil
}

// ResolveConditional records a verdict on an open dispute with a
// compare-and-swap on the open state. Returns sql.ErrNoRows when the dispute
// was resolved concurrently.
func (r *DisputeRepository) ResolveConditional(ctx context.Context, id string, verdict models.DisputeStatus, adminVerdict string, resolvedAt time.Time) error {
	const query = `UPDATE disputes SET status = $2, admin_verdict = $3, resolved_at = $4 WHERE id = $1 AND status = $5`
	res, err := r.db.ExecContext(ctx, query, id, verdict, adminVerdict, resolvedAt, models.DisputeOpen)
	if err != nil {
		return fmt.Errorf("resolve dispute: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("resolve dispute: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
