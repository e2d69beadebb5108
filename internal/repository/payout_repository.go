package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/bazarhub/admin-api/internal/models"
)

// PayoutRepository provides database access for payout decisions.
type PayoutRepository struct {
	db *sqlx.DB
}

// NewPayoutRepository creates a new instance of PayoutRepository.
func NewPayoutRepository(db *sqlx.DB) *PayoutRepository {
	return &PayoutRepository{db: db}
}

// FindByID returns the current state of a payout.
func (r *PayoutRepository) FindByID(ctx context.Context, id string) (*models.Payout, error) {
	const query = `SELECT id, seller_id, amount, status, created_at FROM payouts WHERE id = $1 LIMIT 1`
	var payout models.Payout
	if err := r.db.GetContext(ctx, &payout, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find payout by id: %w", err)
	}
	return &payout, nil
}

// DecideConditional finalizes a pending payout with a compare-and-swap on
// the pending state. Returns sql.ErrNoRows when the payout was finalized
// concurrently.
func (r *PayoutRepository) DecideConditional(ctx context.Context, id string, to models.PayoutStatus) error {
	const query = `UPDATE payouts SET status = $2 WHERE id = $1 AND status = $3`
	res, err := r.db.ExecContext(ctx, query, id, to, models.PayoutPending)
	if err != nil {
		return fmt.Errorf("decide payout: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("decide payout: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
