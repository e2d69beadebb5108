package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/bazarhub/admin-api/internal/models"
)

// AppealRepository provides database access for suspension appeals.
type AppealRepository struct {
	db *sqlx.DB
}

// NewAppealRepository creates a new instance of AppealRepository.
func NewAppealRepository(db *sqlx.DB) *AppealRepository {
	return &AppealRepository{db: db}
}

// FindByIDAndUser returns an appeal scoped to its owning user.
func (r *AppealRepository) FindByIDAndUser(ctx context.Context, id, userID string) (*models.Appeal, error) {
	const query = `SELECT id, user_id, status, admin_notes, created_at, updated_at FROM suspension_appeals WHERE id = $1 AND user_id = $2 LIMIT 1`
	var appeal models.Appeal
	if err := r.db.GetContext(ctx, &appeal, query, id, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find appeal: %w", err)
	}
	return &appeal, nil
}

// DecideConditional rules on a pending appeal with a compare-and-swap on the
// pending state. Returns sql.ErrNoRows when the appeal was already decided.
func (r *AppealRepository) DecideConditional(ctx context.Context, id, userID string, to models.AppealStatus, adminNotes *string) error {
	const query = `UPDATE suspension_appeals SET status = $3, admin_notes = $4, updated_at = $5 WHERE id = $1 AND user_id = $2 AND status = $6`
	res, err := r.db.ExecContext(ctx, query, id, userID, to, adminNotes, time.Now().UTC(), models.AppealPending)
	if err != nil {
		return fmt.Errorf("decide appeal: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("decide appeal: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
