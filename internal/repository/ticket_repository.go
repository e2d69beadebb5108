package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/bazarhub/admin-api/internal/models"
)

// TicketRepository provides database access for support tickets.
type TicketRepository struct {
	db *sqlx.DB
}

// NewTicketRepository creates a new instance of TicketRepository.
func NewTicketRepository(db *sqlx.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// Resolve marks a ticket RESOLVED. Returns sql.ErrNoRows when the ticket
// does not exist.
func (r *TicketRepository) Resolve(ctx context.Context, id string) error {
	const query = `UPDATE support_tickets SET status = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, models.TicketResolved)
	if err != nil {
		return fmt.Errorf("resolve ticket: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("resolve ticket: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
