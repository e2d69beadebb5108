package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/bazarhub/admin-api/internal/models"
)

// OrderRepository provides database access for order interventions.
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new instance of OrderRepository.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// FindByID returns the current transitionable state of an order.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	const query = `SELECT id, status, refund_status, buyer_id, seller_id, updated_at FROM orders WHERE id = $1 LIMIT 1`
	var order models.Order
	if err := r.db.GetContext(ctx, &order, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find order by id: %w", err)
	}
	return &order, nil
}

// SettleConditional moves an order into a terminal state with a
// compare-and-swap on the observed status. Returns sql.ErrNoRows when the
// guard fails, meaning a concurrent transition won the race.
func (r *OrderRepository) SettleConditional(ctx context.Context, id string, from, to models.OrderStatus, refund models.RefundStatus) error {
	const query = `UPDATE orders SET status = $3, refund_status = $4, updated_at = $5 WHERE id = $1 AND status = $2`
	res, err := r.db.ExecContext(ctx, query, id, from, to, refund, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("settle order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("settle order: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
