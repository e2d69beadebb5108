package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/bazarhub/admin-api/internal/models"
)

// VerificationRepository provides database access for merchant KYC requests.
type VerificationRepository struct {
	db *sqlx.DB
}

// NewVerificationRepository creates a new instance of VerificationRepository.
func NewVerificationRepository(db *sqlx.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

// FindByID returns a verification request.
func (r *VerificationRepository) FindByID(ctx context.Context, id string) (*models.MerchantVerification, error) {
	const query = `SELECT id, profile_id, status, created_at FROM merchant_verifications WHERE id = $1 LIMIT 1`
	var req models.MerchantVerification
	if err := r.db.GetContext(ctx, &req, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find verification by id: %w", err)
	}
	return &req, nil
}

// UpdateStatus records the review outcome. Returns sql.ErrNoRows when the
// request does not exist.
func (r *VerificationRepository) UpdateStatus(ctx context.Context, id string, status models.MerchantVerificationStatus) error {
	const query = `UPDATE merchant_verifications SET status = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update verification status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update verification status: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
