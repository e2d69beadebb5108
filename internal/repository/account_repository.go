package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/bazarhub/admin-api/internal/models"
)

// AccountRepository provides database access to marketplace user profiles.
type AccountRepository struct {
	db *sqlx.DB
}

// NewAccountRepository creates a new instance of AccountRepository.
func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// FindByID returns the admin-visible slice of a profile.
func (r *AccountRepository) FindByID(ctx context.Context, id string) (*models.Profile, error) {
	const query = `SELECT id, account_status, is_verified, verification_status FROM profiles WHERE id = $1 LIMIT 1`
	var profile models.Profile
	if err := r.db.GetContext(ctx, &profile, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find profile by id: %w", err)
	}
	return &profile, nil
}

// UpdateAccountStatus changes a user's access state. Returns sql.ErrNoRows
// when the profile does not exist.
func (r *AccountRepository) UpdateAccountStatus(ctx context.Context, id string, status models.AccountStatus) error {
	const query = `UPDATE profiles SET account_status = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update account status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update account status: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateVerification mirrors a KYC decision onto the profile so the app
// shows correct state.
func (r *AccountRepository) UpdateVerification(ctx context.Context, id string, verified bool) error {
	var query string
	if verified {
		query = `UPDATE profiles SET is_verified = TRUE, verification_status = 'verified' WHERE id = $1`
	} else {
		query = `UPDATE profiles SET verification_status = 'rejected' WHERE id = $1`
	}
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("update profile verification: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update profile verification: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
