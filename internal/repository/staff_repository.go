package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/bazarhub/admin-api/internal/models"
)

// StaffRepository provides database access to the staff directory.
type StaffRepository struct {
	db *sqlx.DB
}

// NewStaffRepository creates a new instance of StaffRepository.
func NewStaffRepository(db *sqlx.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

// FindByEmail returns a staff record by email address.
func (r *StaffRepository) FindByEmail(ctx context.Context, email string) (*models.StaffUser, error) {
	const query = `SELECT id, email, password_hash, full_name, role, is_active, last_login, last_login_ip, created_at, updated_at FROM admin_users WHERE email = $1 LIMIT 1`
	var staff models.StaffUser
	if err := r.db.GetContext(ctx, &staff, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find staff by email: %w", err)
	}
	return &staff, nil
}

// FindByID returns a staff record by identifier.
func (r *StaffRepository) FindByID(ctx context.Context, id string) (*models.StaffUser, error) {
	const query = `SELECT id, email, password_hash, full_name, role, is_active, last_login, last_login_ip, created_at, updated_at FROM admin_users WHERE id = $1 LIMIT 1`
	var staff models.StaffUser
	if err := r.db.GetContext(ctx, &staff, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find staff by id: %w", err)
	}
	return &staff, nil
}

// UpdateLastLogin records the time and origin of a successful login.
func (r *StaffRepository) UpdateLastLogin(ctx context.Context, id string, ts time.Time, ip string) error {
	const query = `UPDATE admin_users SET last_login = $2, last_login_ip = $3, updated_at = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, ts, ip); err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

// SetActive toggles console access for a staff member. The super_admin
// immutability rule is enforced by the caller before this runs; the WHERE
// clause repeats it so a racing role change cannot slip through.
func (r *StaffRepository) SetActive(ctx context.Context, id string, isActive bool) error {
	const query = `UPDATE admin_users SET is_active = $2, updated_at = $3 WHERE id = $1 AND role <> $4`
	res, err := r.db.ExecContext(ctx, query, id, isActive, time.Now().UTC(), models.RoleSuperAdmin)
	if err != nil {
		return fmt.Errorf("set staff active: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set staff active: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Create inserts a staff record granted through the invite flow.
func (r *StaffRepository) Create(ctx context.Context, staff *models.StaffUser) error {
	if staff.ID == "" {
		staff.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if staff.CreatedAt.IsZero() {
		staff.CreatedAt = now
	}
	staff.UpdatedAt = now

	const query = `INSERT INTO admin_users (id, email, password_hash, full_name, role, is_active, created_at, updated_at) VALUES (:id, :email, :password_hash, :full_name, :role, :is_active, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, staff); err != nil {
		return fmt.Errorf("create staff: %w", err)
	}
	return nil
}

// ListSessions returns staff records ordered by most recent login, for the
// super_admin sessions view.
func (r *StaffRepository) ListSessions(ctx context.Context) ([]models.StaffUser, error) {
	const query = `SELECT id, email, password_hash, full_name, role, is_active, last_login, last_login_ip, created_at, updated_at FROM admin_users ORDER BY last_login DESC NULLS LAST`
	var staff []models.StaffUser
	if err := r.db.SelectContext(ctx, &staff, query); err != nil {
		return nil, fmt.Errorf("list staff sessions: %w", err)
	}
	return staff, nil
}

// FindPlatformUserIDByEmail resolves a marketplace user id from the shared
// auth directory. Staff invites require the user to have signed up first.
func (r *StaffRepository) FindPlatformUserIDByEmail(ctx context.Context, email string) (string, error) {
	const query = `SELECT id FROM auth_users WHERE LOWER(email) = LOWER($1) LIMIT 1`
	var id string
	if err := r.db.GetContext(ctx, &id, query, email); err != nil {
		if err == sql.ErrNoRows {
			return "", err
		}
		return "", fmt.Errorf("find platform user by email: %w", err)
	}
	return id, nil
}
