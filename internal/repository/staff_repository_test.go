package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazarhub/admin-api/internal/models"
)

func staffColumns() []string {
	return []string{"id", "email", "password_hash", "full_name", "role", "is_active", "last_login", "last_login_ip", "created_at", "updated_at"}
}

func TestStaffRepositoryFindByEmail(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStaffRepository(db)

	rows := sqlmock.NewRows(staffColumns()).
		AddRow("a1", "mod@bazarhub.test", "hash", "Mod One", "moderator", true, nil, nil, time.Now(), time.Now())
	mock.ExpectQuery("SELECT id, email, password_hash").
		WithArgs("mod@bazarhub.test").
		WillReturnRows(rows)

	staff, err := repo.FindByEmail(context.Background(), "mod@bazarhub.test")
	require.NoError(t, err)
	assert.Equal(t, models.RoleModerator, staff.Role)
	assert.True(t, staff.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStaffRepositorySetActive(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStaffRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE admin_users SET is_active = $2, updated_at = $3 WHERE id = $1 AND role <> $4")).
		WithArgs("a2", false, sqlmock.AnyArg(), models.RoleSuperAdmin).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetActive(context.Background(), "a2", false))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStaffRepositorySetActiveSuperAdminBlocked(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStaffRepository(db)

	// The role guard in the WHERE clause leaves super_admin rows untouched.
	mock.ExpectExec("UPDATE admin_users SET is_active").
		WithArgs("root", false, sqlmock.AnyArg(), models.RoleSuperAdmin).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetActive(context.Background(), "root", false)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStaffRepositoryFindPlatformUserIDByEmail(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStaffRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM auth_users WHERE LOWER(email) = LOWER($1) LIMIT 1")).
		WithArgs("new@bazarhub.test").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("u9"))

	id, err := repo.FindPlatformUserIDByEmail(context.Background(), "new@bazarhub.test")
	require.NoError(t, err)
	assert.Equal(t, "u9", id)

	mock.ExpectQuery("SELECT id FROM auth_users").
		WithArgs("ghost@bazarhub.test").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.FindPlatformUserIDByEmail(context.Background(), "ghost@bazarhub.test")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
