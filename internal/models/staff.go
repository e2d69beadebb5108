package models

import "time"

// StaffRole represents the available console roles for the RBAC system.
type StaffRole string

const (
	RoleSuperAdmin StaffRole = "super_admin"
	RoleModerator  StaffRole = "moderator"
	RoleFinance    StaffRole = "finance"
	RoleSupport    StaffRole = "support"
	RoleContent    StaffRole = "content"
	RoleAnalyst    StaffRole = "analyst"
)

// ValidStaffRole reports whether the role is one of the known console roles.
func ValidStaffRole(role StaffRole) bool {
	switch role {
	case RoleSuperAdmin, RoleModerator, RoleFinance, RoleSupport, RoleContent, RoleAnalyst:
		return true
	}
	return false
}

// InvitableRoles are the roles a super_admin may grant through the invite
// flow. super_admin itself is never grantable through the API.
var InvitableRoles = map[StaffRole]struct{}{
	RoleModerator: {},
	RoleFinance:   {},
	RoleSupport:   {},
	RoleContent:   {},
}

// StaffUser represents a staff record stored in the admin_users table.
type StaffUser struct {
	ID           string     `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	FullName     *string    `db:"full_name" json:"full_name,omitempty"`
	Role         StaffRole  `db:"role" json:"role"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	LastLogin    *time.Time `db:"last_login" json:"last_login,omitempty"`
	LastLoginIP  *string    `db:"last_login_ip" json:"last_login_ip,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// CallerContext identifies the authorized staff member performing a
// privileged action. It is produced by the authorization gate and threaded
// explicitly into every engine call for audit attribution; nothing reads it
// from ambient state.
type CallerContext struct {
	ID    string
	Email string
	Role  StaffRole
}
