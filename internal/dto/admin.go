package dto

import (
	"time"

	"github.com/bazarhub/admin-api/internal/models"
)

// AccountStatusRequest changes a marketplace user's access state.
type AccountStatusRequest struct {
	UserID        string               `json:"userId" validate:"required"`
	AccountStatus models.AccountStatus `json:"accountStatus" validate:"required,oneof=active suspended"`
	Reason        string               `json:"reason" validate:"required"`
}

// StaffStatusRequest toggles a staff member's console access. IsActive is a
// pointer so a missing field is distinguishable from an explicit false.
type StaffStatusRequest struct {
	StaffID  string `json:"staffId" validate:"required"`
	IsActive *bool  `json:"isActive" validate:"required"`
}

// StaffInviteRequest grants a console role to an existing platform user.
type StaffInviteRequest struct {
	Email    string           `json:"email" validate:"required,email"`
	FullName string           `json:"fullName" validate:"required"`
	Role     models.StaffRole `json:"role" validate:"required"`
}

// VerificationDecisionRequest rules on a merchant KYC request.
type VerificationDecisionRequest struct {
	RequestID string `json:"requestId" validate:"required"`
	ProfileID string `json:"profileId" validate:"required"`
	Decision  string `json:"decision" validate:"required,oneof=verified rejected"`
}

// SettingsRequest replaces the platform configuration. All fields are
// pointers so partial payloads are rejected rather than zeroed.
type SettingsRequest struct {
	MaintenanceMode   *bool   `json:"maintenance_mode" validate:"required"`
	MinVersionIOS     *string `json:"min_version_ios" validate:"required"`
	MinVersionAndroid *string `json:"min_version_android" validate:"required"`
	SupportPhone      *string `json:"support_phone" validate:"required"`
}

// SupportResolveRequest marks a support ticket resolved.
type SupportResolveRequest struct {
	TicketID string `json:"ticketId" validate:"required"`
}

// AuditExportQuery filters the compliance download.
type AuditExportQuery struct {
	From       *time.Time
	To         *time.Time
	ActionType string
	Format     string
}
