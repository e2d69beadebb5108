package models

// AccountStatus is the access state of a marketplace user account.
type AccountStatus string

const (
	AccountActive        AccountStatus = "active"
	AccountSuspended     AccountStatus = "suspended"
	AccountBanned        AccountStatus = "banned"
	AccountPendingAppeal AccountStatus = "pending_appeal"
)

// VerificationStatus tracks a merchant's KYC review outcome on the profile.
type VerificationStatus string

const (
	VerificationPendingStatus  VerificationStatus = "pending"
	VerificationVerifiedStatus VerificationStatus = "verified"
	VerificationRejectedStatus VerificationStatus = "rejected"
)

// Profile is the slice of a marketplace user profile touched by admin
// actions.
type Profile struct {
	ID                 string             `db:"id" json:"id"`
	AccountStatus      AccountStatus      `db:"account_status" json:"account_status"`
	IsVerified         bool               `db:"is_verified" json:"is_verified"`
	VerificationStatus VerificationStatus `db:"verification_status" json:"verification_status"`
}
