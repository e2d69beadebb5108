package models

import "time"

// MerchantVerificationStatus is the review state of a merchant KYC request.
type MerchantVerificationStatus string

const (
	MerchantVerificationPending  MerchantVerificationStatus = "pending"
	MerchantVerificationApproved MerchantVerificationStatus = "approved"
	MerchantVerificationRejected MerchantVerificationStatus = "rejected"
)

// MerchantVerification is a KYC review request linked to a profile.
type MerchantVerification struct {
	ID        string                     `db:"id" json:"id"`
	ProfileID string                     `db:"profile_id" json:"profile_id"`
	Status    MerchantVerificationStatus `db:"status" json:"status"`
	CreatedAt time.Time                  `db:"created_at" json:"created_at"`
}
