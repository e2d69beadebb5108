package models

import "time"

// AuditAction constants represent privileged actions to be logged.
const (
	AuditActionLogin               = "LOGIN"
	AuditActionOrderIntervention   = "ORDER_INTERVENTION"
	AuditActionDisputeVerdict      = "DISPUTE_VERDICT"
	AuditActionPayoutApprove       = "PAYOUT_APPROVE"
	AuditActionPayoutReject        = "PAYOUT_REJECT"
	AuditActionAppealDecision      = "APPEAL_DECISION"
	AuditActionUserStatusChange    = "USER_STATUS_CHANGE"
	AuditActionStaffActivated      = "STAFF_ACTIVATED"
	AuditActionStaffSuspended      = "STAFF_SUSPENDED"
	AuditActionStaffInvite         = "STAFF_INVITE"
	AuditActionKYCVerification     = "KYC_VERIFICATION"
	AuditActionSystemConfigChange  = "SYSTEM_CONFIG_CHANGE"
	AuditActionSupportTicketClosed = "SUPPORT_TICKET_RESOLVED"
	AuditActionAuditExport         = "AUDIT_EXPORT"
)

// AuditLog represents an immutable audit trail record. Rows are append-only:
// created exactly once per committed privileged action, never updated or
// deleted.
type AuditLog struct {
	ID         string    `db:"id" json:"id"`
	AdminID    *string   `db:"admin_id" json:"admin_id,omitempty"`
	AdminEmail *string   `db:"admin_email" json:"admin_email,omitempty"`
	ActionType string    `db:"action_type" json:"action_type"`
	TargetID   *string   `db:"target_id" json:"target_id,omitempty"`
	Details    string    `db:"details" json:"details"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// AuditFilter captures the compliance export query surface.
type AuditFilter struct {
	From       *time.Time
	To         *time.Time
	ActionType string
	Limit      int
}
