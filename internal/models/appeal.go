package models

import "time"

// AppealStatus is the lifecycle state of a suspension appeal.
type AppealStatus string

const (
	AppealPending  AppealStatus = "pending"
	AppealApproved AppealStatus = "approved"
	AppealRejected AppealStatus = "rejected"
)

// Appeal is a suspended user's request to regain access. Approval
// reactivates the linked account; rejection requires admin notes.
type Appeal struct {
	ID         string       `db:"id" json:"id"`
	UserID     string       `db:"user_id" json:"user_id"`
	Status     AppealStatus `db:"status" json:"status"`
	AdminNotes *string      `db:"admin_notes" json:"admin_notes,omitempty"`
	CreatedAt  time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time    `db:"updated_at" json:"updated_at"`
}
