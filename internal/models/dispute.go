package models

import "time"

// DisputeStatus is the lifecycle state of a buyer/seller dispute. The two
// verdict states are terminal.
type DisputeStatus string

const (
	DisputeOpen           DisputeStatus = "open"
	DisputeRefundedBuyer  DisputeStatus = "refunded_buyer"
	DisputeReleasedSeller DisputeStatus = "released_seller"
)

// DisputeReasonCategories enumerates accepted justifications for a verdict.
var DisputeReasonCategories = map[string]struct{}{
	"item_not_received":     {},
	"item_not_as_described": {},
	"chargeback_risk":       {},
	"policy_violation":      {},
	"manual_exception":      {},
	"other":                 {},
}

// Dispute is a tribunal case linked to exactly one order.
type Dispute struct {
	ID           string        `db:"id" json:"id"`
	OrderID      string        `db:"order_id" json:"order_id"`
	Status       DisputeStatus `db:"status" json:"status"`
	AdminVerdict *string       `db:"admin_verdict" json:"admin_verdict,omitempty"`
	ResolvedAt   *time.Time    `db:"resolved_at" json:"resolved_at,omitempty"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
}
