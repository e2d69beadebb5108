package models

import "time"

// PayoutStatus is the lifecycle state of a seller payout request.
type PayoutStatus string

const (
	PayoutPending   PayoutStatus = "pending"
	PayoutProcessed PayoutStatus = "processed"
	PayoutRejected  PayoutStatus = "rejected"
)

// PayoutReasonCategories enumerates accepted justifications for a payout
// decision.
var PayoutReasonCategories = map[string]struct{}{
	"kyc_issue":       {},
	"bank_mismatch":   {},
	"fraud_risk":      {},
	"reserve_policy":  {},
	"manual_approval": {},
	"other":           {},
}

// Payout is a pending disbursement to a seller.
type Payout struct {
	ID        string       `db:"id" json:"id"`
	SellerID  *string      `db:"seller_id" json:"seller_id,omitempty"`
	Amount    int64        `db:"amount" json:"amount"`
	Status    PayoutStatus `db:"status" json:"status"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
}
