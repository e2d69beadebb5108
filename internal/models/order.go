package models

import "time"

// OrderStatus is the lifecycle state of a marketplace order.
type OrderStatus string

const (
	OrderPending         OrderStatus = "PENDING"
	OrderAwaitingPayment OrderStatus = "AWAITING_PAYMENT"
	OrderPaid            OrderStatus = "PAID"
	OrderShipped         OrderStatus = "SHIPPED"
	OrderDisputeOpen     OrderStatus = "DISPUTE_OPEN"
	OrderCompleted       OrderStatus = "COMPLETED"
	OrderCancelled       OrderStatus = "CANCELLED"
)

// RefundStatus marks how much of an order was refunded when it was settled.
type RefundStatus string

const (
	RefundNone RefundStatus = "none"
	RefundFull RefundStatus = "full"
)

// TerminalOrderStatuses are the states an order never leaves through the
// admin engine.
var TerminalOrderStatuses = map[OrderStatus]struct{}{
	OrderCompleted: {},
	OrderCancelled: {},
}

// ForceableOrderStatuses are the states from which staff may manually settle
// an order.
var ForceableOrderStatuses = map[OrderStatus]struct{}{
	OrderPending:         {},
	OrderAwaitingPayment: {},
	OrderPaid:            {},
	OrderShipped:         {},
	OrderDisputeOpen:     {},
}

// OrderReasonCategories enumerates accepted justifications for forcing an
// order status. Unknown categories are rejected, never coerced.
var OrderReasonCategories = map[string]struct{}{
	"fraud":             {},
	"payment_issue":     {},
	"customer_request":  {},
	"fulfillment_issue": {},
	"compliance":        {},
	"other":             {},
}

// Order is the transitionable slice of an order row the engine operates on.
type Order struct {
	ID           string       `db:"id" json:"id"`
	Status       OrderStatus  `db:"status" json:"status"`
	RefundStatus RefundStatus `db:"refund_status" json:"refund_status"`
	BuyerID      *string      `db:"buyer_id" json:"buyer_id,omitempty"`
	SellerID     *string      `db:"seller_id" json:"seller_id,omitempty"`
	UpdatedAt    time.Time    `db:"updated_at" json:"updated_at"`
}
