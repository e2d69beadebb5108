package dto

import "github.com/bazarhub/admin-api/internal/models"

// ForceOrderStatusRequest manually settles an order into a terminal state.
type ForceOrderStatusRequest struct {
	OrderID        string             `json:"orderId" validate:"required"`
	NewStatus      models.OrderStatus `json:"newStatus" validate:"required,oneof=COMPLETED CANCELLED"`
	ReasonCategory string             `json:"reasonCategory" validate:"required"`
	Reason         string             `json:"reason" validate:"required"`
}

// DisputeVerdictRequest resolves an open dispute and settles its order.
type DisputeVerdictRequest struct {
	DisputeID      string               `json:"disputeId" validate:"required"`
	OrderID        string               `json:"orderId" validate:"required"`
	Verdict        models.DisputeStatus `json:"verdict" validate:"required,oneof=refunded_buyer released_seller"`
	ReasonCategory string               `json:"reasonCategory" validate:"required"`
	Reason         string               `json:"reason" validate:"required"`
}

// PayoutDecisionRequest approves or rejects a pending payout.
type PayoutDecisionRequest struct {
	PayoutID       string `json:"payoutId" validate:"required"`
	Action         string `json:"action" validate:"required,oneof=approve reject"`
	ReasonCategory string `json:"reasonCategory" validate:"required"`
	Reason         string `json:"reason" validate:"required"`
}

// AppealDecisionRequest rules on a suspension appeal. Rejections require
// admin notes; approvals reactivate the linked account.
type AppealDecisionRequest struct {
	AppealID   string `json:"appealId" validate:"required"`
	UserID     string `json:"userId" validate:"required"`
	Decision   string `json:"decision" validate:"required,oneof=approve reject"`
	AdminNotes string `json:"adminNotes"`
}
