package models

import "time"

// TicketStatus is the lifecycle state of a support ticket.
type TicketStatus string

const (
	TicketOpen     TicketStatus = "OPEN"
	TicketPending  TicketStatus = "PENDING"
	TicketResolved TicketStatus = "RESOLVED"
	TicketClosed   TicketStatus = "CLOSED"
)

// SupportTicket is a customer support case handled in the console.
type SupportTicket struct {
	ID        string       `db:"id" json:"id"`
	Status    TicketStatus `db:"status" json:"status"`
	Subject   *string      `db:"subject" json:"subject,omitempty"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
}
