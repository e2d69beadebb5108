package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazarhub/admin-api/internal/dto"
	"github.com/bazarhub/admin-api/internal/models"
	appErrors "github.com/bazarhub/admin-api/pkg/errors"
)

type ticketStoreStub struct {
	err   error
	calls int
}

func (s *ticketStoreStub) Resolve(ctx context.Context, id string) error {
	s.calls++
	return s.err
}

func TestResolveTicket(t *testing.T) {
	tickets := &ticketStoreStub{}
	audit := &auditStub{}
	svc := NewSupportService(&gateStub{}, tickets, audit, nil)

	err := svc.ResolveTicket(context.Background(), &models.StaffClaims{StaffID: "sup-1"}, dto.SupportResolveRequest{TicketID: "t1"})
	require.NoError(t, err)
	assert.Equal(t, 1, tickets.calls)
	require.Len(t, audit.logs, 1)
	assert.Equal(t, models.AuditActionSupportTicketClosed, audit.logs[0].ActionType)
	assert.Equal(t, "Ticket marked as RESOLVED by support admin.", audit.logs[0].Details)
}

func TestResolveTicketMissing(t *testing.T) {
	svc := NewSupportService(&gateStub{}, &ticketStoreStub{err: sql.ErrNoRows}, &auditStub{}, nil)

	err := svc.ResolveTicket(context.Background(), &models.StaffClaims{StaffID: "sup-1"}, dto.SupportResolveRequest{TicketID: "ghost"})
	require.Error(t, err)
	assert.Equal(t, 404, appErrors.FromError(err).Status)
}

func TestResolveTicketRequiresID(t *testing.T) {
	tickets := &ticketStoreStub{}
	svc := NewSupportService(&gateStub{}, tickets, &auditStub{}, nil)

	err := svc.ResolveTicket(context.Background(), &models.StaffClaims{StaffID: "sup-1"}, dto.SupportResolveRequest{})
	require.Error(t, err)
	assert.Equal(t, 0, tickets.calls)
}
