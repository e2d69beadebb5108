package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/bazarhub/admin-api/internal/dto"
	"github.com/bazarhub/admin-api/internal/models"
	appErrors "github.com/bazarhub/admin-api/pkg/errors"
)

type ticketStore interface {
	Resolve(ctx context.Context, id string) error
}

// SupportService handles support ticket actions from the console.
type SupportService struct {
	gate    authorizer
	tickets ticketStore
	audit   auditRecorder
	logger  *zap.Logger
}

// NewSupportService constructs the service.
func NewSupportService(gate authorizer, tickets ticketStore, audit auditRecorder, logger *zap.Logger) *SupportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SupportService{gate: gate, tickets: tickets, audit: audit, logger: logger}
}

// ResolveTicket marks a support ticket resolved.
func (s *SupportService) ResolveTicket(ctx context.Context, claims *models.StaffClaims, req dto.SupportResolveRequest) error {
	caller, err := s.gate.Authorize(ctx, claims, models.OpSupportTicketResolve)
	if err != nil {
		return err
	}
	if req.TicketID == "" {
		return appErrors.Clone(appErrors.ErrValidation, "ticketId is required")
	}

	if err := s.tickets.Resolve(ctx, req.TicketID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "ticket not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve ticket")
	}

	log := &models.AuditLog{
		AdminID:    &caller.ID,
		AdminEmail: &caller.Email,
		ActionType: models.AuditActionSupportTicketClosed,
		TargetID:   &req.TicketID,
		Details:    "Ticket marked as RESOLVED by support admin.",
	}
	if err := s.audit.Create(ctx, log); err != nil {
		s.logger.Error("audit write failed, failing operation", zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record audit trail")
	}
	return nil
}
