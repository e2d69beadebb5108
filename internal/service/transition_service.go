package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/bazarhub/admin-api/internal/dto"
	"github.com/bazarhub/admin-api/internal/models"
	appErrors "github.com/bazarhub/admin-api/pkg/errors"
)

type orderStore interface {
	FindByID(ctx context.Context, id string) (*models.Order, error)
	SettleConditional(ctx context.Context, id string, from, to models.OrderStatus, refund models.RefundStatus) error
}

type disputeStore interface {
	FindByID(ctx context.Context, id string) (*models.Dispute, error)
	ResolveConditional(ctx context.Context, id string, verdict models.DisputeStatus, adminVerdict string, resolvedAt time.Time) error
}

type payoutStore interface {
	FindByID(ctx context.Context, id string) (*models.Payout, error)
	DecideConditional(ctx context.Context, id string, to models.PayoutStatus) error
}

type appealStore interface {
	FindByIDAndUser(ctx context.Context, id, userID string) (*models.Appeal, error)
	DecideConditional(ctx context.Context, id, userID string, to models.AppealStatus, adminNotes *string) error
}

type accountStatusStore interface {
	UpdateAccountStatus(ctx context.Context, id string, status models.AccountStatus) error
}

type auditRecorder interface {
	Create(ctx context.Context, log *models.AuditLog) error
}

type replayLedger interface {
	Replayed(ctx context.Context, actionType, targetID, token string) (bool, error)
	Reserve(ctx context.Context, actionType, targetID, token string) bool
	Release(ctx context.Context, actionType, targetID, token string)
}

type authorizer interface {
	Authorize(ctx context.Context, claims *models.StaffClaims, op models.Operation) (*models.CallerContext, error)
}

// TransitionOutcome is the engine's answer for a committed or replayed
// action.
type TransitionOutcome struct {
	Idempotent bool
}

// guardVerdict classifies a requested transition against the current state.
type guardVerdict int

const (
	guardProceed guardVerdict = iota
	guardNoop
	guardTerminal
	guardBadSource
)

// checkStateGuard is the shared precondition check for every transition
// family: a no-op when the target equals the fresh current state, a hard
// stop on terminal states, and a source-set membership check otherwise.
func checkStateGuard(current, target string, terminal, sources map[string]struct{}) guardVerdict {
	if current == target {
		return guardNoop
	}
	if _, ok := terminal[current]; ok {
		return guardTerminal
	}
	if _, ok := sources[current]; !ok {
		return guardBadSource
	}
	return guardProceed
}

// validateReason enforces the reason floor and the family's category
// enumeration. Unknown categories are rejected, never coerced.
func validateReason(category, reason string, categories map[string]struct{}) error {
	if len(strings.TrimSpace(reason)) < 10 {
		return appErrors.Clone(appErrors.ErrValidation, "reason must be at least 10 characters")
	}
	if _, ok := categories[category]; !ok {
		return appErrors.Clone(appErrors.ErrValidation, "invalid reason category")
	}
	return nil
}

// TransitionService is the state-transition engine for privileged admin
// actions. Every family follows the same algorithm: authorize, detect
// replays, re-read fresh state, run the state guard, validate the reason,
// commit via a conditional update, apply the dependent side effect, and
// append the audit record. An audit write failure fails the operation.
type TransitionService struct {
	gate     authorizer
	orders   orderStore
	disputes disputeStore
	payouts  payoutStore
	appeals  appealStore
	accounts accountStatusStore
	audit    auditRecorder
	ledger   replayLedger
	validate *validator.Validate
	logger   *zap.Logger
	metrics  *MetricsService
}

// NewTransitionService constructs the engine.
func NewTransitionService(
	gate authorizer,
	orders orderStore,
	disputes disputeStore,
	payouts payoutStore,
	appeals appealStore,
	accounts accountStatusStore,
	audit auditRecorder,
	ledger replayLedger,
	validate *validator.Validate,
	logger *zap.Logger,
) *TransitionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransitionService{
		gate:     gate,
		orders:   orders,
		disputes: disputes,
		payouts:  payouts,
		appeals:  appeals,
		accounts: accounts,
		audit:    audit,
		ledger:   ledger,
		validate: validate,
		logger:   logger,
	}
}

// WithMetrics attaches Prometheus counters. Safe to skip; a nil
// MetricsService turns every observation into a no-op.
func (s *TransitionService) WithMetrics(m *MetricsService) *TransitionService {
	s.metrics = m
	return s
}

// ForceOrderStatus manually settles an order into COMPLETED or CANCELLED.
func (s *TransitionService) ForceOrderStatus(ctx context.Context, claims *models.StaffClaims, token string, req dto.ForceOrderStatusRequest) (*TransitionOutcome, error) {
	caller, err := s.gate.Authorize(ctx, claims, models.OpOrderForceStatus)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "orderId, newStatus, reasonCategory and reason are required")
	}
	if err := validateReason(req.ReasonCategory, req.Reason, models.OrderReasonCategories); err != nil {
		return nil, err
	}
	token, err = RequireToken(token)
	if err != nil {
		return nil, err
	}

	replayed, err := s.ledger.Replayed(ctx, models.AuditActionOrderIntervention, req.OrderID, token)
	if err != nil {
		return nil, err
	}
	if replayed {
		s.metrics.RecordReplay(models.AuditActionOrderIntervention)
		return &TransitionOutcome{Idempotent: true}, nil
	}

	order, err := s.orders.FindByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "order not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load order")
	}

	current := order.Status
	switch checkStateGuard(string(current), string(req.NewStatus), orderStatusSet(models.TerminalOrderStatuses), orderStatusSet(models.ForceableOrderStatuses)) {
	case guardNoop:
		return &TransitionOutcome{Idempotent: true}, nil
	case guardTerminal:
		return nil, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("order is terminal (%s) and cannot transition to %s", current, req.NewStatus))
	case guardBadSource:
		return nil, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("order status %s cannot be manually forced to %s", current, req.NewStatus))
	}

	if !s.ledger.Reserve(ctx, models.AuditActionOrderIntervention, req.OrderID, token) {
		return &TransitionOutcome{Idempotent: true}, nil
	}

	refund := models.RefundNone
	if req.NewStatus == models.OrderCancelled {
		refund = models.RefundFull
	}

	if err := s.orders.SettleConditional(ctx, req.OrderID, current, req.NewStatus, refund); err != nil {
		s.ledger.Release(ctx, models.AuditActionOrderIntervention, req.OrderID, token)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("order left %s concurrently and no longer permits %s", current, req.NewStatus))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update order")
	}

	detail := fmt.Sprintf("Forced status %s -> %s. Category: %s. Reason: %s. idem:%s", current, req.NewStatus, req.ReasonCategory, req.Reason, token)
	if err := s.recordAudit(ctx, caller, models.AuditActionOrderIntervention, req.OrderID, detail); err != nil {
		s.ledger.Release(ctx, models.AuditActionOrderIntervention, req.OrderID, token)
		return nil, err
	}
	s.metrics.RecordTransition(models.AuditActionOrderIntervention, "applied")
	return &TransitionOutcome{}, nil
}

// DisputeVerdict resolves an open dispute and settles its linked order:
// refunded_buyer cancels the order with a full refund, released_seller
// completes it with none.
func (s *TransitionService) DisputeVerdict(ctx context.Context, claims *models.StaffClaims, token string, req dto.DisputeVerdictRequest) (*TransitionOutcome, error) {
	caller, err := s.gate.Authorize(ctx, claims, models.OpDisputeVerdict)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "disputeId, orderId, verdict, reasonCategory and reason are required")
	}
	if err := validateReason(req.ReasonCategory, req.Reason, models.DisputeReasonCategories); err != nil {
		return nil, err
	}
	token, err = RequireToken(token)
	if err != nil {
		return nil, err
	}

	replayed, err := s.ledger.Replayed(ctx, models.AuditActionDisputeVerdict, req.DisputeID, token)
	if err != nil {
		return nil, err
	}
	if replayed {
		s.metrics.RecordReplay(models.AuditActionDisputeVerdict)
		return &TransitionOutcome{Idempotent: true}, nil
	}

	dispute, err := s.disputes.FindByID(ctx, req.DisputeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "dispute not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load dispute")
	}
	if dispute.OrderID != req.OrderID {
		return nil, appErrors.Clone(appErrors.ErrValidation, "orderId does not match the dispute")
	}

	current := dispute.Status
	if current == req.Verdict {
		return &TransitionOutcome{Idempotent: true}, nil
	}
	if current != models.DisputeOpen {
		return nil, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("only open disputes can receive a verdict (current: %s)", current))
	}

	order, err := s.orders.FindByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "order not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load order")
	}

	if !s.ledger.Reserve(ctx, models.AuditActionDisputeVerdict, req.DisputeID, token) {
		return &TransitionOutcome{Idempotent: true}, nil
	}
	release := func() { s.ledger.Release(ctx, models.AuditActionDisputeVerdict, req.DisputeID, token) }

	verdictLabel := "Release to Seller"
	orderStatus := models.OrderCompleted
	refund := models.RefundNone
	if req.Verdict == models.DisputeRefundedBuyer {
		verdictLabel = "Refund Buyer"
		orderStatus = models.OrderCancelled
		refund = models.RefundFull
	}

	if err := s.disputes.ResolveConditional(ctx, req.DisputeID, req.Verdict, "Resolved via Tribunal: "+verdictLabel, time.Now().UTC()); err != nil {
		release()
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "dispute was resolved concurrently")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update dispute")
	}

	if order.Status != orderStatus {
		if err := s.orders.SettleConditional(ctx, req.OrderID, order.Status, orderStatus, refund); err != nil {
			release()
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("order left %s concurrently during verdict", order.Status))
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update order")
		}
	}

	detail := fmt.Sprintf("Verdict %s -> %s. Order updated to %s. Category: %s. Reason: %s. idem:%s", current, req.Verdict, orderStatus, req.ReasonCategory, req.Reason, token)
	if err := s.recordAudit(ctx, caller, models.AuditActionDisputeVerdict, req.DisputeID, detail); err != nil {
		release()
		return nil, err
	}
	s.metrics.RecordTransition(models.AuditActionDisputeVerdict, "applied")
	return &TransitionOutcome{}, nil
}

// PayoutDecision finalizes a pending payout as processed or rejected.
func (s *TransitionService) PayoutDecision(ctx context.Context, claims *models.StaffClaims, token string, req dto.PayoutDecisionRequest) (*TransitionOutcome, error) {
	caller, err := s.gate.Authorize(ctx, claims, models.OpPayoutDecision)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "payoutId, action, reasonCategory and reason are required")
	}
	if err := validateReason(req.ReasonCategory, req.Reason, models.PayoutReasonCategories); err != nil {
		return nil, err
	}
	token, err = RequireToken(token)
	if err != nil {
		return nil, err
	}

	target := models.PayoutProcessed
	action := models.AuditActionPayoutApprove
	if req.Action == "reject" {
		target = models.PayoutRejected
		action = models.AuditActionPayoutReject
	}

	replayed, err := s.ledger.Replayed(ctx, action, req.PayoutID, token)
	if err != nil {
		return nil, err
	}
	if replayed {
		s.metrics.RecordReplay(action)
		return &TransitionOutcome{Idempotent: true}, nil
	}

	payout, err := s.payouts.FindByID(ctx, req.PayoutID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "payout not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load payout")
	}

	current := payout.Status
	if current == target {
		return &TransitionOutcome{Idempotent: true}, nil
	}
	if current != models.PayoutPending {
		return nil, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("payout is already finalized (%s)", current))
	}

	if !s.ledger.Reserve(ctx, action, req.PayoutID, token) {
		return &TransitionOutcome{Idempotent: true}, nil
	}

	if err := s.payouts.DecideConditional(ctx, req.PayoutID, target); err != nil {
		s.ledger.Release(ctx, action, req.PayoutID, token)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "payout was finalized concurrently")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update payout")
	}

	detail := fmt.Sprintf("Payout status %s -> %s. Category: %s. Reason: %s. idem:%s", current, target, req.ReasonCategory, req.Reason, token)
	if err := s.recordAudit(ctx, caller, action, req.PayoutID, detail); err != nil {
		s.ledger.Release(ctx, action, req.PayoutID, token)
		return nil, err
	}
	s.metrics.RecordTransition(action, "applied")
	return &TransitionOutcome{}, nil
}

// AppealDecision rules on a pending suspension appeal. Approval reactivates
// the suspended account; rejection requires admin notes. Appeals carry lower
// replay risk and do not require an idempotency token.
func (s *TransitionService) AppealDecision(ctx context.Context, claims *models.StaffClaims, req dto.AppealDecisionRequest) (*TransitionOutcome, error) {
	caller, err := s.gate.Authorize(ctx, claims, models.OpAppealDecision)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "appealId, userId and decision are required")
	}
	notes := strings.TrimSpace(req.AdminNotes)
	if req.Decision == "reject" && len(notes) < 10 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "rejection requires admin notes (min 10 characters)")
	}

	appeal, err := s.appeals.FindByIDAndUser(ctx, req.AppealID, req.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "appeal not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load appeal")
	}

	target := models.AppealApproved
	if req.Decision == "reject" {
		target = models.AppealRejected
	}
	if appeal.Status == target {
		return &TransitionOutcome{Idempotent: true}, nil
	}
	if appeal.Status != models.AppealPending {
		return nil, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("appeal is already decided (%s)", appeal.Status))
	}

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}
	if err := s.appeals.DecideConditional(ctx, req.AppealID, req.UserID, target, notesPtr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "appeal was decided concurrently")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update appeal")
	}

	if target == models.AppealApproved {
		if err := s.accounts.UpdateAccountStatus(ctx, req.UserID, models.AccountActive); err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reactivate account")
		}
	}

	label := "Approved"
	if target == models.AppealRejected {
		label = "Rejected"
	}
	detail := fmt.Sprintf("Appeal %s. Appeal ID: %s.", label, req.AppealID)
	if notes != "" {
		detail += " Notes: " + notes
	}
	if err := s.recordAudit(ctx, caller, models.AuditActionAppealDecision, req.UserID, detail); err != nil {
		return nil, err
	}
	s.metrics.RecordTransition(models.AuditActionAppealDecision, "applied")
	return &TransitionOutcome{}, nil
}

func (s *TransitionService) recordAudit(ctx context.Context, caller *models.CallerContext, actionType, targetID, detail string) error {
	log := &models.AuditLog{
		AdminID:    &caller.ID,
		AdminEmail: &caller.Email,
		ActionType: actionType,
		TargetID:   &targetID,
		Details:    detail,
	}
	if err := s.audit.Create(ctx, log); err != nil {
		s.metrics.RecordAuditWrite("error")
		s.logger.Error("audit write failed, failing operation", zap.String("action", actionType), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record audit trail")
	}
	s.metrics.RecordAuditWrite("ok")
	return nil
}

func orderStatusSet(in map[models.OrderStatus]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(in))
	for k := range in {
		out[string(k)] = struct{}{}
	}
	return out
}
