package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/bazarhub/admin-api/internal/models"
)

// AuditRepository provides append-only access to the audit trail. The table
// doubles as the durable idempotency record: committed actions embed their
// idempotency token in the details column.
type AuditRepository struct {
	db *sqlx.DB
}

// NewAuditRepository creates a new instance of AuditRepository.
func NewAuditRepository(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Create appends an audit record. Callers must treat a failure here as
// failure of the whole operation; the trail is the compliance record of
// privileged actions and silent gaps are unacceptable.
func (r *AuditRepository) Create(ctx context.Context, log *models.AuditLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO admin_audit_logs (id, admin_id, admin_email, action_type, target_id, details, created_at) VALUES (:id, :admin_id, :admin_email, :action_type, :target_id, :details, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, log); err != nil {
		return fmt.Errorf("create audit log: %w", err)
	}
	return nil
}

// HasIdempotentEntry reports whether a committed action with the given
// idempotency token already exists for the action/target pair.
func (r *AuditRepository) HasIdempotentEntry(ctx context.Context, actionType, targetID, token string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM admin_audit_logs WHERE action_type = $1 AND target_id = $2 AND details ILIKE $3)`
	pattern := "%idem:" + escapeLike(token) + "%"
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, actionType, targetID, pattern); err != nil {
		return false, fmt.Errorf("lookup idempotent entry: %w", err)
	}
	return exists, nil
}

// List returns audit records for the compliance export, newest first.
func (r *AuditRepository) List(ctx context.Context, filter models.AuditFilter) ([]models.AuditLog, error) {
	baseQuery := `SELECT id, admin_id, admin_email, action_type, target_id, details, created_at FROM admin_audit_logs WHERE 1=1`
	var conditions []string
	var args []interface{}

	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)+1))
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", len(args)+1))
		args = append(args, *filter.To)
	}
	if filter.ActionType != "" {
		conditions = append(conditions, fmt.Sprintf("action_type = $%d", len(args)+1))
		args = append(args, filter.ActionType)
	}

	if len(conditions) > 0 {
		baseQuery += " AND " + strings.Join(conditions, " AND ")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10000
	}
	query := fmt.Sprintf("%s ORDER BY created_at DESC LIMIT %d", baseQuery, limit)

	var logs []models.AuditLog
	if err := r.db.SelectContext(ctx, &logs, query, args...); err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	return logs, nil
}

// escapeLike neutralises LIKE wildcards in caller-supplied tokens.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
