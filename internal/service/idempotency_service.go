package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appErrors "github.com/bazarhub/admin-api/pkg/errors"
)

type idempotencyAuditIndex interface {
	HasIdempotentEntry(ctx context.Context, actionType, targetID, token string) (bool, error)
}

// IdempotencyService detects replays of retried admin actions. The durable
// record is the audit trail itself: committed actions embed their token in
// the details column. A Redis reservation in front of that closes the window
// where two concurrent requests with the same token both miss the audit
// lookup before either commits.
type IdempotencyService struct {
	audit     idempotencyAuditIndex
	redis     *redis.Client
	retention time.Duration
	logger    *zap.Logger
}

// NewIdempotencyService constructs the ledger. The Redis client is optional:
// without it replay detection degrades to the audit-trail lookup, and the
// conditional state guards still prevent double effects.
func NewIdempotencyService(audit idempotencyAuditIndex, rdb *redis.Client, retention time.Duration, logger *zap.Logger) *IdempotencyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if retention <= 0 {
		retention = 48 * time.Hour
	}
	return &IdempotencyService{audit: audit, redis: rdb, retention: retention, logger: logger}
}

// RequireToken rejects requests in the money-affecting transition families
// that arrive without a client-generated idempotency token.
func RequireToken(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", appErrors.ErrIdempotencyKeyRequired
	}
	return token, nil
}

// Replayed reports whether a committed action with this token already exists
// for the action/target pair. Lookup failures surface as internal errors:
// guessing "not a replay" on a broken index risks a duplicate money effect.
func (s *IdempotencyService) Replayed(ctx context.Context, actionType, targetID, token string) (bool, error) {
	seen, err := s.audit.HasIdempotentEntry(ctx, actionType, targetID, token)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "idempotency lookup failed")
	}
	return seen, nil
}

// Reserve claims the token for a single in-flight attempt via atomic
// insert-if-absent. Returns false when another request holds or has used the
// reservation. A Redis outage degrades to allowing the attempt; the
// compare-and-swap state guard downstream still rejects the loser.
func (s *IdempotencyService) Reserve(ctx context.Context, actionType, targetID, token string) bool {
	if s.redis == nil {
		return true
	}
	ok, err := s.redis.SetNX(ctx, reservationKey(actionType, targetID, token), "1", s.retention).Result()
	if err != nil {
		s.logger.Warn("idempotency reservation unavailable", zap.String("action", actionType), zap.Error(err))
		return true
	}
	return ok
}

// Release frees a reservation after a failed attempt so the caller can retry
// with the same token.
func (s *IdempotencyService) Release(ctx context.Context, actionType, targetID, token string) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, reservationKey(actionType, targetID, token)).Err(); err != nil {
		s.logger.Warn("idempotency reservation release failed", zap.String("action", actionType), zap.Error(err))
	}
}

func reservationKey(actionType, targetID, token string) string {
	return fmt.Sprintf("idem:%s:%s:%s", actionType, targetID, token)
}
