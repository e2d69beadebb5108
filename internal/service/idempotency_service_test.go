package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/bazarhub/admin-api/pkg/errors"
)

type auditIndexStub struct {
	seen bool
	err  error
}

func (a *auditIndexStub) HasIdempotentEntry(ctx context.Context, actionType, targetID, token string) (bool, error) {
	if a.err != nil {
		return false, a.err
	}
	return a.seen, nil
}

func TestRequireToken(t *testing.T) {
	token, err := RequireToken("  tok-1  ")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	_, err = RequireToken("   ")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrIdempotencyKeyRequired.Code, appErrors.FromError(err).Code)
}

func TestReplayedUsesAuditTrail(t *testing.T) {
	svc := NewIdempotencyService(&auditIndexStub{seen: true}, nil, time.Hour, nil)

	seen, err := svc.Replayed(context.Background(), "ORDER_INTERVENTION", "o1", "tok-1")
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestReplayedLookupFailureIsAnError(t *testing.T) {
	svc := NewIdempotencyService(&auditIndexStub{err: errors.New("index offline")}, nil, time.Hour, nil)

	_, err := svc.Replayed(context.Background(), "ORDER_INTERVENTION", "o1", "tok-1")
	require.Error(t, err)
	assert.Equal(t, 500, appErrors.FromError(err).Status)
}

func TestReserveWithoutRedisDegradesToAllow(t *testing.T) {
	svc := NewIdempotencyService(&auditIndexStub{}, nil, time.Hour, nil)

	assert.True(t, svc.Reserve(context.Background(), "PAYOUT_APPROVE", "p1", "tok-1"))
	// Release is a no-op but must not panic.
	svc.Release(context.Background(), "PAYOUT_APPROVE", "p1", "tok-1")
}
