package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/bazarhub/admin-api/internal/models"
	appErrors "github.com/bazarhub/admin-api/pkg/errors"
)

type staffDirectory interface {
	FindByID(ctx context.Context, id string) (*models.StaffUser, error)
}

// GateService is the authorization gate for privileged actions. It maps an
// authenticated caller to a CallerContext after confirming the staff record
// is live and the role is in the operation's capability set. Pure
// read-then-decide; no side effects.
type GateService struct {
	directory staffDirectory
	logger    *zap.Logger
}

// NewGateService constructs the gate.
func NewGateService(directory staffDirectory, logger *zap.Logger) *GateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GateService{directory: directory, logger: logger}
}

// Authorize resolves claims into a CallerContext for the given operation.
// The staff record is re-read on every call so a suspension takes effect
// immediately, regardless of token lifetime. Any unexpected directory
// failure denies the request; the gate never fails open.
func (s *GateService) Authorize(ctx context.Context, claims *models.StaffClaims, op models.Operation) (*models.CallerContext, error) {
	if claims == nil || claims.StaffID == "" {
		return nil, appErrors.ErrUnauthorized
	}

	staff, err := s.directory.FindByID(ctx, claims.StaffID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrForbidden, "admin access required")
		}
		s.logger.Error("staff directory lookup failed", zap.String("staff_id", claims.StaffID), zap.Error(err))
		return nil, appErrors.ErrUnauthorized
	}

	if !staff.IsActive {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "admin access required")
	}

	if !models.OperationAllows(op, staff.Role) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "forbidden for current role")
	}

	return &models.CallerContext{ID: staff.ID, Email: staff.Email, Role: staff.Role}, nil
}
