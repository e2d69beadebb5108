package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazarhub/admin-api/internal/dto"
	"github.com/bazarhub/admin-api/internal/middleware"
	"github.com/bazarhub/admin-api/internal/models"
	"github.com/bazarhub/admin-api/internal/service"
	appErrors "github.com/bazarhub/admin-api/pkg/errors"
)

type orderTransitionServiceMock struct {
	outcome *service.TransitionOutcome
	err     error

	gotToken  string
	gotClaims *models.StaffClaims
	gotReq    dto.ForceOrderStatusRequest
}

func (m *orderTransitionServiceMock) ForceOrderStatus(ctx context.Context, claims *models.StaffClaims, token string, req dto.ForceOrderStatusRequest) (*service.TransitionOutcome, error) {
	m.gotClaims = claims
	m.gotToken = token
	m.gotReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.outcome, nil
}

func forceStatusContext(t *testing.T, mock *orderTransitionServiceMock, body []byte, token string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPost, "/orders/force-status", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Idempotency-Key", token)
	}
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.StaffClaims{StaffID: "admin-1", Email: "ops@bazarhub.io", Role: models.RoleSuperAdmin})

	NewOrderHandler(mock).ForceStatus(c)
	return w
}

func TestOrderHandlerForceStatusAck(t *testing.T) {
	mock := &orderTransitionServiceMock{outcome: &service.TransitionOutcome{}}
	body, _ := json.Marshal(dto.ForceOrderStatusRequest{
		OrderID:        "o1",
		NewStatus:      models.OrderCancelled,
		ReasonCategory: "fraud",
		Reason:         "chargeback confirmed by processor",
	})

	w := forceStatusContext(t, mock, body, "tok-1")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Equal(t, "tok-1", mock.gotToken)
	require.NotNil(t, mock.gotClaims)
	assert.Equal(t, "admin-1", mock.gotClaims.StaffID)
	assert.Equal(t, "o1", mock.gotReq.OrderID)
}

func TestOrderHandlerForceStatusIdempotentAck(t *testing.T) {
	mock := &orderTransitionServiceMock{outcome: &service.TransitionOutcome{Idempotent: true}}
	body, _ := json.Marshal(dto.ForceOrderStatusRequest{
		OrderID:        "o1",
		NewStatus:      models.OrderCompleted,
		ReasonCategory: "customer_request",
		Reason:         "buyer confirmed delivery by email",
	})

	w := forceStatusContext(t, mock, body, "tok-1")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"idempotent":true}`, w.Body.String())
}

func TestOrderHandlerForceStatusInvalidBody(t *testing.T) {
	mock := &orderTransitionServiceMock{outcome: &service.TransitionOutcome{}}

	w := forceStatusContext(t, mock, []byte(`{"orderId":`), "tok-1")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, mock.gotClaims, "service must not be called on a bad payload")
}

func TestOrderHandlerForceStatusServiceError(t *testing.T) {
	mock := &orderTransitionServiceMock{err: appErrors.ErrIdempotencyKeyRequired}

	body, _ := json.Marshal(dto.ForceOrderStatusRequest{
		OrderID:        "o1",
		NewStatus:      models.OrderCancelled,
		ReasonCategory: "fraud",
		Reason:         "chargeback confirmed by processor",
	})
	w := forceStatusContext(t, mock, body, "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "x-idempotency-key header is required", payload["error"])
}
