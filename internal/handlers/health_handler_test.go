package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"escrow-dashboard/internal/services"
	"escrow-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHealthChecker struct {
	err error
}

func (f fakeHealthChecker) HealthCheck(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("health check without deadline")
	}
	return f.err
}

func TestHealthCheck_Healthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	breaker := service_mocks.NewMockCircuitBreakerInterface(ctrl)
	breaker.EXPECT().GetState().Return(services.StateOpen)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHealthCheckHandler(fakeHealthChecker{}, breaker)
	require.NoError(t, handler.HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "open", body["row_fetch"])
	assert.NotEmpty(t, body["time"])
}

func TestHealthCheck_WithoutBreaker(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHealthCheckHandler(fakeHealthChecker{}, nil)
	require.NoError(t, handler.HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "row_fetch")
}

func TestHealthCheck_DatabaseDown(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-health")

	handler := NewHealthCheckHandler(fakeHealthChecker{err: errors.New("connection refused")}, nil)
	require.NoError(t, handler.HealthCheck(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "SYSTEM_003", response.Error.Code)
	assert.Equal(t, "trace-health", response.Error.TraceID)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
