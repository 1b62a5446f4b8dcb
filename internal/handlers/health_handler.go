package handlers

import (
	"context"
	"net/http"
	"time"

	"escrow-dashboard/internal/errors"
	"escrow-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker is satisfied by *database.DB
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db      HealthChecker
	breaker services.CircuitBreakerInterface
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db HealthChecker, breaker services.CircuitBreakerInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, breaker: breaker}
}

// HealthCheck reports database connectivity and the row fetch breaker state
//
// Method: GET /health
//
// Success Response: 200 OK
//   - status: healthy
//   - row_fetch: closed, open or half_open
//   - time: ISO 8601 timestamp
//
// Error Responses:
//   - 503: Database connection failed
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.HealthCheck(ctx); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	body := map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}
	if h.breaker != nil {
		body["row_fetch"] = h.breaker.GetState().String()
	}

	return c.JSON(http.StatusOK, body)
}
