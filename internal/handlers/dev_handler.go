package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"escrow-dashboard/internal/repositories"
	"escrow-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints.
// It is only registered when APP_ENV is development.
type DevHandler struct {
	entryRepo     repositories.EscrowEntryRepositoryInterface
	generator     services.EntryGeneratorInterface
	reportService services.ReportServiceInterface
	now           func() time.Time
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	entryRepo repositories.EscrowEntryRepositoryInterface,
	generator services.EntryGeneratorInterface,
	reportService services.ReportServiceInterface,
) *DevHandler {
	return &DevHandler{
		entryRepo:     entryRepo,
		generator:     generator,
		reportService: reportService,
		now:           time.Now,
	}
}

// GenerateTestData inserts generated escrow inflows and drops the report cache
//
// Method: POST /api/v1/dev/escrow/generate
// Environment: Development only
//
// Query parameters:
//   - count: number of entries to generate (default: 200, max: 5000)
//   - objects: number of construction objects (default: 4, max: 10)
//   - months: months of history ending today (default: 12, max: 60)
//
// Success Response: 200 OK
//   - entries_created: number of entries stored
//   - objects: object names used
//   - date_range: start and end of the generated period
//
// Error Responses:
//   - 500: entries could not be stored
func (h *DevHandler) GenerateTestData(c echo.Context) error {
	count := clamp(getIntQueryParam(c, "count", 200), 1, 5000)
	objectCount := clamp(getIntQueryParam(c, "objects", 4), 1, 10)
	months := clamp(getIntQueryParam(c, "months", 12), 1, 60)

	endDate := h.now().UTC()
	startDate := endDate.AddDate(0, -months, 0)

	objects := h.generator.ObjectNames(objectCount)
	entries := h.generator.GenerateEntries(objects, startDate, endDate, count)

	if err := h.entryRepo.CreateBatch(c.Request().Context(), entries); err != nil {
		return SendSystemError(c, err)
	}
	h.reportService.InvalidateCache()

	slog.InfoContext(c.Request().Context(), "generated escrow test data",
		"entries", len(entries),
		"objects", len(objects))

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: map[string]interface{}{
			"entries_created": len(entries),
			"objects":         objects,
			"date_range": map[string]string{
				"start": startDate.Format(time.RFC3339),
				"end":   endDate.Format(time.RFC3339),
			},
		},
	})
}

// Helper function to get integer query parameters
func getIntQueryParam(c echo.Context, key string, defaultValue int) int {
	valueStr := c.QueryParam(key)
	if valueStr == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
