package handlers

import (
	"net/http"

	"escrow-dashboard/internal/dto"
	apierrors "escrow-dashboard/internal/errors"
	"escrow-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct {
	reportService services.ReportServiceInterface
	defaultUnit   services.AmountUnit
}

func NewReportHandler(reportService services.ReportServiceInterface, defaultUnit services.AmountUnit) *ReportHandler {
	if defaultUnit == "" {
		defaultUnit = services.UnitMillions
	}
	return &ReportHandler{
		reportService: reportService,
		defaultUnit:   defaultUnit,
	}
}

// GetSummary returns the per-object escrow table
//
// Method: GET /api/v1/reports/escrow/summary
//
// Query parameters:
//   - search: case-insensitive substring of the object name
//   - year: four digit year (optional)
//   - month: two digit month, requires year (optional)
//   - objects: selected object name, repeat the parameter for several (optional)
//
// Success Response: 200 OK
//   - rows: per-object totals with formatted amounts, sorted by total descending
//   - grand_total / grand_total_formatted
//   - document_count
//   - generated_at: ISO 8601 timestamp
//
// Error Responses:
//   - 400: Invalid filter values
//   - 503: Escrow data unavailable
//   - 504: Escrow data fetch timed out
func (h *ReportHandler) GetSummary(c echo.Context) error {
	query, err := h.bindQuery(c)
	if err != nil {
		return err
	}
	if query == nil {
		return nil
	}

	report, err := h.reportService.GetSummary(c.Request().Context(), query.ToFilterState())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: report,
	})
}

// GetTimeSeries returns the monthly escrow chart series
//
// Method: GET /api/v1/reports/escrow/timeseries
//
// Query parameters: as GetSummary, plus
//   - cumulative: running totals instead of monthly sums (optional)
//   - unit: rub, thousands or millions (optional, server default otherwise)
//
// Success Response: 200 OK
//   - points, objects, chart (labels and datasets), layout hints, tooltips
//
// Error Responses:
//   - 400: Invalid filter values or unit
//   - 503: Escrow data unavailable
//   - 504: Escrow data fetch timed out
func (h *ReportHandler) GetTimeSeries(c echo.Context) error {
	query, err := h.bindQuery(c)
	if err != nil {
		return err
	}
	if query == nil {
		return nil
	}

	unit := h.defaultUnit
	if query.Unit != "" {
		unit, err = services.ParseAmountUnit(query.Unit)
		if err != nil {
			return sendServiceError(c, err)
		}
	}

	report, err := h.reportService.GetTimeSeries(c.Request().Context(), query.ToFilterState(), unit)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: report,
	})
}

// GetFilterOptions returns the values offered by the year, month and object filters
//
// Method: GET /api/v1/reports/escrow/filters
//
// Query parameters:
//   - year: four digit year; months are listed only when set (optional)
//
// Success Response: 200 OK
//   - years: ascending
//   - months: ascending, with display names
//   - objects: sorted object names
func (h *ReportHandler) GetFilterOptions(c echo.Context) error {
	var query dto.FilterOptionsQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request parameters"))
	}
	if err := c.Validate(query); err != nil {
		return err
	}

	options, err := h.reportService.GetFilterOptions(c.Request().Context(), dto.EscrowReportQuery{Year: query.Year}.ToFilterState())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: options,
	})
}

// bindQuery binds and validates the shared report filters. A nil query with a
// nil error means an error response has already been written.
func (h *ReportHandler) bindQuery(c echo.Context) (*dto.EscrowReportQuery, error) {
	var query dto.EscrowReportQuery
	if err := c.Bind(&query); err != nil {
		return nil, SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(query); err != nil {
		return nil, err
	}

	if query.HasOrphanMonth() {
		return nil, SendError(c, apierrors.ValidationInvalidPeriod, apierrors.WithDetails("month requires year"))
	}

	return &query, nil
}
