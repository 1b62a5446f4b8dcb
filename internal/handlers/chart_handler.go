package handlers

import (
	"net/http"

	"escrow-dashboard/internal/dto"
	apierrors "escrow-dashboard/internal/errors"
	"escrow-dashboard/internal/models"
	"escrow-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

type ChartHandler struct {
	chartService services.ChartServiceInterface
}

func NewChartHandler(chartService services.ChartServiceInterface) *ChartHandler {
	return &ChartHandler{chartService: chartService}
}

// GetDefaults returns the default configuration for a chart type
//
// Method: GET /api/v1/charts/defaults
//
// Query parameters:
//   - type: chart type (optional, line when absent)
//
// Success Response: 200 OK
//   - config: the default chart configuration
//   - chartTypes: every selectable chart type
//
// Error Responses:
//   - 400: Unknown chart type
func (h *ChartHandler) GetDefaults(c echo.Context) error {
	var query dto.ChartDefaultsQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request parameters"))
	}
	if err := c.Validate(query); err != nil {
		return err
	}

	cfg, err := h.chartService.Defaults(models.ChartType(query.Type))
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ChartDefaultsResponse{
			Config:     cfg,
			ChartTypes: models.ChartTypes,
		},
	})
}

// Compile turns a partial configuration and chart data into render-ready output
//
// Method: POST /api/v1/charts/compile
//
// Request body:
//   - config: partial chart configuration applied over the defaults (optional)
//   - data: labels and datasets
//   - overrides: render option overrides merged last (optional)
//
// Success Response: 200 OK
//   - type, config, styled data, render options, layout hints
//
// Error Responses:
//   - 400: Malformed body or invalid configuration values
//   - 422: Overrides that do not fit the render options shape
func (h *ChartHandler) Compile(c echo.Context) error {
	var req dto.CompileChartRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidBody)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	compiled, err := h.chartService.Compile(req.Config, req.Data, req.Overrides)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: compiled,
	})
}
