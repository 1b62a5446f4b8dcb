package handlers

import (
	"context"
	"errors"

	apierrors "escrow-dashboard/internal/errors"
	"escrow-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// sendServiceError maps report and chart service errors onto API error codes.
// Anything unrecognised is reported as a system error without details.
func sendServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return SendError(c, apierrors.ReportTimeout)
	case errors.Is(err, services.ErrReportUnavailable):
		return SendError(c, apierrors.ReportUnavailable)
	case errors.Is(err, services.ErrInvalidUnit):
		return SendError(c, apierrors.ReportInvalidUnit, apierrors.WithDetails("unit must be one of rub, thousands, millions"))
	case errors.Is(err, services.ErrInvalidChartType):
		return SendError(c, apierrors.ChartInvalidType, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrInvalidLegendPosition):
		return SendError(c, apierrors.ChartInvalidLegendPosition, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrInvalidMarkerType):
		return SendError(c, apierrors.ChartInvalidMarkerType, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrInvalidOverrides):
		return SendError(c, apierrors.ChartInvalidOverrides, apierrors.WithDetails(err.Error()))
	}

	return SendSystemError(c, err)
}
