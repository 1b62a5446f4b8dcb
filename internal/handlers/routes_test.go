package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"escrow-dashboard/internal/models"
	"escrow-dashboard/internal/services"
	"escrow-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	reportService := service_mocks.NewMockReportServiceInterface(ctrl)
	chartService := service_mocks.NewMockChartServiceInterface(ctrl)

	e := echo.New()
	e.Validator = NewValidator()

	var apiCalls int
	counting := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiCalls++
			return next(c)
		}
	}

	RegisterRoutes(e,
		NewHealthCheckHandler(fakeHealthChecker{}, nil),
		NewReportHandler(reportService, services.UnitMillions),
		NewChartHandler(chartService),
		counting,
	)

	reportService.EXPECT().GetSummary(gomock.Any(), gomock.Any()).Return(&models.EscrowSummaryReport{}, nil)
	reportService.EXPECT().GetTimeSeries(gomock.Any(), gomock.Any(), services.UnitMillions).Return(&models.EscrowTimeSeriesReport{}, nil)
	reportService.EXPECT().GetFilterOptions(gomock.Any(), gomock.Any()).Return(&models.FilterOptions{}, nil)
	chartService.EXPECT().Defaults(models.ChartType("")).Return(models.ChartConfiguration{}, nil)

	for _, path := range []string{
		"/health",
		"/api/v1/reports/escrow/summary",
		"/api/v1/reports/escrow/timeseries",
		"/api/v1/reports/escrow/filters",
		"/api/v1/charts/defaults",
	} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	assert.Equal(t, 4, apiCalls)
}
