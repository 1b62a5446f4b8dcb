package handlers

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the health check and the versioned report and chart API
func RegisterRoutes(e *echo.Echo, health *HealthCheckHandler, reports *ReportHandler, charts *ChartHandler, apiMiddleware ...echo.MiddlewareFunc) {
	e.GET("/health", health.HealthCheck)

	api := e.Group("/api/v1", apiMiddleware...)

	escrow := api.Group("/reports/escrow")
	escrow.GET("/summary", reports.GetSummary)
	escrow.GET("/timeseries", reports.GetTimeSeries)
	escrow.GET("/filters", reports.GetFilterOptions)

	chartGroup := api.Group("/charts")
	chartGroup.GET("/defaults", charts.GetDefaults)
	chartGroup.POST("/compile", charts.Compile)
}

// RegisterDevRoutes mounts the development-only endpoints
func RegisterDevRoutes(e *echo.Echo, dev *DevHandler) {
	devGroup := e.Group("/api/v1/dev")
	devGroup.POST("/escrow/generate", dev.GenerateTestData)
}
