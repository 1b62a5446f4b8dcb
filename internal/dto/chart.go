package dto

import (
	"escrow-dashboard/internal/models"
)

// ChartDefaultsQuery represents the request for a default chart configuration
type ChartDefaultsQuery struct {
	Type string `query:"type" validate:"omitempty,chart_type"`
}

// ChartDefaultsResponse represents the default configuration and the selectable chart types
type ChartDefaultsResponse struct {
	Config     models.ChartConfiguration `json:"config"`
	ChartTypes []models.ChartType        `json:"chartTypes"`
}

// CompileChartRequest represents a chart compile request. Config is a partial
// configuration applied over the defaults; Overrides are merged into the
// compiled render options last.
type CompileChartRequest struct {
	Config    *models.ChartConfigurationPatch `json:"config"`
	Data      models.ChartData                `json:"data"`
	Overrides map[string]any                  `json:"overrides,omitempty"`
}
