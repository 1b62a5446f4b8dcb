package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SummaryLine is an ObjectSummary with its display-formatted total
type SummaryLine struct {
	ObjectSummary
	TotalFormatted string `json:"total_formatted"`
}

// EscrowSummaryReport is the table view of the escrow report
type EscrowSummaryReport struct {
	Filters             FilterState     `json:"filters"`
	Rows                []SummaryLine   `json:"rows"`
	GrandTotal          decimal.Decimal `json:"grand_total"`
	GrandTotalFormatted string          `json:"grand_total_formatted"`
	DocumentCount       int             `json:"document_count"`
	GeneratedAt         time.Time       `json:"generated_at"`
}

// EscrowTimeSeriesReport is the chart view of the escrow report
type EscrowTimeSeriesReport struct {
	Filters     FilterState        `json:"filters"`
	Objects     []string           `json:"objects"`
	Points      []TimeSeriesPoint  `json:"points"`
	Unit        string             `json:"unit"`
	Chart       ChartData          `json:"chart"`
	Layout      LayoutHints        `json:"layout"`
	Tooltips    []TooltipBreakdown `json:"tooltips"`
	XTicks      []string           `json:"x_ticks"`
	YTicks      []AxisTick         `json:"y_ticks"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// AxisTick is one y axis gridline: Value in the chart unit, Label in millions
type AxisTick struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// MonthOption is one entry of the month select list
type MonthOption struct {
	Value string `json:"value"`
	Name  string `json:"name"`
}

// FilterOptions lists the values the filter controls can offer
type FilterOptions struct {
	Years   []string      `json:"years"`
	Months  []MonthOption `json:"months"`
	Objects []string      `json:"objects"`
}

// TooltipEntry is one series line inside a tooltip
type TooltipEntry struct {
	Object    string  `json:"object"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

// TooltipBreakdown is the per-month tooltip content of the escrow chart
type TooltipBreakdown struct {
	Month          string         `json:"month"`
	Title          string         `json:"title"`
	Mode           string         `json:"mode"`
	Entries        []TooltipEntry `json:"entries"`
	Total          *float64       `json:"total,omitempty"`
	TotalFormatted string         `json:"total_formatted,omitempty"`
}
