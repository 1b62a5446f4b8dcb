package services

import (
	"context"
	"time"

	"escrow-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// ReportServiceInterface builds the escrow report views from stored entries
type ReportServiceInterface interface {
	// GetSummary returns the object summary table for the filters
	GetSummary(ctx context.Context, filters models.FilterState) (*models.EscrowSummaryReport, error)

	// GetTimeSeries returns the month series, chart datasets and layout for the filters
	GetTimeSeries(ctx context.Context, filters models.FilterState, unit AmountUnit) (*models.EscrowTimeSeriesReport, error)

	// GetFilterOptions returns the values the filter controls can offer
	GetFilterOptions(ctx context.Context, filters models.FilterState) (*models.FilterOptions, error)

	// InvalidateCache drops the memoized rows so the next call refetches
	InvalidateCache()
}

// ChartServiceInterface compiles chart configurations into renderer input
type ChartServiceInterface interface {
	Defaults(chartType models.ChartType) (models.ChartConfiguration, error)
	Compile(patch *models.ChartConfigurationPatch, data models.ChartData, overrides map[string]any) (*models.CompiledChart, error)
}

// EntryGeneratorInterface produces demo escrow entries for development databases
type EntryGeneratorInterface interface {
	ObjectNames(n int) []string
	GenerateEntries(objects []string, start, end time.Time, count int) []models.EscrowEntry
	GenerateAmount() decimal.Decimal
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
