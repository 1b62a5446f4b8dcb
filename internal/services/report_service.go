package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"escrow-dashboard/internal/models"
	"escrow-dashboard/internal/repositories"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

var (
	ErrReportUnavailable = errors.New("escrow report data unavailable")
)

const rowCacheKey = "escrow_rows"

// ReportServiceConfig tunes row memoization and layout of the report service.
// A zero CacheTTL disables the row cache.
type ReportServiceConfig struct {
	CacheTTL     time.Duration
	CacheSize    int
	QueryTimeout time.Duration
	LayoutRules  models.LayoutRules
}

type reportService struct {
	repo    repositories.EscrowEntryRepositoryInterface
	breaker CircuitBreakerInterface
	metrics MetricsRecorderInterface
	cache   *expirable.LRU[string, []models.TransactionRow]
	group   singleflight.Group
	config  ReportServiceConfig
	now     func() time.Time
}

func NewReportService(
	repo repositories.EscrowEntryRepositoryInterface,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	config ReportServiceConfig,
) ReportServiceInterface {
	s := &reportService{
		repo:    repo,
		breaker: breaker,
		metrics: metrics,
		config:  config,
		now:     time.Now,
	}

	if config.CacheTTL > 0 {
		size := config.CacheSize
		if size <= 0 {
			size = 1
		}
		s.cache = expirable.NewLRU[string, []models.TransactionRow](size, nil, config.CacheTTL)
	}

	return s
}

func (s *reportService) GetSummary(ctx context.Context, filters models.FilterState) (*models.EscrowSummaryReport, error) {
	start := time.Now()

	rows, err := s.loadRows(ctx)
	if err != nil {
		s.recordReport("summary", "failed", start)
		return nil, err
	}

	report := BuildSummaryReport(rows, filters, s.now())
	s.recordReport("summary", "success", start)

	slog.Info("escrow summary generated",
		"objects", len(report.Rows),
		"rows", len(rows),
		"grand_total", report.GrandTotal.String(),
		"duration_ms", time.Since(start).Milliseconds())

	return report, nil
}

func (s *reportService) GetTimeSeries(ctx context.Context, filters models.FilterState, unit AmountUnit) (*models.EscrowTimeSeriesReport, error) {
	start := time.Now()

	rows, err := s.loadRows(ctx)
	if err != nil {
		s.recordReport("timeseries", "failed", start)
		return nil, err
	}

	report := BuildTimeSeriesReport(rows, filters, unit, s.config.LayoutRules, s.now())
	s.recordReport("timeseries", "success", start)

	slog.Info("escrow time series generated",
		"months", len(report.Points),
		"series", len(report.Objects),
		"cumulative", filters.Cumulative,
		"unit", unit)

	return report, nil
}

func (s *reportService) GetFilterOptions(ctx context.Context, filters models.FilterState) (*models.FilterOptions, error) {
	start := time.Now()

	rows, err := s.loadRows(ctx)
	if err != nil {
		s.recordReport("filter_options", "failed", start)
		return nil, err
	}

	options := BuildFilterOptions(rows, filters)
	s.recordReport("filter_options", "success", start)

	return &options, nil
}

func (s *reportService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Purge()
	}
}

// loadRows returns the normalized rows, served from the cache when possible.
// Concurrent misses share one repository call. The shared call is detached
// from the caller that started it, so a caller going away only ends its own wait.
func (s *reportService) loadRows(ctx context.Context) ([]models.TransactionRow, error) {
	if s.cache != nil {
		if rows, ok := s.cache.Get(rowCacheKey); ok {
			s.metrics.IncrementCounter("row_cache", map[string]string{"result": "hit"})
			return rows, nil
		}
		s.metrics.IncrementCounter("row_cache", map[string]string{"result": "miss"})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ch := s.group.DoChan(rowCacheKey, func() (any, error) {
		return s.fetchRows(ctx)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			slog.Debug("escrow rows fetch shared between callers")
		}
		return res.Val.([]models.TransactionRow), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// fetchRows loads the entries on a context detached from origin, bounded by the
// query timeout. The result is cached only while origin is still live.
func (s *reportService) fetchRows(origin context.Context) ([]models.TransactionRow, error) {
	if s.breaker.IsOpen() {
		slog.Warn("escrow rows fetch rejected, circuit breaker open",
			"failures", s.breaker.GetFailureCount())
		return nil, fmt.Errorf("%w: %w", ErrReportUnavailable, ErrCircuitBreakerOpen)
	}

	fetchCtx := context.WithoutCancel(origin)
	if s.config.QueryTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(fetchCtx, s.config.QueryTimeout)
		defer cancel()
	}

	entries, err := s.repo.ListEntries(fetchCtx)
	if err != nil {
		s.breaker.RecordFailure()
		slog.Error("failed to load escrow entries",
			"error", err,
			"failures", s.breaker.GetFailureCount())
		return nil, fmt.Errorf("%w: %w", ErrReportUnavailable, err)
	}
	s.breaker.RecordSuccess()

	rows := NormalizeEntries(entries)
	s.metrics.RecordGauge("report_rows_loaded", float64(len(rows)), nil)

	if s.cache != nil && origin.Err() == nil {
		s.cache.Add(rowCacheKey, rows)
	}

	return rows, nil
}

func (s *reportService) recordReport(report, status string, start time.Time) {
	s.metrics.IncrementCounter("report_generated", map[string]string{
		"report": report,
		"status": status,
	})
	if status == "success" {
		s.metrics.RecordProcessingTime("report_"+report, time.Since(start))
	}
}
