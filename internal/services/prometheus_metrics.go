package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	reportsGenerated    *prometheus.CounterVec
	reportDuration      *prometheus.HistogramVec
	rowsLoaded          prometheus.Gauge
	rowCacheEvents      *prometheus.CounterVec
	chartsCompiled      *prometheus.CounterVec
	circuitBreakerState *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the collectors with the default registry, so
// it must be called once per process
func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		reportsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_generated_total",
				Help: "Total number of escrow reports generated",
			},
			[]string{"report", "status"},
		),
		reportDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "report_generation_duration_milliseconds",
				Help:    "Escrow report generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"report"},
		),
		rowsLoaded: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "report_rows_loaded",
				Help: "Number of escrow rows in the last loaded data set",
			},
		),
		rowCacheEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_row_cache_total",
				Help: "Row cache lookups by result",
			},
			[]string{"result"},
		),
		chartsCompiled: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chart_compiled_total",
				Help: "Total number of chart configurations compiled",
			},
			[]string{"type", "status"},
		),
		circuitBreakerState: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "row_fetch_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"breaker"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]
	if status == "" {
		status = "success"
	}

	switch name {
	case "report_generated":
		m.reportsGenerated.WithLabelValues(tags["report"], status).Inc()
	case "row_cache":
		if result := tags["result"]; result != "" {
			m.rowCacheEvents.WithLabelValues(result).Inc()
		}
	case "chart_compiled":
		m.chartsCompiled.WithLabelValues(tags["type"], status).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "report_summary", "report_timeseries", "report_filter_options":
		m.reportDuration.WithLabelValues(name).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "report_rows_loaded":
		m.rowsLoaded.Set(value)
	case "row_fetch_breaker_state":
		m.circuitBreakerState.WithLabelValues(tags["breaker"]).Set(value)
	}
}
