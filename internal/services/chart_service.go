package services

import (
	"fmt"
	"log/slog"

	"escrow-dashboard/internal/models"
)

type chartService struct {
	metrics MetricsRecorderInterface
	rules   models.LayoutRules
}

func NewChartService(metrics MetricsRecorderInterface, rules models.LayoutRules) ChartServiceInterface {
	return &chartService{
		metrics: metrics,
		rules:   rules,
	}
}

// Defaults returns the standalone configuration for a chart type; empty means line
func (s *chartService) Defaults(chartType models.ChartType) (models.ChartConfiguration, error) {
	if chartType != "" && !models.IsValidChartType(string(chartType)) {
		return models.ChartConfiguration{}, fmt.Errorf("%w: %q", ErrInvalidChartType, chartType)
	}
	return DefaultChartConfiguration(chartType), nil
}

// Compile resolves the configuration, styles the series and builds the render
// options, applying caller overrides last
func (s *chartService) Compile(patch *models.ChartConfigurationPatch, data models.ChartData, overrides map[string]any) (*models.CompiledChart, error) {
	cfg := NewChartConfiguration(patch)
	if err := ValidateChartConfiguration(cfg); err != nil {
		s.recordCompile(cfg.Type, "failed")
		return nil, err
	}

	theme := ThemeFromConfiguration(cfg)
	options := CompileOptions(cfg, theme)

	if len(overrides) > 0 {
		merged, err := MergeOptions(options, overrides)
		if err != nil {
			s.recordCompile(cfg.Type, "failed")
			slog.Warn("chart option overrides rejected",
				"type", cfg.Type,
				"error", err)
			return nil, err
		}
		options = merged
	}

	compiled := &models.CompiledChart{
		Type:    cfg.Type,
		Config:  cfg,
		Data:    StyleSeries(data, cfg.Type, theme),
		Options: options,
		Layout:  LayoutFor(len(data.Labels), s.rules),
	}

	s.recordCompile(cfg.Type, "success")

	slog.Debug("chart compiled",
		"type", cfg.Type,
		"datasets", len(data.Datasets),
		"labels", len(data.Labels),
		"overrides", len(overrides))

	return compiled, nil
}

func (s *chartService) recordCompile(chartType models.ChartType, status string) {
	s.metrics.IncrementCounter("chart_compiled", map[string]string{
		"type":   string(chartType),
		"status": status,
	})
}
