package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"escrow-dashboard/internal/models"
)

var (
	ErrInvalidChartType      = errors.New("invalid chart type")
	ErrInvalidLegendPosition = errors.New("invalid legend position")
	ErrInvalidMarkerType     = errors.New("invalid marker type")
	ErrLastColor             = errors.New("a chart needs at least one color")
	ErrColorIndexOutOfRange  = errors.New("color index out of range")
)

// DefaultChartColors is the two-entry palette a fresh configuration starts with
var DefaultChartColors = []string{"#8BC540", "#4EC3E0"}

// EditorPalette is cycled through when a color is added in the editor
var EditorPalette = []string{"#8BC540", "#4EC3E0", "#2F444E", "#F89445", "#FF6E84", "#76787A", "#E9F5DF"}

// SeriesColorCycle is the last-resort series palette
var SeriesColorCycle = []string{"#3b82f6", "#ef4444", "#f97316", "#a855f7", "#10b981", "#06b6d4"}

var (
	LightPalette = models.Palette{
		Name:    "light",
		Green:   "#8BC540",
		Blue:    "#4EC3E0",
		Gray:    "#2F444E",
		Neutral: "#76787A",
		White:   "#FFFFFF",
		Black:   "#232426",
		Bg:      "#F9FAFB",
	}

	DarkPalette = models.Palette{
		Name:    "dark",
		Green:   "#74B52A",
		Blue:    "#359EB9",
		Gray:    "#232426",
		Neutral: "#ABB5BE",
		White:   "#292C2E",
		Black:   "#1A1B1F",
		Bg:      "#17181C",
	}
)

// PaletteFor picks the theme palette for the dark flag
func PaletteFor(dark bool) models.Palette {
	if dark {
		return DarkPalette
	}
	return LightPalette
}

// DefaultChartConfiguration returns the standalone defaults. Only fill depends
// on the type: it starts enabled for area charts.
func DefaultChartConfiguration(chartType models.ChartType) models.ChartConfiguration {
	if chartType == "" {
		chartType = models.ChartTypeLine
	}

	return models.ChartConfiguration{
		Type:           chartType,
		Colors:         slices.Clone(DefaultChartColors),
		LegendPosition: models.LegendTop,
		ShowTitle:      false,
		TitleText:      "",
		Dark:           false,
		BorderWidth:    2,
		Fill:           chartType == models.ChartTypeArea,
		Smoothing:      0.3,
		FontSize:       16,
		XAxisLabel:     "",
		YAxisLabel:     "",
		ShowGrid:       true,
		LegendFontSize: 15,
		TooltipFormat:  "{y}",
		MarkerType:     models.MarkerCircle,
	}
}

// NewChartConfiguration builds the initial configuration from an optional partial value
func NewChartConfiguration(initial *models.ChartConfigurationPatch) models.ChartConfiguration {
	var chartType models.ChartType
	if initial != nil && initial.Type != nil {
		chartType = *initial.Type
	}
	return ApplyPatch(DefaultChartConfiguration(chartType), initial)
}

// ApplyPatch returns a copy of cfg with every non-nil patch field applied.
// Changing the type does not re-derive fill.
func ApplyPatch(cfg models.ChartConfiguration, patch *models.ChartConfigurationPatch) models.ChartConfiguration {
	cfg.Colors = slices.Clone(cfg.Colors)
	if patch == nil {
		return cfg
	}

	if patch.Type != nil {
		cfg.Type = *patch.Type
	}
	if patch.Colors != nil {
		cfg.Colors = slices.Clone(patch.Colors)
	}
	if patch.LegendPosition != nil {
		cfg.LegendPosition = *patch.LegendPosition
	}
	if patch.ShowTitle != nil {
		cfg.ShowTitle = *patch.ShowTitle
	}
	if patch.TitleText != nil {
		cfg.TitleText = *patch.TitleText
	}
	if patch.Dark != nil {
		cfg.Dark = *patch.Dark
	}
	if patch.BorderWidth != nil {
		cfg.BorderWidth = *patch.BorderWidth
	}
	if patch.Fill != nil {
		cfg.Fill = *patch.Fill
	}
	if patch.Smoothing != nil {
		cfg.Smoothing = *patch.Smoothing
	}
	if patch.FontSize != nil {
		cfg.FontSize = *patch.FontSize
	}
	if patch.XAxisLabel != nil {
		cfg.XAxisLabel = *patch.XAxisLabel
	}
	if patch.YAxisLabel != nil {
		cfg.YAxisLabel = *patch.YAxisLabel
	}
	if patch.ShowGrid != nil {
		cfg.ShowGrid = *patch.ShowGrid
	}
	if patch.LegendFontSize != nil {
		cfg.LegendFontSize = *patch.LegendFontSize
	}
	if patch.TooltipFormat != nil {
		cfg.TooltipFormat = *patch.TooltipFormat
	}
	if patch.MarkerType != nil {
		cfg.MarkerType = *patch.MarkerType
	}

	return cfg
}

// ValidateChartConfiguration checks the enumerated fields of a configuration
func ValidateChartConfiguration(cfg models.ChartConfiguration) error {
	if !models.IsValidChartType(string(cfg.Type)) {
		return fmt.Errorf("%w: %q", ErrInvalidChartType, cfg.Type)
	}
	if !models.IsValidLegendPosition(cfg.LegendPosition) {
		return fmt.Errorf("%w: %q", ErrInvalidLegendPosition, cfg.LegendPosition)
	}
	if !models.IsValidMarkerType(cfg.MarkerType) {
		return fmt.Errorf("%w: %q", ErrInvalidMarkerType, cfg.MarkerType)
	}
	return nil
}

// AddColor appends the next editor palette color, cycling by the current length
func AddColor(cfg models.ChartConfiguration) models.ChartConfiguration {
	next := EditorPalette[len(cfg.Colors)%len(EditorPalette)]
	cfg.Colors = append(slices.Clone(cfg.Colors), next)
	return cfg
}

// RemoveColor drops the color at index; the last remaining color cannot be removed
func RemoveColor(cfg models.ChartConfiguration, index int) (models.ChartConfiguration, error) {
	if len(cfg.Colors) <= 1 {
		return cfg, ErrLastColor
	}
	if index < 0 || index >= len(cfg.Colors) {
		return cfg, ErrColorIndexOutOfRange
	}
	cfg.Colors = slices.Delete(slices.Clone(cfg.Colors), index, index+1)
	return cfg, nil
}

// ThemeFromConfiguration derives the explicit styling context for the compiler
func ThemeFromConfiguration(cfg models.ChartConfiguration) models.Theme {
	return models.Theme{
		Palette:       PaletteFor(cfg.Dark),
		Dark:          cfg.Dark,
		Colors:        slices.Clone(cfg.Colors),
		SeriesPalette: SeriesColorCycle,
		MarkerType:    cfg.MarkerType,
		Smoothing:     &cfg.Smoothing,
	}
}

// ChartConfigModel holds the configuration being edited and notifies a listener
// when its serialized form actually changes
type ChartConfigModel struct {
	mu       sync.Mutex
	current  models.ChartConfiguration
	snapshot []byte
	onChange func(models.ChartConfiguration)
}

// NewChartConfigModel builds the initial configuration and emits it once
func NewChartConfigModel(initial *models.ChartConfigurationPatch, onChange func(models.ChartConfiguration)) (*ChartConfigModel, error) {
	cfg := NewChartConfiguration(initial)
	snapshot, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize chart configuration: %w", err)
	}

	m := &ChartConfigModel{
		current:  cfg,
		snapshot: snapshot,
		onChange: onChange,
	}

	if onChange != nil {
		onChange(cfg)
	}

	return m, nil
}

// Current returns a copy of the configuration
func (m *ChartConfigModel) Current() models.ChartConfiguration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return ApplyPatch(m.current, nil)
}

// Update applies an incremental edit and reports whether the listener was notified
func (m *ChartConfigModel) Update(patch *models.ChartConfigurationPatch) (bool, error) {
	return m.set(func(cfg models.ChartConfiguration) models.ChartConfiguration {
		return ApplyPatch(cfg, patch)
	})
}

// Replace swaps the whole configuration
func (m *ChartConfigModel) Replace(cfg models.ChartConfiguration) (bool, error) {
	return m.set(func(models.ChartConfiguration) models.ChartConfiguration {
		return ApplyPatch(cfg, nil)
	})
}

func (m *ChartConfigModel) set(edit func(models.ChartConfiguration) models.ChartConfiguration) (bool, error) {
	m.mu.Lock()

	next := edit(m.current)
	snapshot, err := json.Marshal(next)
	if err != nil {
		m.mu.Unlock()
		return false, fmt.Errorf("failed to serialize chart configuration: %w", err)
	}

	if bytes.Equal(snapshot, m.snapshot) {
		m.mu.Unlock()
		slog.Debug("chart configuration unchanged, notification suppressed")
		return false, nil
	}

	m.current = next
	m.snapshot = snapshot
	onChange := m.onChange
	m.mu.Unlock()

	if onChange != nil {
		onChange(ApplyPatch(next, nil))
	}

	return true, nil
}
