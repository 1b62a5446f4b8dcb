package services

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"escrow-dashboard/internal/models"
)

const (
	legendBoxWidth        = 12
	defaultLegendFontSize = 14
	titleFontSize         = 17
)

// StyleSeries returns a styled copy of the chart data. A series color comes
// from, in order: the dataset itself, the theme colors at the series index,
// the palette accent at the index, then the cycling built-in palette. The
// input is never modified.
func StyleSeries(data models.ChartData, chartType models.ChartType, theme models.Theme) models.ChartData {
	styled := models.ChartData{
		Labels:   slices.Clone(data.Labels),
		Datasets: make([]models.ChartDataset, 0, len(data.Datasets)),
	}

	variant := variantFor(chartType)
	for idx := range data.Datasets {
		ds := copyDataset(data.Datasets[idx])
		variant.styleDataset(&ds, idx, len(data.Labels), theme)
		styled.Datasets = append(styled.Datasets, ds)
	}

	return styled
}

// CompileOptions derives the renderer options for a configuration. A hidden
// legend is switched off rather than moved, the title shows only when it is
// enabled and has text, and axis titles show only when labelled.
func CompileOptions(cfg models.ChartConfiguration, theme models.Theme) models.RenderOptions {
	pal := theme.Palette
	variant := variantFor(cfg.Type)

	legendPosition := cfg.LegendPosition
	if legendPosition == models.LegendHidden || legendPosition == "" {
		legendPosition = models.LegendTop
	}

	legendFontSize := cfg.LegendFontSize
	if legendFontSize <= 0 {
		legendFontSize = defaultLegendFontSize
	}

	tooltipFormat := cfg.TooltipFormat
	if tooltipFormat == "" {
		tooltipFormat = "{y}"
	}

	return models.RenderOptions{
		Responsive:          true,
		MaintainAspectRatio: false,
		Plugins: models.PluginOptions{
			Legend: models.LegendOptions{
				Display:  cfg.LegendPosition != models.LegendHidden,
				Position: legendPosition,
				Labels: models.LegendLabels{
					BoxWidth:      legendBoxWidth,
					Font:          models.FontSpec{Size: legendFontSize},
					Color:         pal.Neutral,
					UsePointStyle: true,
				},
			},
			Title: models.TitleOptions{
				Display: cfg.ShowTitle && cfg.TitleText != "",
				Text:    cfg.TitleText,
				Font:    models.FontSpec{Size: titleFontSize, Weight: "bold"},
				Color:   pal.Gray,
			},
			Tooltip: models.TooltipOptions{
				Mode:            "index",
				Intersect:       false,
				BackgroundColor: pal.Gray,
				TitleColor:      pal.White,
				BodyColor:       pal.White,
				BorderColor:     pal.Green,
				BorderWidth:     1,
				DisplayColors:   true,
				Template:        tooltipFormat,
			},
		},
		Elements: variant.elements(cfg),
		Scales:   variant.scales(cfg, pal),
	}
}

// FormatTooltip applies a tooltip template to one data point
func FormatTooltip(template string, value float64, label string) string {
	return models.TooltipOptions{Template: template}.Format(value, label)
}

func copyDataset(ds models.ChartDataset) models.ChartDataset {
	out := ds
	out.Data = slices.Clone(ds.Data)
	out.SliceColors = slices.Clone(ds.SliceColors)
	if ds.Fill != nil {
		fill := *ds.Fill
		out.Fill = &fill
	}
	if ds.Tension != nil {
		tension := *ds.Tension
		out.Tension = &tension
	}
	return out
}

func seriesColor(explicit string, idx int, theme models.Theme) string {
	if explicit != "" {
		return explicit
	}
	if idx < len(theme.Colors) && theme.Colors[idx] != "" {
		return theme.Colors[idx]
	}
	if accents := theme.Palette.Accents(); idx < len(accents) && accents[idx] != "" {
		return accents[idx]
	}
	cycle := theme.SeriesPalette
	if len(cycle) == 0 {
		cycle = SeriesColorCycle
	}
	return cycle[idx%len(cycle)]
}

// translucent turns #RGB or #RRGGBB into an rgba() string with the given alpha.
// Anything else is returned unchanged.
func translucent(hex string, alpha float64) string {
	r, g, b, ok := parseHexColor(hex)
	if !ok {
		return hex
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, strconv.FormatFloat(alpha, 'f', -1, 64))
}

func parseHexColor(hex string) (uint8, uint8, uint8, bool) {
	h, ok := strings.CutPrefix(hex, "#")
	if !ok {
		return 0, 0, 0, false
	}
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
