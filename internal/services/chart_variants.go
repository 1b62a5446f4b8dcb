package services

import (
	"escrow-dashboard/internal/models"
)

const (
	defaultTension   = 0.3
	areaFillAlpha    = 0.18
	barFillAlpha     = 0.85
	pointRadius      = 4
	pointHoverRadius = 7
	barBorderRadius  = 10
	xTickMaxRotation = 33
	xTickSkipPadding = 6
)

// chartVariant holds the per-type parts of compilation. The stored
// configuration stays flat; only the variant decides which of its fields
// mean anything for a given chart type.
type chartVariant interface {
	styleDataset(ds *models.ChartDataset, idx int, labels int, theme models.Theme)
	elements(cfg models.ChartConfiguration) models.ElementOptions
	scales(cfg models.ChartConfiguration, pal models.Palette) map[string]models.ScaleOptions
}

func variantFor(chartType models.ChartType) chartVariant {
	switch chartType {
	case models.ChartTypeBar:
		return barVariant{}
	case models.ChartTypeArea:
		return cartesianVariant{area: true}
	case models.ChartTypeScatter, models.ChartTypeBubble:
		return cartesianVariant{scatter: true}
	case models.ChartTypeRadar:
		return radialVariant{}
	case models.ChartTypePie, models.ChartTypeDoughnut:
		return arcVariant{}
	case models.ChartTypePolarArea:
		return arcVariant{radial: true}
	default:
		return cartesianVariant{}
	}
}

// cartesianVariant covers line, area, scatter and bubble charts
type cartesianVariant struct {
	area    bool
	scatter bool
}

func (v cartesianVariant) styleDataset(ds *models.ChartDataset, idx int, _ int, theme models.Theme) {
	stroke := seriesColor(ds.BorderColor, idx, theme)
	ds.BorderColor = stroke
	if ds.PointBackgroundColor == "" {
		ds.PointBackgroundColor = theme.Palette.White
	}
	if ds.PointBorderColor == "" {
		ds.PointBorderColor = stroke
	}
	ds.PointStyle = markerOrDefault(theme.MarkerType)

	if !v.area {
		return
	}

	fill := true
	ds.Fill = &fill
	if ds.Tension == nil {
		tension := defaultTension
		if theme.Smoothing != nil {
			tension = *theme.Smoothing
		}
		ds.Tension = &tension
	}
	if ds.BackgroundColor == "" {
		ds.BackgroundColor = translucent(stroke, areaFillAlpha)
	}
}

func (v cartesianVariant) elements(cfg models.ChartConfiguration) models.ElementOptions {
	tension := cfg.Smoothing
	if v.scatter {
		tension = 0
	}
	return models.ElementOptions{
		Point: &models.PointElement{
			Radius:      pointRadius,
			HoverRadius: pointHoverRadius,
			PointStyle:  markerOrDefault(cfg.MarkerType),
		},
		Line: &models.LineElement{
			BorderWidth: cfg.BorderWidth,
			Tension:     tension,
			Fill:        cfg.Fill,
		},
	}
}

func (v cartesianVariant) scales(cfg models.ChartConfiguration, pal models.Palette) map[string]models.ScaleOptions {
	return cartesianScales(cfg, pal)
}

type barVariant struct{}

func (barVariant) styleDataset(ds *models.ChartDataset, idx int, _ int, theme models.Theme) {
	stroke := seriesColor(ds.BorderColor, idx, theme)
	ds.BorderColor = stroke
	if ds.BackgroundColor != "" {
		return
	}
	if theme.Dark {
		ds.BackgroundColor = theme.Palette.Gray
		return
	}
	ds.BackgroundColor = translucent(stroke, barFillAlpha)
}

func (barVariant) elements(models.ChartConfiguration) models.ElementOptions {
	return models.ElementOptions{
		Bar: &models.BarElement{
			BorderRadius:  barBorderRadius,
			BorderSkipped: false,
		},
	}
}

func (barVariant) scales(cfg models.ChartConfiguration, pal models.Palette) map[string]models.ScaleOptions {
	return cartesianScales(cfg, pal)
}

// radialVariant is the radar chart: points on a single radial scale
type radialVariant struct{}

func (radialVariant) styleDataset(ds *models.ChartDataset, idx int, _ int, theme models.Theme) {
	stroke := seriesColor(ds.BorderColor, idx, theme)
	ds.BorderColor = stroke
	if ds.BackgroundColor == "" {
		ds.BackgroundColor = translucent(stroke, areaFillAlpha)
	}
	if ds.PointBackgroundColor == "" {
		ds.PointBackgroundColor = stroke
	}
	ds.PointStyle = markerOrDefault(theme.MarkerType)
}

func (radialVariant) elements(cfg models.ChartConfiguration) models.ElementOptions {
	return models.ElementOptions{
		Point: &models.PointElement{
			Radius:      pointRadius,
			HoverRadius: pointHoverRadius,
			PointStyle:  markerOrDefault(cfg.MarkerType),
		},
		Line: &models.LineElement{
			BorderWidth: cfg.BorderWidth,
			Fill:        cfg.Fill,
		},
	}
}

func (radialVariant) scales(cfg models.ChartConfiguration, pal models.Palette) map[string]models.ScaleOptions {
	return map[string]models.ScaleOptions{"r": radialScale(cfg, pal)}
}

// arcVariant covers pie, doughnut and polar area charts, colored per slice
type arcVariant struct {
	radial bool
}

func (arcVariant) styleDataset(ds *models.ChartDataset, idx int, labels int, theme models.Theme) {
	if len(ds.SliceColors) == 0 {
		ds.SliceColors = make([]string, 0, labels)
		for i := 0; i < labels; i++ {
			ds.SliceColors = append(ds.SliceColors, seriesColor("", i, theme))
		}
	}
	if ds.BorderColor == "" {
		ds.BorderColor = theme.Palette.White
	}
}

func (arcVariant) elements(models.ChartConfiguration) models.ElementOptions {
	return models.ElementOptions{
		Arc: &models.ArcElement{BorderWidth: 0},
	}
}

func (v arcVariant) scales(cfg models.ChartConfiguration, pal models.Palette) map[string]models.ScaleOptions {
	if !v.radial {
		return nil
	}
	return map[string]models.ScaleOptions{"r": radialScale(cfg, pal)}
}

func cartesianScales(cfg models.ChartConfiguration, pal models.Palette) map[string]models.ScaleOptions {
	zero := 0
	return map[string]models.ScaleOptions{
		"x": {
			Title: axisTitle(cfg.XAxisLabel, cfg.FontSize),
			Ticks: models.ScaleTicks{
				MaxRotation:     xTickMaxRotation,
				AutoSkip:        true,
				AutoSkipPadding: xTickSkipPadding,
				Color:           pal.Neutral,
				Font:            models.FontSpec{Size: cfg.FontSize},
			},
			Grid: models.ScaleGrid{Display: cfg.ShowGrid},
		},
		"y": {
			BeginAtZero: true,
			Title:       axisTitle(cfg.YAxisLabel, cfg.FontSize),
			Ticks: models.ScaleTicks{
				Precision: &zero,
				Color:     pal.Neutral,
				Font:      models.FontSpec{Size: cfg.FontSize},
			},
			Grid: models.ScaleGrid{Display: cfg.ShowGrid},
		},
	}
}

func radialScale(cfg models.ChartConfiguration, pal models.Palette) models.ScaleOptions {
	zero := 0
	return models.ScaleOptions{
		BeginAtZero: true,
		Ticks: models.ScaleTicks{
			Precision: &zero,
			Color:     pal.Neutral,
			Font:      models.FontSpec{Size: cfg.FontSize},
		},
		Grid: models.ScaleGrid{Display: cfg.ShowGrid},
	}
}

// axisTitle is shown only when there is a label to show
func axisTitle(label string, fontSize int) models.ScaleTitle {
	return models.ScaleTitle{
		Display: label != "",
		Text:    label,
		Font:    models.FontSpec{Size: fontSize + 1},
	}
}

func markerOrDefault(marker string) string {
	if marker == "" {
		return models.MarkerCircle
	}
	return marker
}
