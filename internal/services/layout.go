package services

import (
	"escrow-dashboard/internal/models"
)

// DefaultLayoutRules are the step tables used by the escrow chart
func DefaultLayoutRules() models.LayoutRules {
	return models.LayoutRules{
		EmptyHeight: 300,
		HeightSteps: []models.Threshold{
			{MaxPoints: 3, Value: 340},
			{MaxPoints: 6, Value: 400},
			{MaxPoints: 12, Value: 460},
			{MaxPoints: 24, Value: 520},
		},
		MaxHeight: 580,
		AngleSteps: []models.Threshold{
			{MaxPoints: 4, Value: 0},
			{MaxPoints: 8, Value: -30},
		},
		SteepestAngle: -45,
		AxisHeightSteps: []models.Threshold{
			{MaxPoints: 4, Value: 60},
			{MaxPoints: 8, Value: 75},
		},
		MaxAxisHeight:  95,
		DenseAbove:     6,
		Stroke:         2.4,
		DenseStroke:    2,
		Dot:            5,
		DenseDot:       4.5,
		ActiveDot:      7.5,
		DenseActiveDot: 6.5,
		LegendPadding:  8,
		DenseLegend:    16,
		LongLabelsUpTo: 4,
	}
}

// LayoutFor sizes a chart from the number of plotted points
func LayoutFor(points int, rules models.LayoutRules) models.LayoutHints {
	if points < 0 {
		points = 0
	}

	hints := models.LayoutHints{
		Height:         rules.EmptyHeight,
		XAxisAngle:     step(points, rules.AngleSteps, rules.SteepestAngle),
		XAxisHeight:    step(points, rules.AxisHeightSteps, rules.MaxAxisHeight),
		LongTickLabels: points <= rules.LongLabelsUpTo,
	}

	if points > 0 {
		hints.Height = step(points, rules.HeightSteps, rules.MaxHeight)
	}

	if points <= rules.DenseAbove {
		hints.StrokeWidth = rules.Stroke
		hints.DotRadius = rules.Dot
		hints.ActiveDotRadius = rules.ActiveDot
	} else {
		hints.StrokeWidth = rules.DenseStroke
		hints.DotRadius = rules.DenseDot
		hints.ActiveDotRadius = rules.DenseActiveDot
	}

	hints.LegendPadding = rules.DenseLegend
	if hints.LongTickLabels {
		hints.LegendPadding = rules.LegendPadding
	}

	return hints
}

func step(points int, steps []models.Threshold, fallback int) int {
	for _, s := range steps {
		if points <= s.MaxPoints {
			return s.Value
		}
	}
	return fallback
}
