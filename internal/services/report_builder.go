package services

import (
	"time"

	"escrow-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// BuildSummaryReport assembles the table view from normalized rows. The
// document count is the sum of the per-object distinct counts.
func BuildSummaryReport(rows []models.TransactionRow, filters models.FilterState, generatedAt time.Time) *models.EscrowSummaryReport {
	summaries := Summarize(rows, filters)
	report := &models.EscrowSummaryReport{
		Filters:     filters,
		Rows:        make([]models.SummaryLine, 0, len(summaries)),
		GrandTotal:  decimal.Zero,
		GeneratedAt: generatedAt.UTC(),
	}

	for _, sum := range summaries {
		report.GrandTotal = report.GrandTotal.Add(sum.Total)
		report.DocumentCount += sum.DocumentCount
		report.Rows = append(report.Rows, models.SummaryLine{
			ObjectSummary:  sum,
			TotalFormatted: FormatAmount(sum.Total),
		})
	}
	report.GrandTotalFormatted = FormatAmount(report.GrandTotal)

	return report
}

// BuildTimeSeriesReport assembles the chart view from normalized rows.
// Tooltips are always expressed in millions whatever unit the series use.
func BuildTimeSeriesReport(rows []models.TransactionRow, filters models.FilterState, unit AmountUnit, rules models.LayoutRules, generatedAt time.Time) *models.EscrowTimeSeriesReport {
	points := ToTimeSeries(rows, filters)
	objects := SeriesNames(rows, filters)
	chart := BuildChartData(points, objects, unit)

	tooltipData := chart
	if unit != UnitMillions {
		tooltipData = BuildChartData(points, objects, UnitMillions)
	}

	tooltips := make([]models.TooltipBreakdown, 0, len(points))
	xTicks := make([]string, 0, len(points))
	for i := range points {
		tooltips = append(tooltips, TooltipBreakdown(tooltipData, i, filters.Cumulative))
		xTicks = append(xTicks, TickLabel(points[i].Month, len(points), rules))
	}

	return &models.EscrowTimeSeriesReport{
		Filters:     filters,
		Objects:     objects,
		Points:      points,
		Unit:        string(unit),
		Chart:       chart,
		Layout:      LayoutFor(len(points), rules),
		Tooltips:    tooltips,
		XTicks:      xTicks,
		YTicks:      AxisTicks(chart, unit),
		GeneratedAt: generatedAt.UTC(),
	}
}
