package services

import (
	"testing"
	"time"

	"escrow-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummaryReport(t *testing.T) {
	rows := append(exampleRows(), row("C", "2024-03", 2_500_000, "d3"))
	generatedAt := time.Date(2024, 4, 1, 15, 0, 0, 0, time.FixedZone("MSK", 3*60*60))

	report := BuildSummaryReport(rows, models.FilterState{}, generatedAt)

	require.Len(t, report.Rows, 3)
	assert.Equal(t, "C", report.Rows[0].ObjectName)
	assert.Equal(t, "2.5 млн", report.Rows[0].TotalFormatted)
	assert.Equal(t, "150", report.Rows[1].TotalFormatted)
	assertDecimal(t, 2_500_160, report.GrandTotal)
	assert.Equal(t, "2.5 млн", report.GrandTotalFormatted)
	assert.Equal(t, 3, report.DocumentCount)
	assert.Equal(t, time.UTC, report.GeneratedAt.Location())
	assert.Equal(t, 12, report.GeneratedAt.Hour())
}

func TestBuildSummaryReport_Empty(t *testing.T) {
	report := BuildSummaryReport(nil, models.FilterState{Year: "2030"}, time.Now())

	assert.NotNil(t, report.Rows)
	assert.Empty(t, report.Rows)
	assert.True(t, report.GrandTotal.IsZero())
	assert.Equal(t, "0", report.GrandTotalFormatted)
	assert.Equal(t, "2030", report.Filters.Year)
}

func TestBuildTimeSeriesReport_UnitAndTooltips(t *testing.T) {
	rows := []models.TransactionRow{
		row("A", "2024-01", 1_500_000, "d1"),
		row("B", "2024-01", 500_000, "d2"),
		row("A", "2024-02", 1_000_000, "d1"),
	}

	report := BuildTimeSeriesReport(rows, models.FilterState{}, UnitThousands, DefaultLayoutRules(), time.Now())

	assert.Equal(t, "thousands", report.Unit)
	assert.Equal(t, []string{"A", "B"}, report.Objects)
	require.Len(t, report.Points, 2)
	require.Len(t, report.Chart.Datasets, 2)
	assert.Equal(t, []float64{1500, 1000}, report.Chart.Datasets[0].Data)

	require.Len(t, report.Tooltips, 2)
	require.NotNil(t, report.Tooltips[0].Total)
	assert.InDelta(t, 2.0, *report.Tooltips[0].Total, 1e-9)
	assert.Equal(t, LayoutFor(2, DefaultLayoutRules()), report.Layout)

	assert.Equal(t, []string{"Янв 2024", "Фев 2024"}, report.XTicks)
	require.NotEmpty(t, report.YTicks)
	last := report.YTicks[len(report.YTicks)-1]
	assert.Equal(t, 1500.0, last.Value)
	assert.Equal(t, "1.5млн", last.Label)
}
