package services

import (
	"testing"

	"escrow-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   int64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1_000, "1 тыс"},
		{12_345, "12.3 тыс"},
		{999_949, "999.9 тыс"},
		{1_000_000, "1 млн"},
		{1_500_000, "1.5 млн"},
		{2_000_000, "2 млн"},
		{-2_500_000, "-2.5 млн"},
		{1_234_567_890, "1234.6 млн"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatAmount(decimal.NewFromInt(tt.amount)), "amount %d", tt.amount)
	}
}

func TestFormatChartValue(t *testing.T) {
	assert.Equal(t, "1.5 млн ₽", FormatChartValue(1.5))
	assert.Equal(t, "2 млн ₽", FormatChartValue(2))
	assert.Equal(t, "0.4 млн ₽", FormatChartValue(0.4))
	assert.Equal(t, "2 млрд ₽", FormatChartValue(2_000))
}

func TestFormatAxisTick(t *testing.T) {
	assert.Equal(t, "12млн", FormatAxisTick(12))
	assert.Equal(t, "2млрд", FormatAxisTick(2_000))
	assert.Equal(t, "0.5млн", FormatAxisTick(0.5))
	assert.Equal(t, "-2млрд", FormatAxisTick(-2_000))
}

func TestMonthNames(t *testing.T) {
	assert.Equal(t, "Янв", MonthName("01"))
	assert.Equal(t, "Дек", MonthName("12"))
	assert.Equal(t, "13", MonthName("13"))
	assert.Equal(t, "Март", FullMonthName("03"))
	assert.Equal(t, "xx", FullMonthName("xx"))
}

func TestTickLabel(t *testing.T) {
	rules := DefaultLayoutRules()

	assert.Equal(t, "Мар 2024", TickLabel("2024-03", 4, rules))
	assert.Equal(t, "Мар '24", TickLabel("2024-03", 5, rules))
	assert.Equal(t, "bad", TickLabel("bad", 1, rules))
}

func TestTooltipBreakdown(t *testing.T) {
	data := models.ChartData{
		Labels: []string{"2024-01", "2024-02"},
		Datasets: []models.ChartDataset{
			{Label: "A", Data: []float64{1, 3}},
			{Label: "B", Data: []float64{2, 0.5}},
		},
	}

	breakdown := TooltipBreakdown(data, 1, true)

	assert.Equal(t, "2024-02", breakdown.Month)
	assert.Equal(t, "Фев 2024", breakdown.Title)
	assert.Equal(t, TooltipModeCumulative, breakdown.Mode)
	require.Len(t, breakdown.Entries, 2)
	assert.Equal(t, "A", breakdown.Entries[0].Object)
	assert.Equal(t, "3 млн ₽", breakdown.Entries[0].Formatted)
	require.NotNil(t, breakdown.Total)
	assert.Equal(t, 3.5, *breakdown.Total)
	assert.Equal(t, "3.5 млн ₽", breakdown.TotalFormatted)
}

func TestTooltipBreakdown_SingleSeriesHasNoTotal(t *testing.T) {
	data := models.ChartData{
		Labels:   []string{"2024-01"},
		Datasets: []models.ChartDataset{{Label: "A", Data: []float64{1}}},
	}

	breakdown := TooltipBreakdown(data, 0, false)

	assert.Equal(t, TooltipModeMonthly, breakdown.Mode)
	assert.Nil(t, breakdown.Total)
	assert.Empty(t, breakdown.TotalFormatted)
}

func TestTooltipBreakdown_IndexOutOfRange(t *testing.T) {
	breakdown := TooltipBreakdown(models.ChartData{}, 3, false)

	assert.Empty(t, breakdown.Entries)
	assert.Empty(t, breakdown.Month)
}
