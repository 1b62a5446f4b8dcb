package services

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"escrow-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	million  = decimal.NewFromInt(1_000_000)
	thousand = decimal.NewFromInt(1_000)

	shortMonthNames = []string{"Янв", "Фев", "Мар", "Апр", "Май", "Июн", "Июл", "Авг", "Сен", "Окт", "Ноя", "Дек"}
	fullMonthNames  = []string{
		"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
		"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
	}
)

const (
	TooltipModeCumulative = "накоп."
	TooltipModeMonthly    = "месяц"
)

// FormatAmount renders a ruble amount for the summary table: millions and
// thousands with one decimal (a trailing .0 dropped), smaller values with
// Russian digit grouping.
func FormatAmount(amount decimal.Decimal) string {
	abs := amount.Abs()

	switch {
	case abs.GreaterThanOrEqual(million):
		return amount.Div(decimal.NewFromInt(100_000)).Round(0).Div(decimal.NewFromInt(10)).String() + " млн"
	case abs.GreaterThanOrEqual(thousand):
		return amount.Div(decimal.NewFromInt(100)).Round(0).Div(decimal.NewFromInt(10)).String() + " тыс"
	default:
		p := message.NewPrinter(language.Russian)
		return p.Sprint(number.Decimal(amount.InexactFloat64(), number.MaxFractionDigits(2)))
	}
}

// FormatChartValue renders a value that is already expressed in millions
func FormatChartValue(millions float64) string {
	abs := millions
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs >= 1_000:
		return strconv.FormatFloat(millions/1_000, 'f', 0, 64) + " млрд ₽"
	case abs >= 1:
		return strings.TrimSuffix(strconv.FormatFloat(millions, 'f', 1, 64), ".0") + " млн ₽"
	default:
		return strconv.FormatFloat(millions, 'f', 1, 64) + " млн ₽"
	}
}

// FormatAxisTick renders a y axis tick of a chart plotted in millions
func FormatAxisTick(millions float64) string {
	if math.Abs(millions) >= 1_000 {
		return strconv.FormatFloat(millions/1_000, 'f', 0, 64) + "млрд"
	}
	return strings.TrimSuffix(strconv.FormatFloat(millions, 'f', 1, 64), ".0") + "млн"
}

// MonthName returns the short Russian name for a two-digit month, or the input unchanged
func MonthName(mm string) string {
	n, err := strconv.Atoi(mm)
	if err != nil || n < 1 || n > 12 {
		return mm
	}
	return shortMonthNames[n-1]
}

// FullMonthName returns the Russian month name used in select lists
func FullMonthName(mm string) string {
	n, err := strconv.Atoi(mm)
	if err != nil || n < 1 || n > 12 {
		return mm
	}
	return fullMonthNames[n-1]
}

// TickLabel formats a YYYY-MM axis label. Sparse charts get the full year,
// dense charts the two-digit form.
func TickLabel(month string, points int, rules models.LayoutRules) string {
	year, mm, ok := strings.Cut(month, "-")
	if !ok || len(year) < 4 {
		return month
	}
	if points <= rules.LongLabelsUpTo {
		return MonthName(mm) + " " + year
	}
	return MonthName(mm) + " '" + year[2:]
}

// TooltipBreakdown builds the tooltip of one chart month: series sorted by
// descending value, with a total line when more than one series is shown.
// Values are taken from the dataset at the given label index.
func TooltipBreakdown(data models.ChartData, index int, cumulative bool) models.TooltipBreakdown {
	breakdown := models.TooltipBreakdown{
		Mode:    TooltipModeMonthly,
		Entries: make([]models.TooltipEntry, 0, len(data.Datasets)),
	}
	if cumulative {
		breakdown.Mode = TooltipModeCumulative
	}
	if index < 0 || index >= len(data.Labels) {
		return breakdown
	}

	breakdown.Month = data.Labels[index]
	if year, mm, ok := strings.Cut(breakdown.Month, "-"); ok {
		breakdown.Title = MonthName(mm) + " " + year
	} else {
		breakdown.Title = breakdown.Month
	}

	total := 0.0
	for _, ds := range data.Datasets {
		if index >= len(ds.Data) {
			continue
		}
		v := ds.Data[index]
		total += v
		breakdown.Entries = append(breakdown.Entries, models.TooltipEntry{
			Object:    ds.Label,
			Value:     v,
			Formatted: FormatChartValue(v),
		})
	}

	slices.SortStableFunc(breakdown.Entries, func(a, b models.TooltipEntry) int {
		switch {
		case a.Value > b.Value:
			return -1
		case a.Value < b.Value:
			return 1
		}
		return 0
	})

	if len(breakdown.Entries) > 1 {
		breakdown.Total = &total
		breakdown.TotalFormatted = FormatChartValue(total)
	}

	return breakdown
}
