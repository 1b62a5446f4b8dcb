package services

import (
	"errors"
	"math"

	"escrow-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// AmountUnit is the scale series values are plotted in
type AmountUnit string

const (
	UnitRubles    AmountUnit = "rub"
	UnitThousands AmountUnit = "thousands"
	UnitMillions  AmountUnit = "millions"
)

var ErrInvalidUnit = errors.New("invalid amount unit")

// ParseAmountUnit maps a query value to a unit; empty means millions
func ParseAmountUnit(s string) (AmountUnit, error) {
	switch AmountUnit(s) {
	case "", UnitMillions:
		return UnitMillions, nil
	case UnitThousands:
		return UnitThousands, nil
	case UnitRubles:
		return UnitRubles, nil
	}
	return "", ErrInvalidUnit
}

// Divisor returns how many rubles one plotted unit stands for
func (u AmountUnit) Divisor() decimal.Decimal {
	switch u {
	case UnitThousands:
		return thousand
	case UnitRubles:
		return decimal.NewFromInt(1)
	default:
		return million
	}
}

// BuildChartData turns a time series into renderer datasets, one per object in
// the given order, with month labels and values scaled to the unit
func BuildChartData(points []models.TimeSeriesPoint, objects []string, unit AmountUnit) models.ChartData {
	data := models.ChartData{
		Labels:   make([]string, 0, len(points)),
		Datasets: make([]models.ChartDataset, 0, len(objects)),
	}

	for _, p := range points {
		data.Labels = append(data.Labels, p.Month)
	}

	divisor := unit.Divisor()
	for _, obj := range objects {
		ds := models.ChartDataset{
			Label: obj,
			Data:  make([]float64, 0, len(points)),
		}
		for _, p := range points {
			ds.Data = append(ds.Data, p.Value(obj).Div(divisor).InexactFloat64())
		}
		data.Datasets = append(data.Datasets, ds)
	}

	return data
}

const yTickIntervals = 4

// AxisTicks spreads about four evenly spaced, rounded gridlines over the data
// range (zero always included) and labels them in millions
func AxisTicks(data models.ChartData, unit AmountUnit) []models.AxisTick {
	lo, hi := 0.0, 0.0
	for _, ds := range data.Datasets {
		for _, v := range ds.Data {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}

	toMillions := unit.Divisor().Div(million).InexactFloat64()
	if lo == hi {
		return []models.AxisTick{{Value: 0, Label: FormatAxisTick(0)}}
	}

	step := niceStep((hi - lo) / yTickIntervals)
	first := int(math.Floor(lo / step))
	last := int(math.Ceil(hi / step))

	ticks := make([]models.AxisTick, 0, last-first+1)
	for i := first; i <= last; i++ {
		v := math.Round(float64(i)*step*1e6) / 1e6
		ticks = append(ticks, models.AxisTick{Value: v, Label: FormatAxisTick(v * toMillions)})
	}
	return ticks
}

// niceStep rounds a raw step up to 1, 2 or 5 times a power of ten
func niceStep(raw float64) float64 {
	magnitude := math.Pow(10, math.Floor(math.Log10(raw)))
	switch f := raw / magnitude; {
	case f <= 1:
		return magnitude
	case f <= 2:
		return 2 * magnitude
	case f <= 5:
		return 5 * magnitude
	default:
		return 10 * magnitude
	}
}
