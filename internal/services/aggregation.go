package services

import (
	"slices"
	"sort"
	"strings"

	"escrow-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// rowFilter is the precomputed form of a FilterState shared by both views
type rowFilter struct {
	fold     cases.Caser
	search   string
	selected map[string]struct{}
	year     string
	period   string
	cutoff   string
}

func newRowFilter(filters models.FilterState) rowFilter {
	f := rowFilter{
		fold:   cases.Fold(),
		year:   filters.Year,
		period: filters.Period(),
		cutoff: filters.Cutoff(),
	}
	f.search = f.key(strings.TrimSpace(filters.SearchText))

	if !filters.AllObjects() {
		f.selected = make(map[string]struct{}, len(filters.SelectedObjects))
		for _, obj := range filters.SelectedObjects {
			f.selected[obj] = struct{}{}
		}
	}

	return f
}

// key folds case and compatibility forms so "ЖК Север" matches "жк север"
func (f *rowFilter) key(s string) string {
	return f.fold.String(norm.NFKC.String(s))
}

func (f *rowFilter) matchesObject(row *models.TransactionRow) bool {
	if f.search != "" && !strings.Contains(f.key(row.ObjectName), f.search) {
		return false
	}
	if f.selected != nil {
		if _, ok := f.selected[row.ObjectName]; !ok {
			return false
		}
	}
	return true
}

// matchesPeriod is the table semantic: year prefix, and exact year-month when a month is set
func (f *rowFilter) matchesPeriod(row *models.TransactionRow) bool {
	if f.year == "" {
		return true
	}
	if row.Year() != f.year {
		return false
	}
	return f.period == "" || row.Month == f.period
}

// withinCutoff is the chart semantic: every month up to and including the cutoff
func (f *rowFilter) withinCutoff(row *models.TransactionRow) bool {
	if !row.HasMonth() {
		return false
	}
	return f.cutoff == "" || row.Month <= f.cutoff
}

// Summarize groups the filtered rows by object. Totals are summed, documents
// are counted once per distinct identifier and the result is ordered by
// descending total with ties kept in first-seen order.
func Summarize(rows []models.TransactionRow, filters models.FilterState) []models.ObjectSummary {
	f := newRowFilter(filters)

	index := make(map[string]int)
	documents := make(map[string]map[string]struct{})
	summaries := make([]models.ObjectSummary, 0)

	for i := range rows {
		row := &rows[i]
		if !f.matchesObject(row) || !f.matchesPeriod(row) {
			continue
		}

		pos, ok := index[row.ObjectName]
		if !ok {
			pos = len(summaries)
			index[row.ObjectName] = pos
			documents[row.ObjectName] = make(map[string]struct{})
			summaries = append(summaries, models.ObjectSummary{
				ObjectName: row.ObjectName,
				Total:      decimal.Zero,
			})
		}

		summaries[pos].Total = summaries[pos].Total.Add(row.Amount)
		if row.DocumentID != "" {
			documents[row.ObjectName][row.DocumentID] = struct{}{}
		}
	}

	for i := range summaries {
		summaries[i].DocumentCount = len(documents[summaries[i].ObjectName])
	}

	sort.SliceStable(summaries, func(a, b int) bool {
		return summaries[a].Total.GreaterThan(summaries[b].Total)
	})

	return summaries
}

// ToTimeSeries buckets the filtered rows by month. The year/month filter is an
// upper bound here, rows without a month are left out, and each month carries a
// value for every series object (zero when the object had no movement). In
// cumulative mode the values are running totals per object; they are not
// clamped, so negative adjustments can make a series go down.
func ToTimeSeries(rows []models.TransactionRow, filters models.FilterState) []models.TimeSeriesPoint {
	f := newRowFilter(filters)

	monthly := make(map[string]map[string]decimal.Decimal)
	present := make(map[string]struct{})

	for i := range rows {
		row := &rows[i]
		if !f.matchesObject(row) || !f.withinCutoff(row) {
			continue
		}

		bucket, ok := monthly[row.Month]
		if !ok {
			bucket = make(map[string]decimal.Decimal)
			monthly[row.Month] = bucket
		}
		sum, ok := bucket[row.ObjectName]
		if !ok {
			sum = decimal.Zero
		}
		bucket[row.ObjectName] = sum.Add(row.Amount)
		present[row.ObjectName] = struct{}{}
	}

	months := make([]string, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	slices.Sort(months)

	objects := seriesSet(present, filters)
	running := make(map[string]decimal.Decimal, len(objects))
	for _, obj := range objects {
		running[obj] = decimal.Zero
	}
	points := make([]models.TimeSeriesPoint, 0, len(months))

	for _, month := range months {
		bucket := monthly[month]
		point := models.TimeSeriesPoint{
			Month:        month,
			IsCumulative: filters.Cumulative,
			Series:       make(map[string]decimal.Decimal, len(objects)),
		}

		for _, obj := range objects {
			value, ok := bucket[obj]
			if !ok {
				value = decimal.Zero
			}
			if filters.Cumulative {
				running[obj] = running[obj].Add(value)
				value = running[obj]
			}
			point.Series[obj] = value
		}

		points = append(points, point)
	}

	return points
}

// SeriesNames returns the ordered series set ToTimeSeries emits for these filters:
// every present object sorted by name, or the selected objects that actually occur
// in selection order.
func SeriesNames(rows []models.TransactionRow, filters models.FilterState) []string {
	f := newRowFilter(filters)
	present := make(map[string]struct{})

	for i := range rows {
		row := &rows[i]
		if f.matchesObject(row) && f.withinCutoff(row) {
			present[row.ObjectName] = struct{}{}
		}
	}

	return seriesSet(present, filters)
}

// SeriesObjects lists the objects that can be toggled on the chart: everything
// under the period cutoff, regardless of the current selection
func SeriesObjects(rows []models.TransactionRow, filters models.FilterState) []string {
	filters.SelectedObjects = nil
	return SeriesNames(rows, filters)
}

func seriesSet(present map[string]struct{}, filters models.FilterState) []string {
	if filters.AllObjects() {
		objects := make([]string, 0, len(present))
		for obj := range present {
			objects = append(objects, obj)
		}
		slices.Sort(objects)
		return objects
	}

	objects := make([]string, 0, len(filters.SelectedObjects))
	seen := make(map[string]struct{}, len(filters.SelectedObjects))
	for _, obj := range filters.SelectedObjects {
		if _, ok := present[obj]; !ok {
			continue
		}
		if _, dup := seen[obj]; dup {
			continue
		}
		seen[obj] = struct{}{}
		objects = append(objects, obj)
	}
	return objects
}
