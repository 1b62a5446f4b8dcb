package models

import (
	"slices"
)

// FilterState holds the independent filter dimensions of the escrow report.
// Month is a two-digit month and is only meaningful together with Year.
// An empty SelectedObjects means every object, not none.
type FilterState struct {
	SearchText      string   `json:"search_text,omitempty"`
	Year            string   `json:"year,omitempty"`
	Month           string   `json:"month,omitempty"`
	SelectedObjects []string `json:"selected_objects,omitempty"`
	Cumulative      bool     `json:"cumulative"`
}

// WithYear selects a year and clears the month
func (f FilterState) WithYear(year string) FilterState {
	f.Year = year
	f.Month = ""
	return f
}

// WithMonth selects a month inside the current year
func (f FilterState) WithMonth(month string) FilterState {
	f.Month = month
	return f
}

// ResetPeriod clears year and month
func (f FilterState) ResetPeriod() FilterState {
	f.Year = ""
	f.Month = ""
	return f
}

// ToggleObject adds the object to the selection, or removes it if already selected
func (f FilterState) ToggleObject(object string) FilterState {
	selected := slices.Clone(f.SelectedObjects)
	if i := slices.Index(selected, object); i >= 0 {
		f.SelectedObjects = slices.Delete(selected, i, i+1)
		return f
	}
	f.SelectedObjects = append(selected, object)
	return f
}

// AllObjects reports whether no explicit object subset is selected
func (f FilterState) AllObjects() bool {
	return len(f.SelectedObjects) == 0
}

// Period returns the exact YYYY-MM the table filter matches, or "" when no month is chosen
func (f FilterState) Period() string {
	if f.Year == "" || f.Month == "" {
		return ""
	}
	return f.Year + "-" + f.Month
}

// Cutoff returns the inclusive upper bound used by the chart, or "" when no year is chosen
func (f FilterState) Cutoff() string {
	if f.Year == "" {
		return ""
	}
	if f.Month == "" {
		return f.Year + "-12"
	}
	return f.Year + "-" + f.Month
}
