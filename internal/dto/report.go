package dto

import (
	"strings"

	"escrow-dashboard/internal/models"
)

// EscrowReportQuery represents the filter query shared by the escrow report endpoints.
// Objects are repeated parameters (?objects=a&objects=b); names may contain commas.
type EscrowReportQuery struct {
	Search     string   `query:"search" validate:"omitempty,max=200"`
	Year       string   `query:"year" validate:"omitempty,year"`
	Month      string   `query:"month" validate:"omitempty,month_of_year"`
	Objects    []string `query:"objects" validate:"omitempty,max=100,dive,max=300"`
	Cumulative bool     `query:"cumulative"`
	Unit       string   `query:"unit"`
}

// HasOrphanMonth reports a month given without a year
func (q EscrowReportQuery) HasOrphanMonth() bool {
	return q.Month != "" && q.Year == ""
}

// ToFilterState converts the query into the report filter state
func (q EscrowReportQuery) ToFilterState() models.FilterState {
	var selected []string
	for _, object := range q.Objects {
		if object = strings.TrimSpace(object); object != "" {
			selected = append(selected, object)
		}
	}

	return models.FilterState{
		SearchText:      strings.TrimSpace(q.Search),
		Year:            q.Year,
		Month:           q.Month,
		SelectedObjects: selected,
		Cumulative:      q.Cumulative,
	}
}

// FilterOptionsQuery represents the request for the filter select lists
type FilterOptionsQuery struct {
	Year string `query:"year" validate:"omitempty,year"`
}
