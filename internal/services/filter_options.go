package services

import (
	"slices"

	"escrow-dashboard/internal/models"
)

// YearsAvailable returns the sorted distinct years present in the rows
func YearsAvailable(rows []models.TransactionRow) []string {
	seen := make(map[string]struct{})
	years := make([]string, 0)

	for i := range rows {
		year := rows[i].Year()
		if year == "" {
			continue
		}
		if _, ok := seen[year]; ok {
			continue
		}
		seen[year] = struct{}{}
		years = append(years, year)
	}

	slices.Sort(years)
	return years
}

// MonthsAvailable returns the sorted distinct two-digit months present within a year
func MonthsAvailable(rows []models.TransactionRow, year string) []string {
	months := make([]string, 0)
	if year == "" {
		return months
	}

	seen := make(map[string]struct{})
	for i := range rows {
		if rows[i].Year() != year {
			continue
		}
		mm := rows[i].MonthOfYear()
		if mm == "" {
			continue
		}
		if _, ok := seen[mm]; ok {
			continue
		}
		seen[mm] = struct{}{}
		months = append(months, mm)
	}

	slices.Sort(months)
	return months
}

// BuildFilterOptions collects the option lists for the filter controls
func BuildFilterOptions(rows []models.TransactionRow, filters models.FilterState) models.FilterOptions {
	months := MonthsAvailable(rows, filters.Year)
	options := models.FilterOptions{
		Years:   YearsAvailable(rows),
		Months:  make([]models.MonthOption, 0, len(months)),
		Objects: SeriesObjects(rows, filters),
	}

	for _, mm := range months {
		options.Months = append(options.Months, models.MonthOption{
			Value: mm,
			Name:  FullMonthName(mm),
		})
	}

	return options
}
