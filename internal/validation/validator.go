package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"escrow-dashboard/internal/models"

	"github.com/go-playground/validator/v10"
)

var (
	yearPattern  = regexp.MustCompile(`^\d{4}$`)
	monthPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])$`)
)

// Validator wraps the go-playground validator with the report and chart rules
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("chart_type", validateChartType)
	_ = v.RegisterValidation("legend_position", validateLegendPosition)
	_ = v.RegisterValidation("marker_type", validateMarkerType)
	_ = v.RegisterValidation("year", validateYear)
	_ = v.RegisterValidation("month_of_year", validateMonthOfYear)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

func validateChartType(fl validator.FieldLevel) bool {
	return models.IsValidChartType(fl.Field().String())
}

func validateLegendPosition(fl validator.FieldLevel) bool {
	return models.IsValidLegendPosition(fl.Field().String())
}

func validateMarkerType(fl validator.FieldLevel) bool {
	return models.IsValidMarkerType(fl.Field().String())
}

// validateYear accepts a four digit calendar year
func validateYear(fl validator.FieldLevel) bool {
	return yearPattern.MatchString(fl.Field().String())
}

// validateMonthOfYear accepts a two digit month, 01 through 12
func validateMonthOfYear(fl validator.FieldLevel) bool {
	return monthPattern.MatchString(fl.Field().String())
}
