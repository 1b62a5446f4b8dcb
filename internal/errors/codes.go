package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidPeriod ErrorCode = "VALIDATION_005"
	ValidationInvalidBody   ErrorCode = "VALIDATION_006"
)

// Report error codes (REPORT_*)
const (
	ReportUnavailable   ErrorCode = "REPORT_001"
	ReportInvalidUnit   ErrorCode = "REPORT_002"
	ReportInvalidFilter ErrorCode = "REPORT_003"
	ReportTimeout       ErrorCode = "REPORT_004"
)

// Chart error codes (CHART_*)
const (
	ChartInvalidType           ErrorCode = "CHART_001"
	ChartInvalidLegendPosition ErrorCode = "CHART_002"
	ChartInvalidMarkerType     ErrorCode = "CHART_003"
	ChartInvalidOverrides      ErrorCode = "CHART_004"
	ChartInvalidConfiguration  ErrorCode = "CHART_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemNotFound           ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidPeriod: "Invalid year or month filter",
	ValidationInvalidBody:   "Request body could not be parsed",

	// Report errors
	ReportUnavailable:   "Escrow data is temporarily unavailable",
	ReportInvalidUnit:   "Invalid chart amount unit",
	ReportInvalidFilter: "Invalid report filter",
	ReportTimeout:       "Escrow report request timed out",

	// Chart errors
	ChartInvalidType:           "Unsupported chart type",
	ChartInvalidLegendPosition: "Unsupported legend position",
	ChartInvalidMarkerType:     "Unsupported marker type",
	ChartInvalidOverrides:      "Render options override does not match the options shape",
	ChartInvalidConfiguration:  "Invalid chart configuration",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotFound:           "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
