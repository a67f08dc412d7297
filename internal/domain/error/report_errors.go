// Package error defines domain-specific errors for the financial management application.
package error

import "errors"

// Report domain errors.
var (
	// ErrUnknownPeriod is returned when a period selector is not supported.
	ErrUnknownPeriod = errors.New("unknown period")

	// ErrInvalidReportType is returned when the report type is not supported.
	ErrInvalidReportType = errors.New("invalid report type")

	// ErrInvalidReportFormat is returned when the export format is not supported.
	ErrInvalidReportFormat = errors.New("invalid report format")

	// ErrInvalidCustomRange is returned when a custom period has a missing or inverted range.
	ErrInvalidCustomRange = errors.New("custom period requires start_date <= end_date")

	// ErrReportNotFound is returned when a report label does not exist.
	ErrReportNotFound = errors.New("report not found")

	// ErrNotAuthorizedReport is returned when a report label belongs to another user.
	ErrNotAuthorizedReport = errors.New("not authorized to access report")

	// ErrReportNotReady is returned when an export is requested before any aggregation
	// completed for the current parameters.
	ErrReportNotReady = errors.New("report data not ready")

	// ErrFetchFailed is returned when the record store could not be read.
	ErrFetchFailed = errors.New("failed to fetch report records")

	// ErrPersistFailed is returned when a report label could not be written.
	ErrPersistFailed = errors.New("failed to persist report")

	// ErrExportFailed is returned when a generator fails to render the payload.
	ErrExportFailed = errors.New("failed to export report")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUnknownPeriod       ReportErrorCode = "RPT-010001"
	ErrCodeInvalidReportType   ReportErrorCode = "RPT-010002"
	ErrCodeInvalidReportFormat ReportErrorCode = "RPT-010003"
	ErrCodeInvalidCustomRange  ReportErrorCode = "RPT-010004"

	// Access errors (02XXXX)
	ErrCodeReportNotFound      ReportErrorCode = "RPT-020001"
	ErrCodeNotAuthorizedReport ReportErrorCode = "RPT-020002"

	// State errors (03XXXX)
	ErrCodeReportNotReady ReportErrorCode = "RPT-030001"

	// Collaborator errors (90XXXX)
	ErrCodeFetchFailed   ReportErrorCode = "RPT-900001"
	ErrCodePersistFailed ReportErrorCode = "RPT-900002"
	ErrCodeExportFailed  ReportErrorCode = "RPT-900003"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
