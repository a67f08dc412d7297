// Package error defines domain-specific errors for the financial management application.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrLedgerEntryNotFound is returned when a ledger entry is not found.
	ErrLedgerEntryNotFound = errors.New("ledger entry not found")

	// ErrNotAuthorizedLedgerEntry is returned when the ledger entry belongs to another user.
	ErrNotAuthorizedLedgerEntry = errors.New("not authorized to modify ledger entry")

	// ErrInvalidLedgerAmount is returned when the amount is zero or negative.
	ErrInvalidLedgerAmount = errors.New("invalid ledger entry amount")

	// ErrMissingLedgerDate is returned when no date is given.
	ErrMissingLedgerDate = errors.New("ledger entry date is required")

	// ErrLedgerFieldTooLong is returned when a text field exceeds its limit.
	ErrLedgerFieldTooLong = errors.New("ledger entry field too long")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LED-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidLedgerAmount LedgerErrorCode = "LED-010001"
	ErrCodeMissingLedgerDate   LedgerErrorCode = "LED-010002"
	ErrCodeLedgerFieldTooLong  LedgerErrorCode = "LED-010003"
	ErrCodeInvalidLedgerBody   LedgerErrorCode = "LED-010004"

	// Access errors (02XXXX)
	ErrCodeLedgerEntryNotFound      LedgerErrorCode = "LED-020001"
	ErrCodeNotAuthorizedLedgerEntry LedgerErrorCode = "LED-020002"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
