// Package error defines domain-specific errors for the financial management application.
package error

import "errors"

// Cash movement domain errors.
var (
	// ErrCashMovementNotFound is returned when a cash movement is not found.
	ErrCashMovementNotFound = errors.New("cash movement not found")

	// ErrNotAuthorizedCashMovement is returned when the cash movement belongs to another user.
	ErrNotAuthorizedCashMovement = errors.New("not authorized to modify cash movement")

	// ErrInvalidCashMovementType is returned when the type is not income or expense.
	ErrInvalidCashMovementType = errors.New("invalid cash movement type")

	// ErrInvalidCashMovementAmount is returned when the amount is zero or negative.
	ErrInvalidCashMovementAmount = errors.New("invalid cash movement amount")

	// ErrMissingCashMovementDate is returned when no date is given.
	ErrMissingCashMovementDate = errors.New("cash movement date is required")

	// ErrCashMovementFieldTooLong is returned when a text field exceeds its limit.
	ErrCashMovementFieldTooLong = errors.New("cash movement field too long")
)

// CashMovementErrorCode defines error codes for cash movement errors.
// Format: CSH-XXYYYY where XX is category and YYYY is specific error.
type CashMovementErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCashMovementType   CashMovementErrorCode = "CSH-010001"
	ErrCodeInvalidCashMovementAmount CashMovementErrorCode = "CSH-010002"
	ErrCodeMissingCashMovementDate   CashMovementErrorCode = "CSH-010003"
	ErrCodeCashMovementFieldTooLong  CashMovementErrorCode = "CSH-010004"
	ErrCodeInvalidCashMovementBody   CashMovementErrorCode = "CSH-010005"

	// Access errors (02XXXX)
	ErrCodeCashMovementNotFound      CashMovementErrorCode = "CSH-020001"
	ErrCodeNotAuthorizedCashMovement CashMovementErrorCode = "CSH-020002"
)

// CashMovementError represents a cash movement error with code and message.
type CashMovementError struct {
	Code    CashMovementErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CashMovementError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CashMovementError) Unwrap() error {
	return e.Err
}

// NewCashMovementError creates a new CashMovementError with the given code and message.
func NewCashMovementError(code CashMovementErrorCode, message string, err error) *CashMovementError {
	return &CashMovementError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
