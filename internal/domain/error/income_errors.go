// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Income domain errors.
var (
	// ErrMissingIncomeName is returned when an income name is empty.
	ErrMissingIncomeName = errors.New("income name is required")

	// ErrInvalidIncomeAmount is returned when an income amount is zero or negative.
	ErrInvalidIncomeAmount = errors.New("income amount must be greater than zero")

	// ErrInvalidIncomeType is returned when the income type is neither regular nor irregular.
	ErrInvalidIncomeType = errors.New("invalid income type")
)

// IncomeErrorCode defines error codes for income errors.
// Format: INC-XXYYYY where XX is category and YYYY is specific error.
type IncomeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingIncomeName   IncomeErrorCode = "INC-010001"
	ErrCodeInvalidIncomeAmount IncomeErrorCode = "INC-010002"
	ErrCodeInvalidIncomeType   IncomeErrorCode = "INC-010003"
)

// IncomeError represents an income error with code and message.
type IncomeError struct {
	Code    IncomeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *IncomeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *IncomeError) Unwrap() error {
	return e.Err
}

// NewIncomeError creates a new IncomeError with the given code and message.
func NewIncomeError(code IncomeErrorCode, message string, err error) *IncomeError {
	return &IncomeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
