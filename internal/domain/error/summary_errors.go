// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Summary domain errors.
var (
	// ErrInvalidMonth is returned when the month is outside [1, 12].
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidYear is returned when the year is not a positive calendar year.
	ErrInvalidYear = errors.New("invalid year")

	// ErrInvalidRange is returned when the requested range is neither month nor year.
	ErrInvalidRange = errors.New("range must be 'month' or 'year'")
)

// SummaryErrorCode defines error codes for summary errors.
// Format: SUM-XXYYYY where XX is category and YYYY is specific error.
type SummaryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonth SummaryErrorCode = "SUM-010001"
	ErrCodeInvalidYear  SummaryErrorCode = "SUM-010002"
	ErrCodeInvalidRange SummaryErrorCode = "SUM-010003"
)

// SummaryError represents a summary error with code and message.
type SummaryError struct {
	Code    SummaryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SummaryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SummaryError) Unwrap() error {
	return e.Err
}

// NewSummaryError creates a new SummaryError with the given code and message.
func NewSummaryError(code SummaryErrorCode, message string, err error) *SummaryError {
	return &SummaryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
