// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrMissingExpenseName is returned when the expense name is empty.
	ErrMissingExpenseName = errors.New("expense name is required")

	// ErrNegativeExpenseAmount is returned when the expense amount is negative.
	ErrNegativeExpenseAmount = errors.New("expense amount must not be negative")

	// ErrUnknownCategory is returned when the category is not in the catalog.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUnknownSubCategory is returned when the subcategory does not belong to the category.
	ErrUnknownSubCategory = errors.New("subcategory does not belong to category")

	// ErrInvalidColorTag is returned when the color tag is not a known gradient.
	ErrInvalidColorTag = errors.New("invalid color tag")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeExpenseNotFound       ExpenseErrorCode = "EXP-010001"
	ErrCodeMissingExpenseName    ExpenseErrorCode = "EXP-010002"
	ErrCodeNegativeExpenseAmount ExpenseErrorCode = "EXP-010003"
	ErrCodeUnknownCategory       ExpenseErrorCode = "EXP-010004"
	ErrCodeUnknownSubCategory    ExpenseErrorCode = "EXP-010005"
	ErrCodeInvalidColorTag       ExpenseErrorCode = "EXP-010006"
	ErrCodeMissingExpenseFields  ExpenseErrorCode = "EXP-010007"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
