// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Jar domain errors.
var (
	// ErrMissingJarName is returned when a jar name is empty.
	ErrMissingJarName = errors.New("jar name is required")

	// ErrInvalidJarPercentage is returned when a jar percentage is outside [0, 100].
	ErrInvalidJarPercentage = errors.New("jar percentage must be between 0 and 100")

	// ErrNegativeJarAmount is returned when a jar current amount is negative.
	ErrNegativeJarAmount = errors.New("jar current amount must not be negative")

	// ErrInvalidJarTarget is returned when a jar target amount is zero or negative.
	ErrInvalidJarTarget = errors.New("jar target amount must be greater than zero")

	// ErrJarsNotEmpty is returned when the default preset is applied over existing jars.
	ErrJarsNotEmpty = errors.New("jar list is not empty")

	// ErrInvalidJarColor is returned when a jar color is not a known gradient.
	ErrInvalidJarColor = errors.New("invalid jar color")
)

// JarErrorCode defines error codes for jar errors.
// Format: JAR-XXYYYY where XX is category and YYYY is specific error.
type JarErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingJarName       JarErrorCode = "JAR-010001"
	ErrCodeInvalidJarPercentage JarErrorCode = "JAR-010002"
	ErrCodeNegativeJarAmount    JarErrorCode = "JAR-010003"
	ErrCodeInvalidJarTarget     JarErrorCode = "JAR-010004"
	ErrCodeJarsNotEmpty         JarErrorCode = "JAR-010005"
	ErrCodeMissingJarFields     JarErrorCode = "JAR-010006"
	ErrCodeInvalidJarColor      JarErrorCode = "JAR-010007"
)

// JarError represents a jar error with code and message.
type JarError struct {
	Code    JarErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *JarError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *JarError) Unwrap() error {
	return e.Err
}

// NewJarError creates a new JarError with the given code and message.
func NewJarError(code JarErrorCode, message string, err error) *JarError {
	return &JarError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
