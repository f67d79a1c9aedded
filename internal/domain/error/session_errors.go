// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Session domain errors.
var (
	// ErrInvalidAccessKey is returned when the supplied access key does not match.
	ErrInvalidAccessKey = errors.New("invalid access key")

	// ErrInvalidToken is returned when a session token is malformed or expired.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrMissingToken is returned when no session token is supplied.
	ErrMissingToken = errors.New("missing authorization token")

	// ErrRateLimited is returned when too many session attempts were made.
	ErrRateLimited = errors.New("too many attempts")
)

// SessionErrorCode defines error codes for session errors.
// Format: SES-XXYYYY where XX is category and YYYY is specific error.
type SessionErrorCode string

const (
	// Authentication errors (02XXXX)
	ErrCodeInvalidAccessKey SessionErrorCode = "SES-020001"
	ErrCodeInvalidToken     SessionErrorCode = "SES-020002"
	ErrCodeMissingToken     SessionErrorCode = "SES-020003"
	ErrCodeRateLimited      SessionErrorCode = "SES-020004"
)

// SessionError represents a session error with code and message.
type SessionError struct {
	Code    SessionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SessionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SessionError) Unwrap() error {
	return e.Err
}

// NewSessionError creates a new SessionError with the given code and message.
func NewSessionError(code SessionErrorCode, message string, err error) *SessionError {
	return &SessionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
