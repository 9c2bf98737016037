// Package errors turns failed PO API calls into a single error type that
// carries the server's message together with a retry classification.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory determines how errors should be handled by retry logic.
type ErrorCategory int

const (
	// Recoverable errors may succeed when retried.
	// Examples: 500 Internal Server Error, 429, connection failures.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors fail the same way on every attempt.
	// Examples: 400 Bad Request, 401 Unauthorized, 404 Not Found.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// APIError is returned for a non-2xx response or a failed round trip.
// Error() is exactly the message picked from the response body, so callers
// that only surface the text see what the server said.
type APIError struct {
	Category   ErrorCategory
	StatusCode int    // 0 for network errors
	Message    string // detail, message or fallback
	ErrorCode  string // error_code from the body, if any
	Path       string // path echoed by the server, if any
	Body       string // raw response body for debugging
	Underlying error
}

// Error implements the error interface.
func (e *APIError) Error() string { return e.Message }

// Unwrap returns the underlying error for error chain compatibility.
func (e *APIError) Unwrap() error { return e.Underlying }

// IsIrrecoverable reports whether err should not be retried.
func IsIrrecoverable(err error) bool {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.Category == Irrecoverable
	}
	return false
}

// IsRecoverable reports whether err is an APIError worth retrying.
func IsRecoverable(err error) bool {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.Category == Recoverable
	}
	return false
}

// StatusCode extracts the HTTP status of err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
