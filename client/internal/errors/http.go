package errors

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Fallback messages used when a failure body names no reason.
const (
	FallbackAPI        = "API Error"
	FallbackUpload     = "Upload failed"
	FallbackBulkUpload = "Bulk upload failed"
)

// failureBody covers both shapes the backend emits: raw HTTPException
// ({detail}) and the registered handlers ({status, error_code, message, path}).
type failureBody struct {
	Detail    json.RawMessage `json:"detail"`
	Message   string          `json:"message"`
	ErrorCode string          `json:"error_code"`
	Path      string          `json:"path"`
}

// FromResponse builds the error for a non-2xx JSON call: detail, else
// message, else fallback.
func FromResponse(statusCode int, body []byte, fallback string) *APIError {
	return fromBody(statusCode, body, fallback, true)
}

// FromUploadResponse builds the error for a non-2xx upload. Uploads only
// look at detail before falling back.
func FromUploadResponse(statusCode int, body []byte, fallback string) *APIError {
	return fromBody(statusCode, body, fallback, false)
}

func fromBody(statusCode int, body []byte, fallback string, useMessage bool) *APIError {
	e := &APIError{
		Category:   categoryFor(statusCode),
		StatusCode: statusCode,
		Message:    fallback,
		Body:       string(body),
	}
	var fb failureBody
	if err := json.Unmarshal(body, &fb); err != nil {
		e.Underlying = fmt.Errorf("HTTP %d: undecodable error body: %w", statusCode, err)
		return e
	}
	e.ErrorCode = fb.ErrorCode
	e.Path = fb.Path
	switch {
	case detailText(fb.Detail) != "":
		e.Message = detailText(fb.Detail)
	case useMessage && fb.Message != "":
		e.Message = fb.Message
	}
	e.Underlying = fmt.Errorf("HTTP %d", statusCode)
	return e
}

// detailText renders detail as text; validation failures send a list.
func detailText(raw json.RawMessage) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return trimmed
}

// categoryFor maps HTTP status codes to error categories.
func categoryFor(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429:
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		// Unexpected status codes - be conservative and retry
		return Recoverable
	}
}

// NewNetworkError creates a classified error for network-level failures.
// Network errors are always recoverable as they may be transient.
func NewNetworkError(operation string, err error) *APIError {
	return &APIError{
		Category:   Recoverable,
		Message:    fmt.Sprintf("%s: %v", operation, err),
		Underlying: err,
	}
}
