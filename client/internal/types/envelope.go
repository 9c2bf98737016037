package types

import (
	"encoding/json"
	"strings"
	"time"
)

// Status is the outcome marker every backend payload carries.
type Status string

const (
	StatusSuccess        Status = "SUCCESS"
	StatusPartialSuccess Status = "PARTIAL_SUCCESS"
	StatusFailed         Status = "FAILED"
	StatusError          Status = "ERROR"
)

// Envelope holds the fields shared by success and failure payloads. Responses
// embed it so a caller of the unchecked functions can tell a failure body apart
// from a success body by Status alone.
type Envelope struct {
	Status    Status          `json:"status,omitempty"`
	Message   string          `json:"message,omitempty"`
	Detail    json.RawMessage `json:"detail,omitempty"`
	Error     string          `json:"error,omitempty"`
	ErrorCode string          `json:"error_code,omitempty"`
}

// OK reports whether the payload is a (possibly partial) success.
func (e Envelope) OK() bool {
	return e.Status == StatusSuccess || e.Status == StatusPartialSuccess
}

// DetailText returns detail as plain text. FastAPI sends a string for most
// failures and a list of field errors for validation failures.
func (e Envelope) DetailText() string {
	if len(e.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(e.Detail, &s); err == nil {
		return s
	}
	return string(e.Detail)
}

// Date is an ISO calendar date (YYYY-MM-DD) as exchanged with the backend.
type Date string

const dateLayout = "2006-01-02"

// NewDate formats t as a Date.
func NewDate(t time.Time) Date { return Date(t.Format(dateLayout)) }

// Time parses the date. Backend timestamps with a time part are truncated to
// the date.
func (d Date) Time() (time.Time, error) {
	s := string(d)
	if i := strings.IndexAny(s, "T "); i > 0 {
		s = s[:i]
	}
	return time.Parse(dateLayout, s)
}

func (d Date) String() string { return string(d) }
