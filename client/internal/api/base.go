package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	poerrors "github.com/Jinansh2608/ledger-backend/client/internal/errors"
)

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Caller carries everything an endpoint function needs for one round trip.
//
// A lenient Caller (Strict == false) returns the decoded body whatever the
// status code. A strict Caller turns non-2xx responses into *errors.APIError
// and may retry idempotent calls.
type Caller struct {
	HTTP    HTTPClient
	BaseURL string
	Strict  bool

	// Header returns the default headers for a request. Nil means none.
	Header func() http.Header

	// Retry returns a fresh backoff policy for GET, PUT and DELETE calls.
	// Only consulted by strict callers; nil disables retries.
	Retry func() backoff.BackOff
}

// NewCaller returns a lenient Caller for baseURL.
func NewCaller(hc HTTPClient, baseURL string) *Caller {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Caller{HTTP: hc, BaseURL: strings.TrimRight(baseURL, "/")}
}

// request describes one call. Exactly one of body and form may be set.
type request struct {
	op       string
	method   string
	path     string
	query    url.Values
	body     any
	form     *multipartForm
	fallback string // upload error fallback; empty for JSON calls
}

func (c *Caller) do(ctx context.Context, r request, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var (
		payload     []byte
		contentType string
		err         error
	)
	switch {
	case r.form != nil:
		payload, contentType, err = r.form.encode()
	case r.body != nil:
		payload, err = json.Marshal(r.body)
		contentType = "application/json"
	}
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", r.op, err)
	}

	if !c.Strict || c.Retry == nil || !idempotent(r.method) {
		return c.once(ctx, r, payload, contentType, out)
	}

	operation := func() error {
		err := c.once(ctx, r, payload, contentType, out)
		if err != nil && !poerrors.IsRecoverable(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	return backoff.Retry(operation, backoff.WithContext(c.Retry(), ctx))
}

func (c *Caller) once(ctx context.Context, r request, payload []byte, contentType string, out any) error {
	target := c.BaseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return fmt.Errorf("%s: %w", r.op, err)
	}
	c.applyHeaders(httpReq, r.form != nil)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		observe(r.op, "error", time.Since(start))
		if c.Strict {
			return poerrors.NewNetworkError(r.op, err)
		}
		return fmt.Errorf("%s: %w", r.op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	observe(r.op, statusClass(resp.StatusCode), time.Since(start))
	if err != nil {
		if c.Strict {
			return poerrors.NewNetworkError(r.op, err)
		}
		return fmt.Errorf("%s: read response: %w", r.op, err)
	}

	if c.Strict && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		if r.form != nil {
			return poerrors.FromUploadResponse(resp.StatusCode, raw, r.fallback)
		}
		return poerrors.FromResponse(resp.StatusCode, raw, poerrors.FallbackAPI)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decode response (status %d): %w", r.op, resp.StatusCode, err)
	}
	return nil
}

// applyHeaders copies the default headers onto req. Uploads carry only
// Authorization so the multipart boundary header is never overridden.
func (c *Caller) applyHeaders(req *http.Request, upload bool) {
	if c.Header == nil {
		return
	}
	defaults := c.Header()
	if upload {
		if auth := defaults.Get("Authorization"); auth != "" {
			req.Header.Set("Authorization", auth)
		}
		return
	}
	for k, vs := range defaults {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
}

func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}

func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}

// id renders a numeric path segment.
func id(v int64) string { return strconv.FormatInt(v, 10) }

// setIfNonZero adds key to q unless v is zero, the "unset" value for
// optional numeric query parameters.
func setIfNonZero(q url.Values, key string, v int64) {
	if v != 0 {
		q.Set(key, id(v))
	}
}

// call issues r and decodes the body into a fresh T.
func call[T any](ctx context.Context, c *Caller, r request) (*T, error) {
	var out T
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
