// Package client is the Go SDK for the purchase-order management API.
//
// A Client fails every call whose response is not 2xx with an *APIError
// carrying the server's message. The rawapi sub-package offers the same
// endpoints without status checking.
package client

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/Jinansh2608/ledger-backend/client/internal/api"
)

// DefaultBaseURL is used when New is given an empty base URL.
const DefaultBaseURL = "http://localhost:8000"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL string
	http    *http.Client
	caller  *api.Caller

	mu      sync.RWMutex
	headers http.Header // defaults merged under every JSON request

	retries int           // extra attempts for GET/PUT/DELETE; 0 disables
	uploads uploadExecutor // nil unless WithUploadQueue

	closed atomic.Bool
}

// New constructs a Client for baseURL. Options are applied in order; the
// first failing option aborts construction.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		headers: http.Header{"Content-Type": {"application/json"}},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.wrapTransportWithRequestID()
	c.caller = &api.Caller{
		HTTP:    c.http,
		BaseURL: c.baseURL,
		Strict:  true,
		Header:  c.defaultHeaders,
		Retry:   c.retryPolicy(),
	}
	return c, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// SetAuthToken makes every subsequent call send Authorization: Bearer token.
// An empty token removes the header.
func (c *Client) SetAuthToken(token string) {
	if token == "" {
		c.DeleteHeader("Authorization")
		return
	}
	c.SetHeader("Authorization", "Bearer "+token)
}

// SetHeader sets a default header sent with every JSON request. Uploads only
// ever carry Authorization.
func (c *Client) SetHeader(key, value string) {
	c.mu.Lock()
	c.headers.Set(key, value)
	c.mu.Unlock()
}

// DeleteHeader removes a default header.
func (c *Client) DeleteHeader(key string) {
	c.mu.Lock()
	c.headers.Del(key)
	c.mu.Unlock()
}

// defaultHeaders returns a copy so requests never share the live map.
func (c *Client) defaultHeaders() http.Header {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.headers.Clone()
}

// wrapTransportWithRequestID tags every outgoing request with X-Request-ID
// so server logs can be correlated with client logs.
func (c *Client) wrapTransportWithRequestID() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &requestIDTransport{base: base}
}

type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("X-Request-ID") != "" {
		return t.base.RoundTrip(req)
	}
	cloned := req.Clone(req.Context())
	cloned.Header.Set("X-Request-ID", uuid.NewString())
	return t.base.RoundTrip(cloned)
}

// Close drains and stops the upload queue (if any). Safe to call multiple times.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	if c.uploads != nil {
		c.uploads.Stop()
	}
	return nil
}

// Health reports API and database liveness.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	return api.Health(ctx, c.caller)
}

// Login exchanges credentials for a token and installs it with SetAuthToken.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	resp, err := api.Login(ctx, c.caller, username, password)
	if err != nil {
		return nil, err
	}
	if resp.AccessToken != "" {
		c.SetAuthToken(resp.AccessToken)
	}
	return resp, nil
}
