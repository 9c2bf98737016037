package client

// This file defines functional options that configure the Client during
// construction.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/Jinansh2608/ledger-backend/client/internal/uploadqueue"
)

// Option configures a Client during construction in New.
//
// Options run before the request-ID transport is installed, so transport
// options (like debug logging) sit underneath it.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse bound on a single round trip. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client. The client is copied;
// later changes to hc do not affect the Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithDebugLogging wraps the transport so each request/response is dumped
// to the debug log when enabled is true. Dumps include the bearer token.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			if _, already := c.http.Transport.(*debugTransport); !already {
				c.http.Transport = &debugTransport{base: c.http.Transport}
			}
		}
		return nil
	}
}

// WithAuthToken is SetAuthToken at construction time.
func WithAuthToken(token string) Option {
	return func(c *Client) error {
		c.SetAuthToken(token)
		return nil
	}
}

// WithHeader adds a default header at construction time.
func WithHeader(key, value string) Option {
	return func(c *Client) error {
		if key == "" {
			return fmt.Errorf("header name must not be empty")
		}
		c.SetHeader(key, value)
		return nil
	}
}

// WithRetry retries GET, PUT and DELETE calls up to n more times on
// recoverable failures (network errors, 408, 429, 5xx) with exponential
// backoff. POST calls and uploads are never retried.
func WithRetry(n int) Option {
	return func(c *Client) error {
		if n < 0 {
			return fmt.Errorf("retry count must be >= 0")
		}
		c.retries = n
		return nil
	}
}

// WithUploadQueue enables SubmitUpload and AwaitUploads, backed by a
// background queue configured by cfg (zero fields take defaults).
func WithUploadQueue(cfg UploadQueueConfig) Option {
	return func(c *Client) error {
		if c.uploads != nil {
			c.uploads.Stop()
		}
		c.uploads = uploadqueue.New(cfg)
		return nil
	}
}

// LoadUploadQueueConfig reads the upload queue tunables from PO_UPLOAD_*
// environment variables.
func LoadUploadQueueConfig() (UploadQueueConfig, error) {
	return uploadqueue.LoadConfig()
}

func (c *Client) retryPolicy() func() backoff.BackOff {
	if c.retries == 0 {
		return nil
	}
	n := uint64(c.retries)
	return func() backoff.BackOff {
		exp := backoff.NewExponentialBackOff()
		exp.InitialInterval = 100 * time.Millisecond
		exp.MaxInterval = 2 * time.Second
		return backoff.WithMaxRetries(exp, n)
	}
}
