// Package rawapi exposes the PO backend as free functions, one per endpoint.
//
// Every function performs a single request and returns the decoded JSON body
// without looking at the HTTP status; inspect the embedded Envelope (Status,
// Detail) to tell success from failure. Only transport and decode failures
// are returned as errors. Use client.Client for calls that fail on non-2xx.
package rawapi

import (
	"github.com/Jinansh2608/ledger-backend/client/internal/api"
)

// HTTPClient is satisfied by *http.Client.
type HTTPClient = api.HTTPClient

func caller(hc HTTPClient, baseURL string) *api.Caller { return api.NewCaller(hc, baseURL) }
