package client

import (
	"net/http"
	"net/http/httputil"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// debugTransport dumps every request and response to the zerolog debug log.
//
// It is installed by WithDebugLogging(true) or automatically when
// PO_CLIENT_DEBUG=true or DEBUG=true. Dumps contain full bodies and the
// Authorization header, so keep it out of production.
//
//	export PO_CLIENT_DEBUG=true
//	pocli po list   # every HTTP exchange is now logged
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	// Multipart spreadsheets are binary; log headers only.
	dumpBody := !isMultipart(req.Header.Get("Content-Type"))
	if reqDump, err := httputil.DumpRequestOut(req, dumpBody); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

func isMultipart(contentType string) bool {
	return strings.HasPrefix(contentType, "multipart/")
}

// debugLoggingRequested reports whether PO_CLIENT_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("PO_CLIENT_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
