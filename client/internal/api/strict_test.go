package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"

	poerrors "github.com/Jinansh2608/ledger-backend/client/internal/errors"
	"github.com/Jinansh2608/ledger-backend/client/internal/types"
)

func strictCaller(srv *httptest.Server) *Caller {
	c := NewCaller(srv.Client(), srv.URL)
	c.Strict = true
	return c
}

func TestStrictCaller_ErrorMessage(t *testing.T) {
	t.Parallel()
	cases := []struct {
		body string
		want string
	}{
		{`{"detail":"PO not found"}`, "PO not found"},
		{`{"status":"ERROR","message":"Database unavailable"}`, "Database unavailable"},
		{`{}`, "API Error"},
	}
	for _, tc := range cases {
		srv, _ := recordServer(t, http.StatusBadRequest, tc.body)
		_, err := GetClientPO(context.Background(), strictCaller(srv), 1)
		if err == nil || err.Error() != tc.want {
			t.Fatalf("body %s: err = %v, want %q", tc.body, err, tc.want)
		}
		if poerrors.StatusCode(err) != http.StatusBadRequest {
			t.Fatalf("status not carried: %v", err)
		}
	}
}

func TestStrictCaller_NetworkErrorIsRecoverable(t *testing.T) {
	t.Parallel()
	c := NewCaller(&http.Client{Transport: &errRT{}}, "http://example.invalid")
	c.Strict = true
	_, err := Health(context.Background(), c)
	if !poerrors.IsRecoverable(err) {
		t.Fatalf("err = %v, want recoverable", err)
	}
}

func TestStrictCaller_DefaultHeaders(t *testing.T) {
	t.Parallel()
	srv, rec := recordServer(t, http.StatusOK, `{"status":"SUCCESS"}`)
	c := strictCaller(srv)
	c.Header = func() http.Header {
		return http.Header{
			"Authorization": {"Bearer tok"},
			"Content-Type":  {"application/json"},
			"X-Tenant":      {"acme"},
		}
	}
	if _, err := GetProjectPOs(context.Background(), c, 1); err != nil {
		t.Fatal(err)
	}
	if rec.header.Get("Authorization") != "Bearer tok" || rec.header.Get("X-Tenant") != "acme" {
		t.Fatalf("default headers missing: %v", rec.header)
	}
	if got := rec.header.Values("Content-Type"); len(got) != 1 {
		t.Fatalf("Content-Type duplicated: %v", got)
	}
}

func TestStrictCaller_RetriesIdempotentCalls(t *testing.T) {
	t.Parallel()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = io.WriteString(w, `{"detail":"warming up"}`)
			return
		}
		_, _ = io.WriteString(w, `{"status":"SUCCESS","project_id":4}`)
	}))
	defer srv.Close()

	c := strictCaller(srv)
	c.Retry = func() backoff.BackOff {
		return backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Millisecond), 5)
	}
	got, err := GetProjectPOs(context.Background(), c, 4)
	if err != nil {
		t.Fatalf("expected success after retries: %v", err)
	}
	if got.ProjectID != 4 || atomic.LoadInt32(&hits) != 3 {
		t.Fatalf("project=%d hits=%d", got.ProjectID, hits)
	}
}

func TestStrictCaller_NoRetryOnIrrecoverableOrPost(t *testing.T) {
	t.Parallel()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"detail":"Vendor order not found"}`)
	}))
	defer srv.Close()

	c := strictCaller(srv)
	c.Retry = func() backoff.BackOff {
		return backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Millisecond), 5)
	}
	if _, err := GetVendorOrderDetails(context.Background(), c, 1); err == nil || err.Error() != "Vendor order not found" {
		t.Fatalf("err = %v", err)
	}
	if _, err := CreateProject(context.Background(), c, types.CreateProjectRequest{Name: "x"}); err == nil {
		t.Fatal("expected error from POST")
	}
	if n := atomic.LoadInt32(&hits); n != 2 {
		t.Fatalf("hits = %d, want 2 (no retries)", n)
	}
}
