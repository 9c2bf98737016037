package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
)

type captured struct {
	method string
	path   string
	query  string
	header http.Header
	body   []byte
}

// captureServer answers every request with status and body and records what
// it saw.
func captureServer(t *testing.T, status int, body string) (*httptest.Server, *[]captured) {
	t.Helper()
	var (
		mu   sync.Mutex
		seen []captured
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		seen = append(seen, captured{r.Method, r.URL.Path, r.URL.RawQuery, r.Header.Clone(), b})
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func mustNew(t *testing.T, baseURL string, opts ...Option) *Client {
	t.Helper()
	c, err := New(baseURL, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNew_DefaultBaseURL(t *testing.T) {
	c := mustNew(t, "")
	if c.BaseURL() != DefaultBaseURL {
		t.Fatalf("base url = %q, want %q", c.BaseURL(), DefaultBaseURL)
	}
	c = mustNew(t, "http://api.example.com/")
	if c.BaseURL() != "http://api.example.com" {
		t.Fatalf("trailing slash kept: %q", c.BaseURL())
	}
}

func TestNew_OptionErrorAborts(t *testing.T) {
	if _, err := New("", WithHTTPTimeout(0)); err == nil {
		t.Fatal("expected error for zero timeout")
	}
	if _, err := New("", WithRetry(-1)); err == nil {
		t.Fatal("expected error for negative retry count")
	}
	if _, err := New("", WithHTTPClient(nil)); err == nil {
		t.Fatal("expected error for nil http client")
	}
}

func TestSetAuthToken(t *testing.T) {
	srv, seen := captureServer(t, 200, `{"status":"SUCCESS","data":[]}`)
	c := mustNew(t, srv.URL)
	ctx := context.Background()

	c.SetAuthToken("abc")
	if _, err := c.GetAllPOs(ctx, 0); err != nil {
		t.Fatalf("GetAllPOs: %v", err)
	}
	c.SetAuthToken("")
	if _, err := c.GetAllPOs(ctx, 0); err != nil {
		t.Fatalf("GetAllPOs: %v", err)
	}

	got := *seen
	if h := got[0].header.Get("Authorization"); h != "Bearer abc" {
		t.Fatalf("first call Authorization = %q", h)
	}
	if h := got[1].header.Get("Authorization"); h != "" {
		t.Fatalf("second call Authorization = %q, want none", h)
	}
	if ct := got[0].header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q", ct)
	}
}

func TestDefaultHeadersAndRequestID(t *testing.T) {
	srv, seen := captureServer(t, 200, `{"status":"SUCCESS"}`)
	c := mustNew(t, srv.URL, WithHeader("X-Tenant", "t1"), WithAuthToken("tok"))

	if _, err := c.DeletePO(context.Background(), 7); err != nil {
		t.Fatalf("DeletePO: %v", err)
	}
	c.DeleteHeader("X-Tenant")
	if _, err := c.DeletePO(context.Background(), 8); err != nil {
		t.Fatalf("DeletePO: %v", err)
	}

	got := *seen
	if got[0].method != http.MethodDelete || got[0].path != "/api/po/7" {
		t.Fatalf("request = %s %s", got[0].method, got[0].path)
	}
	if got[0].header.Get("X-Tenant") != "t1" || got[0].header.Get("Authorization") != "Bearer tok" {
		t.Fatalf("headers = %v", got[0].header)
	}
	if got[1].header.Get("X-Tenant") != "" {
		t.Fatal("deleted header still sent")
	}
	id0, id1 := got[0].header.Get("X-Request-ID"), got[1].header.Get("X-Request-ID")
	if id0 == "" || id1 == "" || id0 == id1 {
		t.Fatalf("request ids = %q, %q", id0, id1)
	}
}

func TestErrorMessagePrecedence(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"detail", 404, `{"detail":"Client PO not found","message":"ignored"}`, "Client PO not found"},
		{"message", 400, `{"status":"ERROR","error_code":"VALIDATION","message":"bad date"}`, "bad date"},
		{"fallback", 500, `{}`, "API Error"},
		{"non-json", 502, `<html>bad gateway</html>`, "API Error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, _ := captureServer(t, tc.status, tc.body)
			c := mustNew(t, srv.URL)

			_, err := c.GetClientPO(context.Background(), 1)
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tc.want {
				t.Fatalf("err = %q, want %q", err.Error(), tc.want)
			}
			var apiErr *APIError
			if !errors.As(err, &apiErr) || apiErr.StatusCode != tc.status {
				t.Fatalf("err = %#v", err)
			}
			if StatusCode(err) != tc.status {
				t.Fatalf("StatusCode = %d", StatusCode(err))
			}
		})
	}
}

func TestIsNotFoundAndRecoverable(t *testing.T) {
	srv, _ := captureServer(t, 404, `{"detail":"Vendor order not found"}`)
	c := mustNew(t, srv.URL)
	_, err := c.GetVendorOrderDetails(context.Background(), 3)
	if !IsNotFound(err) {
		t.Fatalf("IsNotFound(%v) = false", err)
	}
	if IsRecoverable(err) {
		t.Fatal("404 must not be recoverable")
	}

	srv2, _ := captureServer(t, 503, `{"message":"db down"}`)
	c2 := mustNew(t, srv2.URL)
	_, err = c2.GetVendorOrderDetails(context.Background(), 3)
	if IsNotFound(err) || !IsRecoverable(err) {
		t.Fatalf("503 classification wrong: %v", err)
	}
}

func TestWithRetry(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, `{"status":"SUCCESS","project_id":5,"vendor_orders":[]}`)
	}))
	defer srv.Close()

	c := mustNew(t, srv.URL, WithRetry(3))
	resp, err := c.GetProjectVendorOrders(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetProjectVendorOrders: %v", err)
	}
	if !resp.OK() || hits.Load() != 3 {
		t.Fatalf("ok=%v hits=%d", resp.OK(), hits.Load())
	}

	// Without WithRetry the first 503 is final.
	hits.Store(0)
	c2 := mustNew(t, srv.URL)
	if _, err := c2.GetProjectVendorOrders(context.Background(), 5); err == nil {
		t.Fatal("expected error without retry")
	}
	if hits.Load() != 1 {
		t.Fatalf("hits = %d, want 1", hits.Load())
	}
}

func TestLogin_InstallsToken(t *testing.T) {
	var (
		mu   sync.Mutex
		auth []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		auth = append(auth, r.Header.Get("Authorization"))
		mu.Unlock()
		switch r.URL.Path {
		case "/api/auth/login":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["username"] != "admin" || body["password"] != "pw" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, `{"detail":"Invalid credentials"}`)
				return
			}
			_, _ = io.WriteString(w, `{"access_token":"jwt-1","token_type":"bearer"}`)
		default:
			_, _ = io.WriteString(w, `{"status":"UP","database":"UP"}`)
		}
	}))
	defer srv.Close()

	c := mustNew(t, srv.URL)
	ctx := context.Background()

	if _, err := c.Login(ctx, "admin", "nope"); err == nil || err.Error() != "Invalid credentials" {
		t.Fatalf("bad login err = %v", err)
	}
	tok, err := c.Login(ctx, "admin", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tok.AccessToken != "jwt-1" {
		t.Fatalf("token = %+v", tok)
	}
	if _, err := c.Health(ctx); err != nil {
		t.Fatalf("Health: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if last := auth[len(auth)-1]; last != "Bearer jwt-1" {
		t.Fatalf("Authorization after login = %q", last)
	}
}

func TestDebugLoggingFromEnv(t *testing.T) {
	t.Setenv("PO_CLIENT_DEBUG", "true")
	srv, _ := captureServer(t, 200, `{"status":"UP"}`)
	c := mustNew(t, srv.URL)

	rid, ok := c.http.Transport.(*requestIDTransport)
	if !ok {
		t.Fatalf("outer transport = %T", c.http.Transport)
	}
	if _, ok := rid.base.(*debugTransport); !ok {
		t.Fatalf("inner transport = %T, want *debugTransport", rid.base)
	}
	if _, err := c.Health(context.Background()); err != nil {
		t.Fatalf("Health through debug transport: %v", err)
	}
}

func TestWithHTTPClient_Copies(t *testing.T) {
	hc := &http.Client{}
	c := mustNew(t, "", WithHTTPClient(hc))
	if c.http == hc {
		t.Fatal("http client was not copied")
	}
	if hc.Transport != nil {
		t.Fatal("caller's client was modified")
	}
}

func TestClose_Idempotent(t *testing.T) {
	c, err := New("", WithUploadQueue(UploadQueueConfig{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestPaymentsVendorsAndProjects(t *testing.T) {
	srv, seen := captureServer(t, 200, `{"status":"SUCCESS","vendor":{"id":2,"name":"Acme Paints","status":"active","total_orders":3,"balance":1500}}`)
	c := mustNew(t, srv.URL, WithAuthToken("tok"))
	ctx := context.Background()

	v, err := c.GetVendor(ctx, 2)
	if err != nil {
		t.Fatalf("GetVendor: %v", err)
	}
	if v.Vendor == nil || v.Vendor.Name != "Acme Paints" || v.Vendor.Balance != 1500 {
		t.Fatalf("vendor = %+v", v.Vendor)
	}
	if _, err := c.CreatePOPayment(ctx, 42, PaymentRequest{PaymentDate: "2024-05-01", Amount: 10, PaymentMode: "cash"}); err != nil {
		t.Fatalf("CreatePOPayment: %v", err)
	}
	if _, err := c.LinkPaymentToVendorOrder(ctx, 8, PaymentLinkRequest{PaymentID: 3, LinkType: LinkOutgoing}); err != nil {
		t.Fatalf("LinkPaymentToVendorOrder: %v", err)
	}
	if _, err := c.UpdateProject(ctx, 9, UpdateProjectRequest{Name: "Store 9"}); err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}

	want := []string{"GET /api/vendors/2", "POST /api/po/42/payments", "POST /api/vendor-orders/8/link-payment", "PUT /api/projects/9"}
	if len(*seen) != len(want) {
		t.Fatalf("saw %d requests, want %d", len(*seen), len(want))
	}
	for i, r := range *seen {
		if got := r.method + " " + r.path; got != want[i] {
			t.Fatalf("request %d = %s, want %s", i, got, want[i])
		}
		if r.header.Get("Authorization") != "Bearer tok" {
			t.Fatalf("request %d missing token", i)
		}
	}
}

func TestGetVendor_NotFound(t *testing.T) {
	srv, _ := captureServer(t, 404, `{"detail":"Vendor not found"}`)
	c := mustNew(t, srv.URL)
	_, err := c.GetVendor(context.Background(), 77)
	if !IsNotFound(err) || err.Error() != "Vendor not found" {
		t.Fatalf("err = %v", err)
	}
}
