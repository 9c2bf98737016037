package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestUploadPO_NoJSONContentType(t *testing.T) {
	var (
		ct, auth, tenant string
		path             string
		filename         string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ct = r.Header.Get("Content-Type")
		auth = r.Header.Get("Authorization")
		tenant = r.Header.Get("X-Tenant")
		path = r.URL.Path
		if f, fh, err := r.FormFile("file"); err == nil {
			filename = fh.Filename
			_ = f.Close()
		}
		_, _ = io.WriteString(w, `{"status":"SUCCESS","client_po_id":11,"line_items_count":2}`)
	}))
	defer srv.Close()

	c := mustNew(t, srv.URL, WithAuthToken("tok"), WithHeader("X-Tenant", "t1"))
	resp, err := c.UploadDavaIndiaPO(context.Background(), UploadFile{Name: "po.xlsx", Content: strings.NewReader("xlsx")}, 1, 0)
	if err != nil {
		t.Fatalf("UploadDavaIndiaPO: %v", err)
	}
	if resp.ClientPOID != 11 {
		t.Fatalf("resp = %+v", resp)
	}
	if path != "/api/dava-india-po" || filename != "po.xlsx" {
		t.Fatalf("path=%q filename=%q", path, filename)
	}
	if !strings.HasPrefix(ct, "multipart/form-data") {
		t.Fatalf("Content-Type = %q", ct)
	}
	if auth != "Bearer tok" || tenant != "" {
		t.Fatalf("auth=%q tenant=%q", auth, tenant)
	}
}

func TestUpload_FallbackMessages(t *testing.T) {
	srv, _ := captureServer(t, 500, `{"message":"not used for uploads"}`)
	c := mustNew(t, srv.URL)
	ctx := context.Background()
	file := func() UploadFile { return UploadFile{Name: "a.xlsx", Content: strings.NewReader("x")} }

	if _, err := c.UploadBajajPO(ctx, file(), 1, 0); err == nil || err.Error() != "Upload failed" {
		t.Fatalf("single err = %v", err)
	}
	if _, err := c.BulkUploadBajajPO(ctx, []UploadFile{file(), file()}, 1, 0); err == nil || err.Error() != "Bulk upload failed" {
		t.Fatalf("bulk err = %v", err)
	}

	srv2, _ := captureServer(t, 400, `{"detail":"Only .xlsx files are allowed"}`)
	c2 := mustNew(t, srv2.URL)
	if _, err := c2.UploadBajajPO(ctx, file(), 1, 0); err == nil || err.Error() != "Only .xlsx files are allowed" {
		t.Fatalf("detail err = %v", err)
	}
}

func TestSubmitUpload_Disabled(t *testing.T) {
	c := mustNew(t, "")
	err := c.SubmitUpload(context.Background(), VendorBajaj, UploadFile{Name: "a", Content: strings.NewReader("x")}, 1, 1, nil)
	if !errors.Is(err, ErrUploadQueueDisabled) {
		t.Fatalf("err = %v", err)
	}
	if err := c.AwaitUploads(context.Background(), 1); !errors.Is(err, ErrUploadQueueDisabled) {
		t.Fatalf("await err = %v", err)
	}
}

func TestSubmitUpload_OrderedPerProject(t *testing.T) {
	var (
		mu    sync.Mutex
		order []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, fh, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		mu.Lock()
		order = append(order, fh.Filename+"@"+r.FormValue("project_id"))
		mu.Unlock()
		_, _ = io.WriteString(w, `{"status":"SUCCESS","client_po_id":1}`)
	}))
	defer srv.Close()

	c := mustNew(t, srv.URL, WithUploadQueue(UploadQueueConfig{Shards: 2}))
	ctx := context.Background()

	var results []UploadResult
	var rmu sync.Mutex
	done := func(r UploadResult) {
		rmu.Lock()
		results = append(results, r)
		rmu.Unlock()
	}
	for _, name := range []string{"1.xlsx", "2.xlsx", "3.xlsx"} {
		if err := c.SubmitUpload(ctx, VendorBajaj, UploadFile{Name: name, Content: strings.NewReader(name)}, 4, 9, done); err != nil {
			t.Fatalf("SubmitUpload(%s): %v", name, err)
		}
	}
	if err := c.AwaitUploads(ctx, 9); err != nil {
		t.Fatalf("AwaitUploads: %v", err)
	}

	mu.Lock()
	got := strings.Join(order, ",")
	mu.Unlock()
	if got != "1.xlsx@9,2.xlsx@9,3.xlsx@9" {
		t.Fatalf("order = %s", got)
	}
	rmu.Lock()
	defer rmu.Unlock()
	if len(results) != 3 {
		t.Fatalf("callbacks = %d, want 3", len(results))
	}
	for _, r := range results {
		if r.Err != nil || r.Response == nil || r.Response.ClientPOID != 1 || r.ProjectID != 9 {
			t.Fatalf("result = %+v", r)
		}
	}
}

func TestSubmitUpload_RetriesThenReports(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Every attempt must carry the full file.
		if _, fh, err := r.FormFile("file"); err != nil || fh.Size != 4 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, `{"status":"SUCCESS","client_po_id":2}`)
	}))
	defer srv.Close()

	c := mustNew(t, srv.URL, WithUploadQueue(UploadQueueConfig{BaseBackoff: time.Millisecond, MaxAttempts: 3}))
	got := make(chan UploadResult, 1)
	err := c.SubmitUpload(context.Background(), VendorDavaIndia, UploadFile{Name: "d.xlsx", Content: strings.NewReader("data")}, 1, 0, func(r UploadResult) { got <- r })
	if err != nil {
		t.Fatalf("SubmitUpload: %v", err)
	}

	select {
	case r := <-got:
		if r.Err != nil || r.Response.ClientPOID != 2 {
			t.Fatalf("result = %+v", r)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("callback never ran")
	}
	if hits.Load() != 2 {
		t.Fatalf("attempts = %d, want 2", hits.Load())
	}
}

func TestSubmitUpload_IrrecoverableFailsOnce(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"detail":"Unsupported sheet"}`)
	}))
	defer srv.Close()

	c := mustNew(t, srv.URL, WithUploadQueue(UploadQueueConfig{BaseBackoff: time.Millisecond}))
	got := make(chan UploadResult, 1)
	if err := c.SubmitUpload(context.Background(), VendorBajaj, UploadFile{Name: "b.xlsx", Content: strings.NewReader("x")}, 1, 3, func(r UploadResult) { got <- r }); err != nil {
		t.Fatalf("SubmitUpload: %v", err)
	}
	if err := c.AwaitUploads(context.Background(), 3); err != nil {
		t.Fatalf("AwaitUploads: %v", err)
	}
	r := <-got
	if r.Err == nil || r.Err.Error() != "Unsupported sheet" || r.Response != nil {
		t.Fatalf("result = %+v", r)
	}
	if hits.Load() != 1 {
		t.Fatalf("attempts = %d, want 1", hits.Load())
	}
}

func TestSubmitUpload_AfterClose(t *testing.T) {
	c, err := New("", WithUploadQueue(UploadQueueConfig{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_ = c.Close()
	err = c.SubmitUpload(context.Background(), VendorBajaj, UploadFile{Name: "a", Content: strings.NewReader("x")}, 1, 1, nil)
	if !errors.Is(err, ErrClosed) {
		t.Fatalf("err = %v, want ErrClosed", err)
	}
}

func TestSubmitUpload_NilContent(t *testing.T) {
	c := mustNew(t, "", WithUploadQueue(UploadQueueConfig{}))
	if err := c.SubmitUpload(context.Background(), VendorBajaj, UploadFile{Name: "a"}, 1, 1, nil); err == nil {
		t.Fatal("expected error for nil content")
	}
}

func TestSubmitUpload_SurvivesCanceledRequestContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
			return
		}
		_, _ = io.WriteString(w, `{"status":"SUCCESS","client_po_id":5}`)
	}))
	defer srv.Close()

	c := mustNew(t, srv.URL, WithUploadQueue(UploadQueueConfig{}))
	ctx, cancel := context.WithCancel(context.Background())
	got := make(chan UploadResult, 1)
	if err := c.SubmitUpload(ctx, VendorBajaj, UploadFile{Name: "late.xlsx", Content: strings.NewReader("x")}, 1, 4, func(r UploadResult) { got <- r }); err != nil {
		t.Fatalf("SubmitUpload: %v", err)
	}
	cancel()
	time.Sleep(20 * time.Millisecond)
	close(release)

	if err := c.AwaitUploads(context.Background(), 4); err != nil {
		t.Fatalf("AwaitUploads: %v", err)
	}
	r := <-got
	if r.Err != nil || r.Response == nil || r.Response.ClientPOID != 5 {
		t.Fatalf("result = %+v", r)
	}
}

func TestBulkUploadPO_EmptyFileList(t *testing.T) {
	srv, hits := captureServer(t, 200, `{"status":"SUCCESS"}`)
	c := mustNew(t, srv.URL)
	if _, err := c.BulkUploadBajajPO(context.Background(), nil, 1, 0); !errors.Is(err, ErrNoFiles) {
		t.Fatalf("err = %v, want ErrNoFiles", err)
	}
	if n := len(*hits); n != 0 {
		t.Fatalf("server saw %d requests", n)
	}
}
