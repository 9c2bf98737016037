package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Jinansh2608/ledger-backend/client/internal/types"
)

type parsedUpload struct {
	path        string
	contentType string
	auth        string
	extra       string
	files       []string
	fields      map[string][]string
}

func uploadServer(t *testing.T, status int, body string) (*httptest.Server, *parsedUpload) {
	t.Helper()
	got := &parsedUpload{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.path = r.URL.Path
		got.contentType = r.Header.Get("Content-Type")
		got.auth = r.Header.Get("Authorization")
		got.extra = r.Header.Get("X-Tenant")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		} else {
			got.fields = r.MultipartForm.Value
			for _, fhs := range r.MultipartForm.File {
				for _, fh := range fhs {
					got.files = append(got.files, fh.Filename)
				}
			}
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func sheet(name string) types.UploadFile {
	return types.UploadFile{Name: name, Content: strings.NewReader("PK fake xlsx")}
}

func TestUploadPO_Fields(t *testing.T) {
	t.Parallel()
	srv, got := uploadServer(t, http.StatusOK, `{"status":"SUCCESS","client_po_id":12,"line_item_count":3}`)
	resp, err := UploadPO(context.Background(), NewCaller(srv.Client(), srv.URL), types.VendorBajaj, sheet("po.xlsx"), 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if resp.ClientPOID != 12 || resp.LineItemCount != 3 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if got.path != "/api/bajaj-po" {
		t.Fatalf("path = %s", got.path)
	}
	if !strings.HasPrefix(got.contentType, "multipart/form-data; boundary=") {
		t.Fatalf("Content-Type = %q", got.contentType)
	}
	if got.fields["client_id"][0] != "1" {
		t.Fatalf("client_id = %v", got.fields["client_id"])
	}
	if _, ok := got.fields["project_id"]; ok {
		t.Fatal("project_id must be omitted when unset")
	}
	if len(got.files) != 1 || got.files[0] != "po.xlsx" {
		t.Fatalf("files = %v", got.files)
	}
}

func TestBulkUploadPO_AllFilesAndProject(t *testing.T) {
	t.Parallel()
	srv, got := uploadServer(t, http.StatusOK, `{"status":"SUCCESS","total_files":2,"successful":2}`)
	resp, err := BulkUploadPO(context.Background(), NewCaller(srv.Client(), srv.URL), types.VendorDavaIndia,
		[]types.UploadFile{sheet("a.xlsx"), sheet("b.xlsx")}, 2, 17)
	if err != nil {
		t.Fatal(err)
	}
	if resp.TotalFiles != 2 || got.path != "/api/dava-india-po/bulk" {
		t.Fatalf("resp=%+v path=%s", resp, got.path)
	}
	if len(got.files) != 2 || got.fields["project_id"][0] != "17" || got.fields["client_id"][0] != "2" {
		t.Fatalf("files=%v fields=%v", got.files, got.fields)
	}
}

func TestBulkUploadPO_NoFilesStillSent(t *testing.T) {
	t.Parallel()
	srv, got := uploadServer(t, http.StatusBadRequest, `{"status":"FAILED","detail":"No files provided"}`)
	resp, err := BulkUploadPO(context.Background(), NewCaller(srv.Client(), srv.URL), types.VendorBajaj, nil, 1, 0)
	if err != nil {
		t.Fatalf("lenient bulk upload: %v", err)
	}
	if got.path != "/api/bajaj-po/bulk" || len(got.files) != 0 || got.fields["client_id"][0] != "1" {
		t.Fatalf("path=%q files=%v fields=%v", got.path, got.files, got.fields)
	}
	if resp.DetailText() != "No files provided" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestUpload_OnlyAuthorizationHeader(t *testing.T) {
	t.Parallel()
	srv, got := uploadServer(t, http.StatusOK, `{"status":"SUCCESS"}`)
	c := strictCaller(srv)
	c.Header = func() http.Header {
		return http.Header{
			"Authorization": {"Bearer tok"},
			"Content-Type":  {"application/json"},
			"X-Tenant":      {"acme"},
		}
	}
	if _, err := UploadPO(context.Background(), c, types.VendorBajaj, sheet("po.xlsx"), 1, 0); err != nil {
		t.Fatal(err)
	}
	if got.auth != "Bearer tok" || got.extra != "" {
		t.Fatalf("auth=%q extra=%q", got.auth, got.extra)
	}
	if strings.Contains(got.contentType, "application/json") {
		t.Fatalf("upload sent JSON content type: %q", got.contentType)
	}
}

func TestUpload_StrictFallbacks(t *testing.T) {
	t.Parallel()
	srv, _ := uploadServer(t, http.StatusInternalServerError, `{"message":"boom"}`)
	c := strictCaller(srv)
	if _, err := UploadPO(context.Background(), c, types.VendorBajaj, sheet("po.xlsx"), 1, 0); err == nil || err.Error() != "Upload failed" {
		t.Fatalf("err = %v, want Upload failed", err)
	}
	if _, err := BulkUploadPO(context.Background(), c, types.VendorBajaj, []types.UploadFile{sheet("po.xlsx")}, 1, 0); err == nil || err.Error() != "Bulk upload failed" {
		t.Fatalf("err = %v, want Bulk upload failed", err)
	}

	srv2, _ := uploadServer(t, http.StatusBadRequest, `{"detail":"Only .xlsx files are supported"}`)
	if _, err := UploadPO(context.Background(), strictCaller(srv2), types.VendorBajaj, sheet("po.csv"), 1, 0); err == nil || err.Error() != "Only .xlsx files are supported" {
		t.Fatalf("err = %v", err)
	}
}
