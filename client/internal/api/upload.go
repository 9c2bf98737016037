package api

import (
	"context"
	"net/http"
	"net/url"

	poerrors "github.com/Jinansh2608/ledger-backend/client/internal/errors"
	"github.com/Jinansh2608/ledger-backend/client/internal/types"
)

// UploadPO sends one vendor spreadsheet for parsing. client_id is always
// sent; project_id only when non-zero.
func UploadPO(ctx context.Context, c *Caller, vendor types.Vendor, file types.UploadFile, clientID, projectID int64) (*types.POParseResponse, error) {
	form := &multipartForm{}
	form.addFile("file", file)
	addUploadFields(form, clientID, projectID)
	return call[types.POParseResponse](ctx, c, request{
		op:       "upload_po",
		method:   http.MethodPost,
		path:     vendorPath(vendor),
		form:     form,
		fallback: poerrors.FallbackUpload,
	})
}

// BulkUploadPO sends several vendor spreadsheets, one "files" part each. An
// empty files is sent as is and left for the backend to reject.
func BulkUploadPO(ctx context.Context, c *Caller, vendor types.Vendor, files []types.UploadFile, clientID, projectID int64) (*types.BulkUploadResponse, error) {
	form := &multipartForm{}
	for _, f := range files {
		form.addFile("files", f)
	}
	addUploadFields(form, clientID, projectID)
	return call[types.BulkUploadResponse](ctx, c, request{
		op:       "bulk_upload_po",
		method:   http.MethodPost,
		path:     vendorPath(vendor) + "/bulk",
		form:     form,
		fallback: poerrors.FallbackBulkUpload,
	})
}

func addUploadFields(form *multipartForm, clientID, projectID int64) {
	form.addField("client_id", id(clientID))
	if projectID != 0 {
		form.addField("project_id", id(projectID))
	}
}

func vendorPath(v types.Vendor) string {
	return "/api/" + url.PathEscape(string(v)) + "-po"
}
