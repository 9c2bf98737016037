package rawapi

import (
	"context"

	"github.com/Jinansh2608/ledger-backend/client/internal/api"
	"github.com/Jinansh2608/ledger-backend/client/internal/types"
)

// UploadPO uploads one spreadsheet for vendor. A zero projectID is not sent.
func UploadPO(ctx context.Context, hc HTTPClient, baseURL string, vendor types.Vendor, file types.UploadFile, clientID, projectID int64) (*types.POParseResponse, error) {
	return api.UploadPO(ctx, caller(hc, baseURL), vendor, file, clientID, projectID)
}

// BulkUploadPO uploads several spreadsheets for vendor in one request.
func BulkUploadPO(ctx context.Context, hc HTTPClient, baseURL string, vendor types.Vendor, files []types.UploadFile, clientID, projectID int64) (*types.BulkUploadResponse, error) {
	return api.BulkUploadPO(ctx, caller(hc, baseURL), vendor, files, clientID, projectID)
}

// UploadBajajPO uploads a Bajaj PO spreadsheet.
func UploadBajajPO(ctx context.Context, hc HTTPClient, baseURL string, file types.UploadFile, clientID, projectID int64) (*types.POParseResponse, error) {
	return UploadPO(ctx, hc, baseURL, types.VendorBajaj, file, clientID, projectID)
}

// BulkUploadBajajPO uploads several Bajaj PO spreadsheets.
func BulkUploadBajajPO(ctx context.Context, hc HTTPClient, baseURL string, files []types.UploadFile, clientID, projectID int64) (*types.BulkUploadResponse, error) {
	return BulkUploadPO(ctx, hc, baseURL, types.VendorBajaj, files, clientID, projectID)
}

// UploadDavaIndiaPO uploads a Dava India PO spreadsheet.
func UploadDavaIndiaPO(ctx context.Context, hc HTTPClient, baseURL string, file types.UploadFile, clientID, projectID int64) (*types.POParseResponse, error) {
	return UploadPO(ctx, hc, baseURL, types.VendorDavaIndia, file, clientID, projectID)
}

// BulkUploadDavaIndiaPO uploads several Dava India PO spreadsheets.
func BulkUploadDavaIndiaPO(ctx context.Context, hc HTTPClient, baseURL string, files []types.UploadFile, clientID, projectID int64) (*types.BulkUploadResponse, error) {
	return BulkUploadPO(ctx, hc, baseURL, types.VendorDavaIndia, files, clientID, projectID)
}
