package rawapi

import (
	"context"

	"github.com/Jinansh2608/ledger-backend/client/internal/api"
	"github.com/Jinansh2608/ledger-backend/client/internal/types"
)

func CreateVendor(ctx context.Context, hc HTTPClient, baseURL string, req types.VendorRequest) (*types.VendorResponse, error) {
	return api.CreateVendor(ctx, caller(hc, baseURL), req)
}

// GetVendors lists vendors; an empty status returns all of them.
func GetVendors(ctx context.Context, hc HTTPClient, baseURL string, status string) (*types.VendorsResponse, error) {
	return api.GetVendors(ctx, caller(hc, baseURL), status)
}

func GetVendor(ctx context.Context, hc HTTPClient, baseURL string, vendorID int64) (*types.VendorResponse, error) {
	return api.GetVendor(ctx, caller(hc, baseURL), vendorID)
}

func UpdateVendor(ctx context.Context, hc HTTPClient, baseURL string, vendorID int64, req types.VendorUpdateRequest) (*types.VendorResponse, error) {
	return api.UpdateVendor(ctx, caller(hc, baseURL), vendorID, req)
}

func DeleteVendor(ctx context.Context, hc HTTPClient, baseURL string, vendorID int64) (*types.MessageResponse, error) {
	return api.DeleteVendor(ctx, caller(hc, baseURL), vendorID)
}

func GetVendorPayments(ctx context.Context, hc HTTPClient, baseURL string, vendorID int64) (*types.VendorPaymentHistoryResponse, error) {
	return api.GetVendorPayments(ctx, caller(hc, baseURL), vendorID)
}

func GetVendorPaymentSummary(ctx context.Context, hc HTTPClient, baseURL string, vendorID int64) (*types.VendorPayablesResponse, error) {
	return api.GetVendorPaymentSummary(ctx, caller(hc, baseURL), vendorID)
}
