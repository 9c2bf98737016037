package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Jinansh2608/ledger-backend/client/internal/types"
)

func vendorProfilePath(vendorID int64) string {
	return "/api/vendors/" + id(vendorID)
}

// CreateVendor registers a vendor; the backend marks it active.
func CreateVendor(ctx context.Context, c *Caller, req types.VendorRequest) (*types.VendorResponse, error) {
	return call[types.VendorResponse](ctx, c, request{
		op:     "create_vendor",
		method: http.MethodPost,
		path:   "/api/vendors",
		body:   req,
	})
}

// GetVendors lists vendors by name; a non-empty status filters them.
func GetVendors(ctx context.Context, c *Caller, status string) (*types.VendorsResponse, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	return call[types.VendorsResponse](ctx, c, request{
		op:     "get_vendors",
		method: http.MethodGet,
		path:   "/api/vendors",
		query:  q,
	})
}

// GetVendor returns a vendor with its order and payment totals.
func GetVendor(ctx context.Context, c *Caller, vendorID int64) (*types.VendorResponse, error) {
	return call[types.VendorResponse](ctx, c, request{
		op:     "get_vendor",
		method: http.MethodGet,
		path:   vendorProfilePath(vendorID),
	})
}

func UpdateVendor(ctx context.Context, c *Caller, vendorID int64, req types.VendorUpdateRequest) (*types.VendorResponse, error) {
	return call[types.VendorResponse](ctx, c, request{
		op:     "update_vendor",
		method: http.MethodPut,
		path:   vendorProfilePath(vendorID),
		body:   req,
	})
}

func DeleteVendor(ctx context.Context, c *Caller, vendorID int64) (*types.MessageResponse, error) {
	return call[types.MessageResponse](ctx, c, request{
		op:     "delete_vendor",
		method: http.MethodDelete,
		path:   vendorProfilePath(vendorID),
	})
}

// GetVendorPayments lists every payment made to a vendor across its orders.
func GetVendorPayments(ctx context.Context, c *Caller, vendorID int64) (*types.VendorPaymentHistoryResponse, error) {
	return call[types.VendorPaymentHistoryResponse](ctx, c, request{
		op:     "get_vendor_payments",
		method: http.MethodGet,
		path:   vendorProfilePath(vendorID) + "/payments",
	})
}

// GetVendorPaymentSummary returns what is still payable to a vendor.
func GetVendorPaymentSummary(ctx context.Context, c *Caller, vendorID int64) (*types.VendorPayablesResponse, error) {
	return call[types.VendorPayablesResponse](ctx, c, request{
		op:     "get_vendor_payment_summary",
		method: http.MethodGet,
		path:   vendorProfilePath(vendorID) + "/payment-summary",
	})
}
