package rawapi

import (
	"context"

	"github.com/Jinansh2608/ledger-backend/client/internal/api"
	"github.com/Jinansh2608/ledger-backend/client/internal/types"
)

// ------------------------------
// Client payments
// ------------------------------

func CreatePOPayment(ctx context.Context, hc HTTPClient, baseURL string, clientPOID int64, req types.PaymentRequest) (*types.CreatePaymentResponse, error) {
	return api.CreatePOPayment(ctx, caller(hc, baseURL), clientPOID, req)
}

func GetPOPayments(ctx context.Context, hc HTTPClient, baseURL string, clientPOID int64) (*types.POPaymentsResponse, error) {
	return api.GetPOPayments(ctx, caller(hc, baseURL), clientPOID)
}

// GetAllPayments pages through every payment; zero skip and limit leave the
// backend defaults.
func GetAllPayments(ctx context.Context, hc HTTPClient, baseURL string, skip, limit int) (*types.PaymentsPageResponse, error) {
	return api.GetAllPayments(ctx, caller(hc, baseURL), skip, limit)
}

func UpdatePayment(ctx context.Context, hc HTTPClient, baseURL string, paymentID int64, req types.PaymentUpdateRequest) (*types.MessageResponse, error) {
	return api.UpdatePayment(ctx, caller(hc, baseURL), paymentID, req)
}

func DeletePayment(ctx context.Context, hc HTTPClient, baseURL string, paymentID int64) (*types.MessageResponse, error) {
	return api.DeletePayment(ctx, caller(hc, baseURL), paymentID)
}

// ------------------------------
// Vendor order payments and links
// ------------------------------

func CreateVendorOrderPayment(ctx context.Context, hc HTTPClient, baseURL string, vendorOrderID int64, req types.VendorPaymentRequest) (*types.VendorPaymentResponse, error) {
	return api.CreateVendorOrderPayment(ctx, caller(hc, baseURL), vendorOrderID, req)
}

func GetVendorOrderPayments(ctx context.Context, hc HTTPClient, baseURL string, vendorOrderID int64) (*types.VendorOrderPaymentsResponse, error) {
	return api.GetVendorOrderPayments(ctx, caller(hc, baseURL), vendorOrderID)
}

func UpdateVendorPayment(ctx context.Context, hc HTTPClient, baseURL string, paymentID int64, req types.VendorPaymentUpdateRequest) (*types.VendorPaymentResponse, error) {
	return api.UpdateVendorPayment(ctx, caller(hc, baseURL), paymentID, req)
}

func DeleteVendorPayment(ctx context.Context, hc HTTPClient, baseURL string, paymentID int64) (*types.MessageResponse, error) {
	return api.DeleteVendorPayment(ctx, caller(hc, baseURL), paymentID)
}

func LinkPaymentToVendorOrder(ctx context.Context, hc HTTPClient, baseURL string, vendorOrderID int64, req types.PaymentLinkRequest) (*types.PaymentLinkResponse, error) {
	return api.LinkPaymentToVendorOrder(ctx, caller(hc, baseURL), vendorOrderID, req)
}

func GetVendorOrderLinkedPayments(ctx context.Context, hc HTTPClient, baseURL string, vendorOrderID int64) (*types.LinkedPaymentsResponse, error) {
	return api.GetVendorOrderLinkedPayments(ctx, caller(hc, baseURL), vendorOrderID)
}

func UnlinkVendorOrderPayment(ctx context.Context, hc HTTPClient, baseURL string, vendorOrderID, paymentID int64) (*types.MessageResponse, error) {
	return api.UnlinkVendorOrderPayment(ctx, caller(hc, baseURL), vendorOrderID, paymentID)
}
