package client

import (
	"context"

	"github.com/Jinansh2608/ledger-backend/client/internal/api"
)

// --------------------------------------------------------------------
// Client payments
// --------------------------------------------------------------------

// CreatePOPayment records a payment received against a PO.
func (c *Client) CreatePOPayment(ctx context.Context, clientPOID int64, req PaymentRequest) (*CreatePaymentResponse, error) {
	return api.CreatePOPayment(ctx, c.caller, clientPOID, req)
}

func (c *Client) GetPOPayments(ctx context.Context, clientPOID int64) (*POPaymentsResponse, error) {
	return api.GetPOPayments(ctx, c.caller, clientPOID)
}

func (c *Client) GetAllPayments(ctx context.Context, skip, limit int) (*PaymentsPageResponse, error) {
	return api.GetAllPayments(ctx, c.caller, skip, limit)
}

func (c *Client) UpdatePayment(ctx context.Context, paymentID int64, req PaymentUpdateRequest) (*MessageResponse, error) {
	return api.UpdatePayment(ctx, c.caller, paymentID, req)
}

func (c *Client) DeletePayment(ctx context.Context, paymentID int64) (*MessageResponse, error) {
	return api.DeletePayment(ctx, c.caller, paymentID)
}

// --------------------------------------------------------------------
// Vendor order payments and links
// --------------------------------------------------------------------

// CreateVendorOrderPayment records an outgoing payment; it starts pending.
func (c *Client) CreateVendorOrderPayment(ctx context.Context, vendorOrderID int64, req VendorPaymentRequest) (*VendorPaymentResponse, error) {
	return api.CreateVendorOrderPayment(ctx, c.caller, vendorOrderID, req)
}

func (c *Client) GetVendorOrderPayments(ctx context.Context, vendorOrderID int64) (*VendorOrderPaymentsResponse, error) {
	return api.GetVendorOrderPayments(ctx, c.caller, vendorOrderID)
}

func (c *Client) UpdateVendorPayment(ctx context.Context, paymentID int64, req VendorPaymentUpdateRequest) (*VendorPaymentResponse, error) {
	return api.UpdateVendorPayment(ctx, c.caller, paymentID, req)
}

func (c *Client) DeleteVendorPayment(ctx context.Context, paymentID int64) (*MessageResponse, error) {
	return api.DeleteVendorPayment(ctx, c.caller, paymentID)
}

func (c *Client) LinkPaymentToVendorOrder(ctx context.Context, vendorOrderID int64, req PaymentLinkRequest) (*PaymentLinkResponse, error) {
	return api.LinkPaymentToVendorOrder(ctx, c.caller, vendorOrderID, req)
}

func (c *Client) GetVendorOrderLinkedPayments(ctx context.Context, vendorOrderID int64) (*LinkedPaymentsResponse, error) {
	return api.GetVendorOrderLinkedPayments(ctx, c.caller, vendorOrderID)
}

func (c *Client) UnlinkVendorOrderPayment(ctx context.Context, vendorOrderID, paymentID int64) (*MessageResponse, error) {
	return api.UnlinkVendorOrderPayment(ctx, c.caller, vendorOrderID, paymentID)
}
