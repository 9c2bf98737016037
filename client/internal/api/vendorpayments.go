package api

import (
	"context"
	"net/http"

	"github.com/Jinansh2608/ledger-backend/client/internal/types"
)

// CreateVendorOrderPayment records an outgoing payment on a vendor order.
func CreateVendorOrderPayment(ctx context.Context, c *Caller, vendorOrderID int64, req types.VendorPaymentRequest) (*types.VendorPaymentResponse, error) {
	return call[types.VendorPaymentResponse](ctx, c, request{
		op:     "create_vendor_order_payment",
		method: http.MethodPost,
		path:   vendorOrderPath(vendorOrderID) + "/payments",
		body:   req,
	})
}

// GetVendorOrderPayments lists a vendor order's payments, split by state.
func GetVendorOrderPayments(ctx context.Context, c *Caller, vendorOrderID int64) (*types.VendorOrderPaymentsResponse, error) {
	return call[types.VendorOrderPaymentsResponse](ctx, c, request{
		op:     "get_vendor_order_payments",
		method: http.MethodGet,
		path:   vendorOrderPath(vendorOrderID) + "/payments",
	})
}

func UpdateVendorPayment(ctx context.Context, c *Caller, paymentID int64, req types.VendorPaymentUpdateRequest) (*types.VendorPaymentResponse, error) {
	return call[types.VendorPaymentResponse](ctx, c, request{
		op:     "update_vendor_payment",
		method: http.MethodPut,
		path:   "/api/vendor-payments/" + id(paymentID),
		body:   req,
	})
}

func DeleteVendorPayment(ctx context.Context, c *Caller, paymentID int64) (*types.MessageResponse, error) {
	return call[types.MessageResponse](ctx, c, request{
		op:     "delete_vendor_payment",
		method: http.MethodDelete,
		path:   "/api/vendor-payments/" + id(paymentID),
	})
}

// LinkPaymentToVendorOrder ties an existing client payment to a vendor order.
func LinkPaymentToVendorOrder(ctx context.Context, c *Caller, vendorOrderID int64, req types.PaymentLinkRequest) (*types.PaymentLinkResponse, error) {
	return call[types.PaymentLinkResponse](ctx, c, request{
		op:     "link_payment_to_vendor_order",
		method: http.MethodPost,
		path:   vendorOrderPath(vendorOrderID) + "/link-payment",
		body:   req,
	})
}

// GetVendorOrderLinkedPayments lists linked client payments by direction.
func GetVendorOrderLinkedPayments(ctx context.Context, c *Caller, vendorOrderID int64) (*types.LinkedPaymentsResponse, error) {
	return call[types.LinkedPaymentsResponse](ctx, c, request{
		op:     "get_vendor_order_linked_payments",
		method: http.MethodGet,
		path:   vendorOrderPath(vendorOrderID) + "/linked-payments",
	})
}

// UnlinkVendorOrderPayment removes the link between a client payment and a
// vendor order; the payment itself is kept.
func UnlinkVendorOrderPayment(ctx context.Context, c *Caller, vendorOrderID, paymentID int64) (*types.MessageResponse, error) {
	return call[types.MessageResponse](ctx, c, request{
		op:     "unlink_vendor_order_payment",
		method: http.MethodDelete,
		path:   vendorOrderPath(vendorOrderID) + "/payments/" + id(paymentID),
	})
}
