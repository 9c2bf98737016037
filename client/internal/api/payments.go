package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Jinansh2608/ledger-backend/client/internal/types"
)

// CreatePOPayment records a client payment against a PO.
func CreatePOPayment(ctx context.Context, c *Caller, clientPOID int64, req types.PaymentRequest) (*types.CreatePaymentResponse, error) {
	return call[types.CreatePaymentResponse](ctx, c, request{
		op:     "create_po_payment",
		method: http.MethodPost,
		path:   "/api/po/" + id(clientPOID) + "/payments",
		body:   req,
	})
}

// GetPOPayments lists a PO's payments with their cleared totals.
func GetPOPayments(ctx context.Context, c *Caller, clientPOID int64) (*types.POPaymentsResponse, error) {
	return call[types.POPaymentsResponse](ctx, c, request{
		op:     "get_po_payments",
		method: http.MethodGet,
		path:   "/api/po/" + id(clientPOID) + "/payments",
	})
}

// GetAllPayments pages through every recorded payment. Zero skip and limit
// leave the backend defaults.
func GetAllPayments(ctx context.Context, c *Caller, skip, limit int) (*types.PaymentsPageResponse, error) {
	q := url.Values{}
	setIfNonZero(q, "skip", int64(skip))
	setIfNonZero(q, "limit", int64(limit))
	return call[types.PaymentsPageResponse](ctx, c, request{
		op:     "get_all_payments",
		method: http.MethodGet,
		path:   "/api/payments",
		query:  q,
	})
}

// UpdatePayment applies a partial update to a payment.
func UpdatePayment(ctx context.Context, c *Caller, paymentID int64, req types.PaymentUpdateRequest) (*types.MessageResponse, error) {
	return call[types.MessageResponse](ctx, c, request{
		op:     "update_payment",
		method: http.MethodPut,
		path:   "/api/payments/" + id(paymentID),
		body:   req,
	})
}

func DeletePayment(ctx context.Context, c *Caller, paymentID int64) (*types.MessageResponse, error) {
	return call[types.MessageResponse](ctx, c, request{
		op:     "delete_payment",
		method: http.MethodDelete,
		path:   "/api/payments/" + id(paymentID),
	})
}
