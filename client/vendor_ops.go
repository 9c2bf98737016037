package client

import (
	"context"

	"github.com/Jinansh2608/ledger-backend/client/internal/api"
)

// --------------------------------------------------------------------
// Vendor orders
// --------------------------------------------------------------------

func (c *Client) CreateVendorOrder(ctx context.Context, projectID int64, req VendorOrderRequest) (*VendorOrderResponse, error) {
	return api.CreateVendorOrder(ctx, c.caller, projectID, req)
}

func (c *Client) BulkCreateVendorOrders(ctx context.Context, projectID int64, req BulkCreateVendorOrdersRequest) (*BulkCreateVendorOrdersResponse, error) {
	return api.BulkCreateVendorOrders(ctx, c.caller, projectID, req)
}

func (c *Client) GetProjectVendorOrders(ctx context.Context, projectID int64) (*ProjectVendorOrdersResponse, error) {
	return api.GetProjectVendorOrders(ctx, c.caller, projectID)
}

func (c *Client) GetVendorOrderDetails(ctx context.Context, vendorOrderID int64) (*VendorOrderResponse, error) {
	return api.GetVendorOrderDetails(ctx, c.caller, vendorOrderID)
}

func (c *Client) UpdateVendorOrder(ctx context.Context, vendorOrderID int64, req VendorOrderUpdateRequest) (*VendorOrderResponse, error) {
	return api.UpdateVendorOrder(ctx, c.caller, vendorOrderID, req)
}

// UpdateVendorOrderStatus changes work and/or payment status.
func (c *Client) UpdateVendorOrderStatus(ctx context.Context, vendorOrderID int64, req VendorOrderStatusRequest) (*VendorOrderResponse, error) {
	return api.UpdateVendorOrderStatus(ctx, c.caller, vendorOrderID, req)
}

func (c *Client) DeleteVendorOrder(ctx context.Context, vendorOrderID int64) (*MessageResponse, error) {
	return api.DeleteVendorOrder(ctx, c.caller, vendorOrderID)
}

func (c *Client) AddVendorOrderLineItem(ctx context.Context, vendorOrderID int64, req VendorOrderLineItemRequest) (*VendorOrderLineItemResponse, error) {
	return api.AddVendorOrderLineItem(ctx, c.caller, vendorOrderID, req)
}

func (c *Client) GetVendorOrderLineItems(ctx context.Context, vendorOrderID int64) (*VendorOrderLineItemsResponse, error) {
	return api.GetVendorOrderLineItems(ctx, c.caller, vendorOrderID)
}

func (c *Client) UpdateVendorOrderLineItem(ctx context.Context, vendorOrderID, lineItemID int64, req VendorOrderLineItemUpdateRequest) (*VendorOrderLineItemResponse, error) {
	return api.UpdateVendorOrderLineItem(ctx, c.caller, vendorOrderID, lineItemID, req)
}

func (c *Client) DeleteVendorOrderLineItem(ctx context.Context, vendorOrderID, lineItemID int64) (*MessageResponse, error) {
	return api.DeleteVendorOrderLineItem(ctx, c.caller, vendorOrderID, lineItemID)
}

// GetVendorOrderPaymentSummary reconciles a vendor order against payments.
func (c *Client) GetVendorOrderPaymentSummary(ctx context.Context, vendorOrderID int64) (*VendorOrderPaymentSummaryResponse, error) {
	return api.GetVendorOrderPaymentSummary(ctx, c.caller, vendorOrderID)
}

// GetVendorOrderProfitAnalysis returns the profit view of a vendor order.
func (c *Client) GetVendorOrderProfitAnalysis(ctx context.Context, vendorOrderID int64) (*VendorOrderProfitAnalysisResponse, error) {
	return api.GetVendorOrderProfitAnalysis(ctx, c.caller, vendorOrderID)
}

// --------------------------------------------------------------------
// Vendors
// --------------------------------------------------------------------

func (c *Client) CreateVendor(ctx context.Context, req VendorRequest) (*VendorResponse, error) {
	return api.CreateVendor(ctx, c.caller, req)
}

// GetVendors lists vendors; an empty status returns all of them.
func (c *Client) GetVendors(ctx context.Context, status string) (*VendorsResponse, error) {
	return api.GetVendors(ctx, c.caller, status)
}

func (c *Client) GetVendor(ctx context.Context, vendorID int64) (*VendorResponse, error) {
	return api.GetVendor(ctx, c.caller, vendorID)
}

func (c *Client) UpdateVendor(ctx context.Context, vendorID int64, req VendorUpdateRequest) (*VendorResponse, error) {
	return api.UpdateVendor(ctx, c.caller, vendorID, req)
}

func (c *Client) DeleteVendor(ctx context.Context, vendorID int64) (*MessageResponse, error) {
	return api.DeleteVendor(ctx, c.caller, vendorID)
}

func (c *Client) GetVendorPayments(ctx context.Context, vendorID int64) (*VendorPaymentHistoryResponse, error) {
	return api.GetVendorPayments(ctx, c.caller, vendorID)
}

func (c *Client) GetVendorPaymentSummary(ctx context.Context, vendorID int64) (*VendorPayablesResponse, error) {
	return api.GetVendorPaymentSummary(ctx, c.caller, vendorID)
}
