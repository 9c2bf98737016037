package api

import (
	"context"
	"net/http"

	"github.com/Jinansh2608/ledger-backend/client/internal/types"
)

func vendorOrderPath(vendorOrderID int64) string {
	return "/api/vendor-orders/" + id(vendorOrderID)
}

// CreateVendorOrder creates a vendor order under a project.
func CreateVendorOrder(ctx context.Context, c *Caller, projectID int64, req types.VendorOrderRequest) (*types.VendorOrderResponse, error) {
	return call[types.VendorOrderResponse](ctx, c, request{
		op:     "create_vendor_order",
		method: http.MethodPost,
		path:   "/api/projects/" + id(projectID) + "/vendor-orders",
		body:   req,
	})
}

// BulkCreateVendorOrders creates several vendor orders under a project.
func BulkCreateVendorOrders(ctx context.Context, c *Caller, projectID int64, req types.BulkCreateVendorOrdersRequest) (*types.BulkCreateVendorOrdersResponse, error) {
	return call[types.BulkCreateVendorOrdersResponse](ctx, c, request{
		op:     "bulk_create_vendor_orders",
		method: http.MethodPost,
		path:   "/api/projects/" + id(projectID) + "/vendor-orders/bulk",
		body:   req,
	})
}

// GetProjectVendorOrders lists a project's vendor orders.
func GetProjectVendorOrders(ctx context.Context, c *Caller, projectID int64) (*types.ProjectVendorOrdersResponse, error) {
	return call[types.ProjectVendorOrdersResponse](ctx, c, request{
		op:     "get_project_vendor_orders",
		method: http.MethodGet,
		path:   "/api/projects/" + id(projectID) + "/vendor-orders",
	})
}

// GetVendorOrderDetails fetches a vendor order.
func GetVendorOrderDetails(ctx context.Context, c *Caller, vendorOrderID int64) (*types.VendorOrderResponse, error) {
	return call[types.VendorOrderResponse](ctx, c, request{
		op:     "get_vendor_order_details",
		method: http.MethodGet,
		path:   vendorOrderPath(vendorOrderID),
	})
}

// UpdateVendorOrder applies a partial update to a vendor order.
func UpdateVendorOrder(ctx context.Context, c *Caller, vendorOrderID int64, req types.VendorOrderUpdateRequest) (*types.VendorOrderResponse, error) {
	return call[types.VendorOrderResponse](ctx, c, request{
		op:     "update_vendor_order",
		method: http.MethodPut,
		path:   vendorOrderPath(vendorOrderID),
		body:   req,
	})
}

// UpdateVendorOrderStatus changes the work and/or payment status.
func UpdateVendorOrderStatus(ctx context.Context, c *Caller, vendorOrderID int64, req types.VendorOrderStatusRequest) (*types.VendorOrderResponse, error) {
	return call[types.VendorOrderResponse](ctx, c, request{
		op:     "update_vendor_order_status",
		method: http.MethodPut,
		path:   vendorOrderPath(vendorOrderID) + "/status",
		body:   req,
	})
}

// DeleteVendorOrder deletes a vendor order.
func DeleteVendorOrder(ctx context.Context, c *Caller, vendorOrderID int64) (*types.MessageResponse, error) {
	return call[types.MessageResponse](ctx, c, request{
		op:     "delete_vendor_order",
		method: http.MethodDelete,
		path:   vendorOrderPath(vendorOrderID),
	})
}

// AddVendorOrderLineItem adds a line to a vendor order.
func AddVendorOrderLineItem(ctx context.Context, c *Caller, vendorOrderID int64, req types.VendorOrderLineItemRequest) (*types.VendorOrderLineItemResponse, error) {
	return call[types.VendorOrderLineItemResponse](ctx, c, request{
		op:     "add_vendor_order_line_item",
		method: http.MethodPost,
		path:   vendorOrderPath(vendorOrderID) + "/line-items",
		body:   req,
	})
}

// GetVendorOrderLineItems lists the lines of a vendor order.
func GetVendorOrderLineItems(ctx context.Context, c *Caller, vendorOrderID int64) (*types.VendorOrderLineItemsResponse, error) {
	return call[types.VendorOrderLineItemsResponse](ctx, c, request{
		op:     "get_vendor_order_line_items",
		method: http.MethodGet,
		path:   vendorOrderPath(vendorOrderID) + "/line-items",
	})
}

// UpdateVendorOrderLineItem applies a partial update to a vendor order line.
func UpdateVendorOrderLineItem(ctx context.Context, c *Caller, vendorOrderID, lineItemID int64, req types.VendorOrderLineItemUpdateRequest) (*types.VendorOrderLineItemResponse, error) {
	return call[types.VendorOrderLineItemResponse](ctx, c, request{
		op:     "update_vendor_order_line_item",
		method: http.MethodPut,
		path:   vendorOrderPath(vendorOrderID) + "/line-items/" + id(lineItemID),
		body:   req,
	})
}

// DeleteVendorOrderLineItem removes a line from a vendor order.
func DeleteVendorOrderLineItem(ctx context.Context, c *Caller, vendorOrderID, lineItemID int64) (*types.MessageResponse, error) {
	return call[types.MessageResponse](ctx, c, request{
		op:     "delete_vendor_order_line_item",
		method: http.MethodDelete,
		path:   vendorOrderPath(vendorOrderID) + "/line-items/" + id(lineItemID),
	})
}

// GetVendorOrderPaymentSummary reconciles a vendor order against payments.
func GetVendorOrderPaymentSummary(ctx context.Context, c *Caller, vendorOrderID int64) (*types.VendorOrderPaymentSummaryResponse, error) {
	return call[types.VendorOrderPaymentSummaryResponse](ctx, c, request{
		op:     "get_vendor_order_payment_summary",
		method: http.MethodGet,
		path:   vendorOrderPath(vendorOrderID) + "/payment-summary",
	})
}

// GetVendorOrderProfitAnalysis returns the profit view of a vendor order.
func GetVendorOrderProfitAnalysis(ctx context.Context, c *Caller, vendorOrderID int64) (*types.VendorOrderProfitAnalysisResponse, error) {
	return call[types.VendorOrderProfitAnalysisResponse](ctx, c, request{
		op:     "get_vendor_order_profit_analysis",
		method: http.MethodGet,
		path:   vendorOrderPath(vendorOrderID) + "/profit-analysis",
	})
}
