package rawapi

import (
	"context"

	"github.com/Jinansh2608/ledger-backend/client/internal/api"
	"github.com/Jinansh2608/ledger-backend/client/internal/types"
)

func CreateVendorOrder(ctx context.Context, hc HTTPClient, baseURL string, projectID int64, req types.VendorOrderRequest) (*types.VendorOrderResponse, error) {
	return api.CreateVendorOrder(ctx, caller(hc, baseURL), projectID, req)
}

func BulkCreateVendorOrders(ctx context.Context, hc HTTPClient, baseURL string, projectID int64, req types.BulkCreateVendorOrdersRequest) (*types.BulkCreateVendorOrdersResponse, error) {
	return api.BulkCreateVendorOrders(ctx, caller(hc, baseURL), projectID, req)
}

func GetProjectVendorOrders(ctx context.Context, hc HTTPClient, baseURL string, projectID int64) (*types.ProjectVendorOrdersResponse, error) {
	return api.GetProjectVendorOrders(ctx, caller(hc, baseURL), projectID)
}

func GetVendorOrderDetails(ctx context.Context, hc HTTPClient, baseURL string, vendorOrderID int64) (*types.VendorOrderResponse, error) {
	return api.GetVendorOrderDetails(ctx, caller(hc, baseURL), vendorOrderID)
}

func UpdateVendorOrder(ctx context.Context, hc HTTPClient, baseURL string, vendorOrderID int64, req types.VendorOrderUpdateRequest) (*types.VendorOrderResponse, error) {
	return api.UpdateVendorOrder(ctx, caller(hc, baseURL), vendorOrderID, req)
}

func UpdateVendorOrderStatus(ctx context.Context, hc HTTPClient, baseURL string, vendorOrderID int64, req types.VendorOrderStatusRequest) (*types.VendorOrderResponse, error) {
	return api.UpdateVendorOrderStatus(ctx, caller(hc, baseURL), vendorOrderID, req)
}

func DeleteVendorOrder(ctx context.Context, hc HTTPClient, baseURL string, vendorOrderID int64) (*types.MessageResponse, error) {
	return api.DeleteVendorOrder(ctx, caller(hc, baseURL), vendorOrderID)
}

func AddVendorOrderLineItem(ctx context.Context, hc HTTPClient, baseURL string, vendorOrderID int64, req types.VendorOrderLineItemRequest) (*types.VendorOrderLineItemResponse, error) {
	return api.AddVendorOrderLineItem(ctx, caller(hc, baseURL), vendorOrderID, req)
}

func GetVendorOrderLineItems(ctx context.Context, hc HTTPClient, baseURL string, vendorOrderID int64) (*types.VendorOrderLineItemsResponse, error) {
	return api.GetVendorOrderLineItems(ctx, caller(hc, baseURL), vendorOrderID)
}

func UpdateVendorOrderLineItem(ctx context.Context, hc HTTPClient, baseURL string, vendorOrderID, lineItemID int64, req types.VendorOrderLineItemUpdateRequest) (*types.VendorOrderLineItemResponse, error) {
	return api.UpdateVendorOrderLineItem(ctx, caller(hc, baseURL), vendorOrderID, lineItemID, req)
}

func DeleteVendorOrderLineItem(ctx context.Context, hc HTTPClient, baseURL string, vendorOrderID, lineItemID int64) (*types.MessageResponse, error) {
	return api.DeleteVendorOrderLineItem(ctx, caller(hc, baseURL), vendorOrderID, lineItemID)
}

func GetVendorOrderPaymentSummary(ctx context.Context, hc HTTPClient, baseURL string, vendorOrderID int64) (*types.VendorOrderPaymentSummaryResponse, error) {
	return api.GetVendorOrderPaymentSummary(ctx, caller(hc, baseURL), vendorOrderID)
}

func GetVendorOrderProfitAnalysis(ctx context.Context, hc HTTPClient, baseURL string, vendorOrderID int64) (*types.VendorOrderProfitAnalysisResponse, error) {
	return api.GetVendorOrderProfitAnalysis(ctx, caller(hc, baseURL), vendorOrderID)
}
