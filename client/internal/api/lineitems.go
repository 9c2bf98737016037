package api

import (
	"context"
	"net/http"

	"github.com/Jinansh2608/ledger-backend/client/internal/types"
)

// AddLineItem adds a line item to a client PO.
func AddLineItem(ctx context.Context, c *Caller, clientPOID int64, req types.LineItemRequest) (*types.LineItemResponse, error) {
	return call[types.LineItemResponse](ctx, c, request{
		op:     "add_line_item",
		method: http.MethodPost,
		path:   "/api/po/" + id(clientPOID) + "/line-items",
		body:   req,
	})
}

// BulkAddLineItems adds several line items in one call. The backend accepts
// the valid ones and reports the rest in FailedItems.
func BulkAddLineItems(ctx context.Context, c *Caller, clientPOID int64, items []types.LineItemRequest) (*types.BulkLineItemsResponse, error) {
	return call[types.BulkLineItemsResponse](ctx, c, request{
		op:     "bulk_add_line_items",
		method: http.MethodPost,
		path:   "/api/po/" + id(clientPOID) + "/line-items/bulk",
		body:   types.BulkLineItemsRequest{Items: items},
	})
}

// GetLineItems lists the line items of a client PO.
func GetLineItems(ctx context.Context, c *Caller, clientPOID int64) (*types.GetLineItemsResponse, error) {
	return call[types.GetLineItemsResponse](ctx, c, request{
		op:     "get_line_items",
		method: http.MethodGet,
		path:   "/api/po/" + id(clientPOID) + "/line-items",
	})
}

// UpdateLineItem applies a partial update to a line item.
func UpdateLineItem(ctx context.Context, c *Caller, lineItemID int64, req types.LineItemUpdateRequest) (*types.LineItemResponse, error) {
	return call[types.LineItemResponse](ctx, c, request{
		op:     "update_line_item",
		method: http.MethodPut,
		path:   "/api/line-items/" + id(lineItemID),
		body:   req,
	})
}

// DeleteLineItem removes a line item.
func DeleteLineItem(ctx context.Context, c *Caller, lineItemID int64) (*types.MessageResponse, error) {
	return call[types.MessageResponse](ctx, c, request{
		op:     "delete_line_item",
		method: http.MethodDelete,
		path:   "/api/line-items/" + id(lineItemID),
	})
}
