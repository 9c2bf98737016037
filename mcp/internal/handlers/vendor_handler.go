package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/Jinansh2608/ledger-backend/client"
)

// VendorHandler exposes vendor order tools.
type VendorHandler struct {
	client *client.Client
}

func NewVendorHandler(c *client.Client) *VendorHandler { return &VendorHandler{client: c} }

func (h *VendorHandler) RegisterTools(s *server.MCPServer) error {
	list := mcp.NewTool("list_vendor_orders",
		mcp.WithDescription("Vendor orders placed for a project"),
		mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
	)
	payments := mcp.NewTool("get_vendor_order_payment_summary",
		mcp.WithDescription("Amount paid and outstanding on a vendor order"),
		mcp.WithNumber("vendor_order_id", mcp.Required(), mcp.Description("Vendor order ID")),
	)
	s.AddTool(list, h.handleListVendorOrders)
	s.AddTool(payments, h.handlePaymentSummary)
	return nil
}

func (h *VendorHandler) handleListVendorOrders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID, err := requireID(req, "project_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	resp, err := h.client.GetProjectVendorOrders(ctx, projectID)
	if err != nil {
		log.Error().Err(err).Int64("project_id", projectID).Msg("list_vendor_orders failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to list vendor orders: %v", err)), nil
	}
	return jsonResult(resp)
}

func (h *VendorHandler) handlePaymentSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "vendor_order_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	resp, err := h.client.GetVendorOrderPaymentSummary(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("vendor_order_id", id).Msg("get_vendor_order_payment_summary failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to get payment summary: %v", err)), nil
	}
	return jsonResult(resp)
}
