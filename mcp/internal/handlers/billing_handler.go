package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/Jinansh2608/ledger-backend/client"
)

// BillingHandler exposes project billing and P&L tools.
type BillingHandler struct {
	client *client.Client
}

func NewBillingHandler(c *client.Client) *BillingHandler { return &BillingHandler{client: c} }

func (h *BillingHandler) RegisterTools(s *server.MCPServer) error {
	summary := mcp.NewTool("get_billing_summary",
		mcp.WithDescription("Billing POs of a project with original vs billed totals"),
		mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
	)
	pl := mcp.NewTool("get_project_profit_loss",
		mcp.WithDescription("Profit and loss of a project (billed revenue vs vendor costs)"),
		mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
	)
	s.AddTool(summary, h.handleBillingSummary)
	s.AddTool(pl, h.handleProfitLoss)
	return nil
}

func (h *BillingHandler) handleBillingSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID, err := requireID(req, "project_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	resp, err := h.client.GetProjectBillingSummary(ctx, projectID)
	if err != nil {
		log.Error().Err(err).Int64("project_id", projectID).Msg("get_billing_summary failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to get billing summary: %v", err)), nil
	}
	return jsonResult(resp)
}

func (h *BillingHandler) handleProfitLoss(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID, err := requireID(req, "project_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	resp, err := h.client.GetProjectProfitLoss(ctx, projectID)
	if err != nil {
		log.Error().Err(err).Int64("project_id", projectID).Msg("get_project_profit_loss failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to get profit and loss: %v", err)), nil
	}
	return jsonResult(resp)
}
