package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/Jinansh2608/ledger-backend/client"
)

// POHandler exposes read-only client PO and project tools.
type POHandler struct {
	client *client.Client
}

func NewPOHandler(c *client.Client) *POHandler { return &POHandler{client: c} }

func (h *POHandler) RegisterTools(s *server.MCPServer) error {
	health := mcp.NewTool("health",
		mcp.WithDescription("Check that the PO API and its database are reachable"),
	)
	getPO := mcp.NewTool("get_client_po",
		mcp.WithDescription("Fetch one client PO with its line items"),
		mcp.WithNumber("client_po_id", mcp.Required(), mcp.Description("Client PO ID")),
	)
	listPOs := mcp.NewTool("list_pos",
		mcp.WithDescription("List POs, optionally for a single client"),
		mcp.WithNumber("client_id", mcp.Description("Only POs of this client")),
	)
	projectPOs := mcp.NewTool("list_project_pos",
		mcp.WithDescription("List the POs attached to a project"),
		mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
	)
	summary := mcp.NewTool("get_financial_summary",
		mcp.WithDescription("PO and verbal agreement totals for a project"),
		mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
	)
	enriched := mcp.NewTool("get_enriched_pos",
		mcp.WithDescription("A project's POs with payments, TDS and receivables"),
		mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
	)

	s.AddTool(health, h.handleHealth)
	s.AddTool(getPO, h.handleGetClientPO)
	s.AddTool(listPOs, h.handleListPOs)
	s.AddTool(projectPOs, h.handleListProjectPOs)
	s.AddTool(summary, h.handleFinancialSummary)
	s.AddTool(enriched, h.handleEnrichedPOs)
	return nil
}

func (h *POHandler) handleHealth(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := h.client.Health(ctx)
	if err != nil {
		log.Error().Err(err).Msg("health failed")
		return mcp.NewToolResultError(fmt.Sprintf("health check failed: %v", err)), nil
	}
	return jsonResult(resp)
}

func (h *POHandler) handleGetClientPO(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "client_po_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	log.Debug().Int64("client_po_id", id).Msg("get_client_po invoked")

	start := time.Now()
	resp, err := h.client.GetClientPO(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("client_po_id", id).Dur("elapsed", time.Since(start)).Msg("get_client_po failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to get client PO: %v", err)), nil
	}
	return jsonResult(resp)
}

func (h *POHandler) handleListPOs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	clientID, _, err := optionalID(req, "client_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	resp, err := h.client.GetAllPOs(ctx, clientID)
	if err != nil {
		log.Error().Err(err).Int64("client_id", clientID).Msg("list_pos failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to list POs: %v", err)), nil
	}
	return jsonResult(resp)
}

func (h *POHandler) handleListProjectPOs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID, err := requireID(req, "project_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	resp, err := h.client.GetProjectPOs(ctx, projectID)
	if err != nil {
		log.Error().Err(err).Int64("project_id", projectID).Msg("list_project_pos failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to list project POs: %v", err)), nil
	}
	return jsonResult(resp)
}

func (h *POHandler) handleFinancialSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID, err := requireID(req, "project_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	resp, err := h.client.GetFinancialSummary(ctx, projectID)
	if err != nil {
		log.Error().Err(err).Int64("project_id", projectID).Msg("get_financial_summary failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to get financial summary: %v", err)), nil
	}
	return jsonResult(resp)
}

func (h *POHandler) handleEnrichedPOs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID, err := requireID(req, "project_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	resp, err := h.client.GetEnrichedPOs(ctx, projectID)
	if err != nil {
		log.Error().Err(err).Int64("project_id", projectID).Msg("get_enriched_pos failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to get enriched POs: %v", err)), nil
	}
	return jsonResult(resp)
}
