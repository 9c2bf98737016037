package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Jinansh2608/ledger-backend/client/internal/types"
)

func billingPOPath(billingPOID string) string {
	return "/api/billing-po/" + url.PathEscape(billingPOID)
}

// CreateBillingPO creates the billing PO of a project.
func CreateBillingPO(ctx context.Context, c *Caller, projectID int64, req types.CreateBillingPORequest) (*types.BillingPOResponse, error) {
	return call[types.BillingPOResponse](ctx, c, request{
		op:     "create_billing_po",
		method: http.MethodPost,
		path:   "/api/projects/" + id(projectID) + "/billing-po",
		body:   req,
	})
}

// GetBillingPO fetches a billing PO.
func GetBillingPO(ctx context.Context, c *Caller, billingPOID string) (*types.GetBillingPOResponse, error) {
	return call[types.GetBillingPOResponse](ctx, c, request{
		op:     "get_billing_po",
		method: http.MethodGet,
		path:   billingPOPath(billingPOID),
	})
}

// UpdateBillingPO applies a partial update to a billing PO.
func UpdateBillingPO(ctx context.Context, c *Caller, billingPOID string, req types.UpdateBillingPORequest) (*types.BillingPOResponse, error) {
	return call[types.BillingPOResponse](ctx, c, request{
		op:     "update_billing_po",
		method: http.MethodPut,
		path:   billingPOPath(billingPOID),
		body:   req,
	})
}

// ApproveBillingPO approves a billing PO, optionally with notes.
func ApproveBillingPO(ctx context.Context, c *Caller, billingPOID, notes string) (*types.ApproveBillingPOResponse, error) {
	return call[types.ApproveBillingPOResponse](ctx, c, request{
		op:     "approve_billing_po",
		method: http.MethodPost,
		path:   billingPOPath(billingPOID) + "/approve",
		body:   types.ApproveBillingPORequest{Notes: notes},
	})
}

// GetProjectBillingSummary compares a project's original and billed totals.
func GetProjectBillingSummary(ctx context.Context, c *Caller, projectID int64) (*types.ProjectBillingSummaryResponse, error) {
	return call[types.ProjectBillingSummaryResponse](ctx, c, request{
		op:     "get_project_billing_summary",
		method: http.MethodGet,
		path:   "/api/projects/" + id(projectID) + "/billing-summary",
	})
}

// GetProjectProfitLoss returns the structured billing P&L of a project.
func GetProjectProfitLoss(ctx context.Context, c *Caller, projectID int64) (*types.ProjectProfitLossResponse, error) {
	return call[types.ProjectProfitLossResponse](ctx, c, request{
		op:     "get_project_profit_loss",
		method: http.MethodGet,
		path:   "/api/projects/" + id(projectID) + "/billing-pl-analysis",
	})
}

// GetProjectPLAnalysis returns the flattened P&L totals of a project.
func GetProjectPLAnalysis(ctx context.Context, c *Caller, projectID int64) (*types.ProjectPLAnalysisResponse, error) {
	return call[types.ProjectPLAnalysisResponse](ctx, c, request{
		op:     "get_project_pl_analysis",
		method: http.MethodGet,
		path:   "/api/projects/" + id(projectID) + "/pl-analysis",
	})
}

// AddBillingLineItem adds a line to a billing PO.
func AddBillingLineItem(ctx context.Context, c *Caller, billingPOID string, req types.BillingLineItemRequest) (*types.BillingLineItemResponse, error) {
	return call[types.BillingLineItemResponse](ctx, c, request{
		op:     "add_billing_line_item",
		method: http.MethodPost,
		path:   billingPOPath(billingPOID) + "/line-items",
		body:   req,
	})
}

// GetBillingLineItems lists the lines of a billing PO.
func GetBillingLineItems(ctx context.Context, c *Caller, billingPOID string) (*types.GetBillingLineItemsResponse, error) {
	return call[types.GetBillingLineItemsResponse](ctx, c, request{
		op:     "get_billing_line_items",
		method: http.MethodGet,
		path:   billingPOPath(billingPOID) + "/line-items",
	})
}

// DeleteBillingLineItem removes a line from a billing PO.
func DeleteBillingLineItem(ctx context.Context, c *Caller, billingPOID, lineItemID string) (*types.MessageResponse, error) {
	return call[types.MessageResponse](ctx, c, request{
		op:     "delete_billing_line_item",
		method: http.MethodDelete,
		path:   billingPOPath(billingPOID) + "/line-items/" + url.PathEscape(lineItemID),
	})
}
