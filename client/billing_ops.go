package client

import (
	"context"

	"github.com/Jinansh2608/ledger-backend/client/internal/api"
)

func (c *Client) CreateBillingPO(ctx context.Context, projectID int64, req CreateBillingPORequest) (*BillingPOResponse, error) {
	return api.CreateBillingPO(ctx, c.caller, projectID, req)
}

func (c *Client) GetBillingPO(ctx context.Context, billingPOID string) (*GetBillingPOResponse, error) {
	return api.GetBillingPO(ctx, c.caller, billingPOID)
}

func (c *Client) UpdateBillingPO(ctx context.Context, billingPOID string, req UpdateBillingPORequest) (*BillingPOResponse, error) {
	return api.UpdateBillingPO(ctx, c.caller, billingPOID, req)
}

// ApproveBillingPO approves a billing PO; notes may be empty.
func (c *Client) ApproveBillingPO(ctx context.Context, billingPOID, notes string) (*ApproveBillingPOResponse, error) {
	return api.ApproveBillingPO(ctx, c.caller, billingPOID, notes)
}

func (c *Client) GetProjectBillingSummary(ctx context.Context, projectID int64) (*ProjectBillingSummaryResponse, error) {
	return api.GetProjectBillingSummary(ctx, c.caller, projectID)
}

// GetProjectProfitLoss returns the structured billing P&L of a project.
func (c *Client) GetProjectProfitLoss(ctx context.Context, projectID int64) (*ProjectProfitLossResponse, error) {
	return api.GetProjectProfitLoss(ctx, c.caller, projectID)
}

// GetProjectPLAnalysis returns the flattened P&L totals of a project.
func (c *Client) GetProjectPLAnalysis(ctx context.Context, projectID int64) (*ProjectPLAnalysisResponse, error) {
	return api.GetProjectPLAnalysis(ctx, c.caller, projectID)
}

func (c *Client) AddBillingLineItem(ctx context.Context, billingPOID string, req BillingLineItemRequest) (*BillingLineItemResponse, error) {
	return api.AddBillingLineItem(ctx, c.caller, billingPOID, req)
}

func (c *Client) GetBillingLineItems(ctx context.Context, billingPOID string) (*GetBillingLineItemsResponse, error) {
	return api.GetBillingLineItems(ctx, c.caller, billingPOID)
}

func (c *Client) DeleteBillingLineItem(ctx context.Context, billingPOID, lineItemID string) (*MessageResponse, error) {
	return api.DeleteBillingLineItem(ctx, c.caller, billingPOID, lineItemID)
}
