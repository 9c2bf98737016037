package rawapi

import (
	"context"

	"github.com/Jinansh2608/ledger-backend/client/internal/api"
	"github.com/Jinansh2608/ledger-backend/client/internal/types"
)

func CreateBillingPO(ctx context.Context, hc HTTPClient, baseURL string, projectID int64, req types.CreateBillingPORequest) (*types.BillingPOResponse, error) {
	return api.CreateBillingPO(ctx, caller(hc, baseURL), projectID, req)
}

func GetBillingPO(ctx context.Context, hc HTTPClient, baseURL, billingPOID string) (*types.GetBillingPOResponse, error) {
	return api.GetBillingPO(ctx, caller(hc, baseURL), billingPOID)
}

func UpdateBillingPO(ctx context.Context, hc HTTPClient, baseURL, billingPOID string, req types.UpdateBillingPORequest) (*types.BillingPOResponse, error) {
	return api.UpdateBillingPO(ctx, caller(hc, baseURL), billingPOID, req)
}

// ApproveBillingPO approves a billing PO; notes may be empty.
func ApproveBillingPO(ctx context.Context, hc HTTPClient, baseURL, billingPOID, notes string) (*types.ApproveBillingPOResponse, error) {
	return api.ApproveBillingPO(ctx, caller(hc, baseURL), billingPOID, notes)
}

func GetProjectBillingSummary(ctx context.Context, hc HTTPClient, baseURL string, projectID int64) (*types.ProjectBillingSummaryResponse, error) {
	return api.GetProjectBillingSummary(ctx, caller(hc, baseURL), projectID)
}

// GetProjectProfitLoss returns the structured P&L served at billing-pl-analysis.
func GetProjectProfitLoss(ctx context.Context, hc HTTPClient, baseURL string, projectID int64) (*types.ProjectProfitLossResponse, error) {
	return api.GetProjectProfitLoss(ctx, caller(hc, baseURL), projectID)
}

// GetProjectPLAnalysis returns the flattened P&L served at pl-analysis.
func GetProjectPLAnalysis(ctx context.Context, hc HTTPClient, baseURL string, projectID int64) (*types.ProjectPLAnalysisResponse, error) {
	return api.GetProjectPLAnalysis(ctx, caller(hc, baseURL), projectID)
}

func AddBillingLineItem(ctx context.Context, hc HTTPClient, baseURL, billingPOID string, req types.BillingLineItemRequest) (*types.BillingLineItemResponse, error) {
	return api.AddBillingLineItem(ctx, caller(hc, baseURL), billingPOID, req)
}

func GetBillingLineItems(ctx context.Context, hc HTTPClient, baseURL, billingPOID string) (*types.GetBillingLineItemsResponse, error) {
	return api.GetBillingLineItems(ctx, caller(hc, baseURL), billingPOID)
}

func DeleteBillingLineItem(ctx context.Context, hc HTTPClient, baseURL, billingPOID, lineItemID string) (*types.MessageResponse, error) {
	return api.DeleteBillingLineItem(ctx, caller(hc, baseURL), billingPOID, lineItemID)
}
