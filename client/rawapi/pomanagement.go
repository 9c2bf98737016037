package rawapi

import (
	"context"

	"github.com/Jinansh2608/ledger-backend/client/internal/api"
	"github.com/Jinansh2608/ledger-backend/client/internal/types"
)

// ------------------------------
// Line items
// ------------------------------

func AddLineItem(ctx context.Context, hc HTTPClient, baseURL string, clientPOID int64, req types.LineItemRequest) (*types.LineItemResponse, error) {
	return api.AddLineItem(ctx, caller(hc, baseURL), clientPOID, req)
}

// BulkAddLineItems adds several line items; rejected ones come back in
// FailedItems with a PARTIAL_SUCCESS status.
func BulkAddLineItems(ctx context.Context, hc HTTPClient, baseURL string, clientPOID int64, items []types.LineItemRequest) (*types.BulkLineItemsResponse, error) {
	return api.BulkAddLineItems(ctx, caller(hc, baseURL), clientPOID, items)
}

func GetLineItems(ctx context.Context, hc HTTPClient, baseURL string, clientPOID int64) (*types.GetLineItemsResponse, error) {
	return api.GetLineItems(ctx, caller(hc, baseURL), clientPOID)
}

func UpdateLineItem(ctx context.Context, hc HTTPClient, baseURL string, lineItemID int64, req types.LineItemUpdateRequest) (*types.LineItemResponse, error) {
	return api.UpdateLineItem(ctx, caller(hc, baseURL), lineItemID, req)
}

func DeleteLineItem(ctx context.Context, hc HTTPClient, baseURL string, lineItemID int64) (*types.MessageResponse, error) {
	return api.DeleteLineItem(ctx, caller(hc, baseURL), lineItemID)
}

// ------------------------------
// POs
// ------------------------------

// GetAllPOs lists POs; clientID 0 lists every client.
func GetAllPOs(ctx context.Context, hc HTTPClient, baseURL string, clientID int64) (*types.GetAllPOsResponse, error) {
	return api.GetAllPOs(ctx, caller(hc, baseURL), clientID)
}

func CreatePOForProject(ctx context.Context, hc HTTPClient, baseURL string, projectID, clientID int64, req types.CreatePORequest) (*types.CreatePOResponse, error) {
	return api.CreatePOForProject(ctx, caller(hc, baseURL), projectID, clientID, req)
}

func GetProjectPOs(ctx context.Context, hc HTTPClient, baseURL string, projectID int64) (*types.GetProjectPOsResponse, error) {
	return api.GetProjectPOs(ctx, caller(hc, baseURL), projectID)
}

// AttachPOToProject attaches a PO; sequenceOrder 0 leaves ordering to the backend.
func AttachPOToProject(ctx context.Context, hc HTTPClient, baseURL string, projectID, clientPOID, sequenceOrder int64) (*types.AttachPOResponse, error) {
	return api.AttachPOToProject(ctx, caller(hc, baseURL), projectID, clientPOID, sequenceOrder)
}

func SetPrimaryPO(ctx context.Context, hc HTTPClient, baseURL string, projectID, clientPOID int64) (*types.SetPrimaryPOResponse, error) {
	return api.SetPrimaryPO(ctx, caller(hc, baseURL), projectID, clientPOID)
}

func UpdatePO(ctx context.Context, hc HTTPClient, baseURL string, clientPOID int64, req types.UpdatePORequest) (*types.UpdatePOResponse, error) {
	return api.UpdatePO(ctx, caller(hc, baseURL), clientPOID, req)
}

func DeletePO(ctx context.Context, hc HTTPClient, baseURL string, clientPOID int64) (*types.DeletePOResponse, error) {
	return api.DeletePO(ctx, caller(hc, baseURL), clientPOID)
}

// ------------------------------
// Verbal agreements
// ------------------------------

func CreateVerbalAgreement(ctx context.Context, hc HTTPClient, baseURL string, projectID, clientID int64, req types.VerbalAgreementRequest) (*types.CreateVerbalAgreementResponse, error) {
	return api.CreateVerbalAgreement(ctx, caller(hc, baseURL), projectID, clientID, req)
}

func AddPOToVerbalAgreement(ctx context.Context, hc HTTPClient, baseURL string, agreementID int64, req types.AddPOToVerbalAgreementRequest) (*types.AddPOToVerbalAgreementResponse, error) {
	return api.AddPOToVerbalAgreement(ctx, caller(hc, baseURL), agreementID, req)
}

func GetVerbalAgreements(ctx context.Context, hc HTTPClient, baseURL string, projectID int64) (*types.GetVerbalAgreementsResponse, error) {
	return api.GetVerbalAgreements(ctx, caller(hc, baseURL), projectID)
}

// ------------------------------
// Projects and summaries
// ------------------------------

func CreateProject(ctx context.Context, hc HTTPClient, baseURL string, req types.CreateProjectRequest) (*types.CreateProjectResponse, error) {
	return api.CreateProject(ctx, caller(hc, baseURL), req)
}

// DeleteProject deletes the project with the given name.
func DeleteProject(ctx context.Context, hc HTTPClient, baseURL, name string) (*types.DeleteProjectResponse, error) {
	return api.DeleteProject(ctx, caller(hc, baseURL), name)
}

func GetFinancialSummary(ctx context.Context, hc HTTPClient, baseURL string, projectID int64) (*types.FinancialSummaryResponse, error) {
	return api.GetFinancialSummary(ctx, caller(hc, baseURL), projectID)
}

func GetEnrichedPOs(ctx context.Context, hc HTTPClient, baseURL string, projectID int64) (*types.EnrichedPOsResponse, error) {
	return api.GetEnrichedPOs(ctx, caller(hc, baseURL), projectID)
}

// ------------------------------
// Single PO reads
// ------------------------------

func GetPO(ctx context.Context, hc HTTPClient, baseURL string, clientPOID int64) (*types.PODetailResponse, error) {
	return api.GetPO(ctx, caller(hc, baseURL), clientPOID)
}

func GetPODetails(ctx context.Context, hc HTTPClient, baseURL string, clientPOID int64) (*types.PODetailResponse, error) {
	return api.GetPODetails(ctx, caller(hc, baseURL), clientPOID)
}

// ------------------------------
// Project reads and updates
// ------------------------------

func ListProjects(ctx context.Context, hc HTTPClient, baseURL string, skip, limit int) (*types.ProjectsResponse, error) {
	return api.ListProjects(ctx, caller(hc, baseURL), skip, limit)
}

func GetProject(ctx context.Context, hc HTTPClient, baseURL string, projectID int64) (*types.ProjectResponse, error) {
	return api.GetProject(ctx, caller(hc, baseURL), projectID)
}

func UpdateProject(ctx context.Context, hc HTTPClient, baseURL string, projectID int64, req types.UpdateProjectRequest) (*types.ProjectResponse, error) {
	return api.UpdateProject(ctx, caller(hc, baseURL), projectID, req)
}

func DeleteProjectByID(ctx context.Context, hc HTTPClient, baseURL string, projectID int64) (*types.MessageResponse, error) {
	return api.DeleteProjectByID(ctx, caller(hc, baseURL), projectID)
}

func SearchProjects(ctx context.Context, hc HTTPClient, baseURL string, term string) (*types.ProjectsResponse, error) {
	return api.SearchProjects(ctx, caller(hc, baseURL), term)
}
