package client

import (
	"context"

	"github.com/Jinansh2608/ledger-backend/client/internal/api"
)

// --------------------------------------------------------------------
// Client PO
// --------------------------------------------------------------------

// GetClientPO fetches a client PO with its line items.
func (c *Client) GetClientPO(ctx context.Context, clientPOID int64) (*GetClientPOResponse, error) {
	return api.GetClientPO(ctx, c.caller, clientPOID)
}

// --------------------------------------------------------------------
// Line items
// --------------------------------------------------------------------

// AddLineItem adds a line item to a client PO.
func (c *Client) AddLineItem(ctx context.Context, clientPOID int64, req LineItemRequest) (*LineItemResponse, error) {
	return api.AddLineItem(ctx, c.caller, clientPOID, req)
}

// BulkAddLineItems adds several line items at once. A PARTIAL_SUCCESS
// response is not an error; check FailedItems.
func (c *Client) BulkAddLineItems(ctx context.Context, clientPOID int64, items []LineItemRequest) (*BulkLineItemsResponse, error) {
	return api.BulkAddLineItems(ctx, c.caller, clientPOID, items)
}

// GetLineItems lists the line items of a client PO.
func (c *Client) GetLineItems(ctx context.Context, clientPOID int64) (*GetLineItemsResponse, error) {
	return api.GetLineItems(ctx, c.caller, clientPOID)
}

// UpdateLineItem applies a partial update to a line item.
func (c *Client) UpdateLineItem(ctx context.Context, lineItemID int64, req LineItemUpdateRequest) (*LineItemResponse, error) {
	return api.UpdateLineItem(ctx, c.caller, lineItemID, req)
}

// DeleteLineItem removes a line item.
func (c *Client) DeleteLineItem(ctx context.Context, lineItemID int64) (*MessageResponse, error) {
	return api.DeleteLineItem(ctx, c.caller, lineItemID)
}

// --------------------------------------------------------------------
// POs
// --------------------------------------------------------------------

// GetAllPOs lists POs; clientID 0 lists all clients.
func (c *Client) GetAllPOs(ctx context.Context, clientID int64) (*GetAllPOsResponse, error) {
	return api.GetAllPOs(ctx, c.caller, clientID)
}

// CreatePOForProject creates a client PO under a project.
func (c *Client) CreatePOForProject(ctx context.Context, projectID, clientID int64, req CreatePORequest) (*CreatePOResponse, error) {
	return api.CreatePOForProject(ctx, c.caller, projectID, clientID, req)
}

// GetProjectPOs lists the POs of a project.
func (c *Client) GetProjectPOs(ctx context.Context, projectID int64) (*GetProjectPOsResponse, error) {
	return api.GetProjectPOs(ctx, c.caller, projectID)
}

// AttachPOToProject attaches a PO to a project; sequenceOrder 0 appends.
func (c *Client) AttachPOToProject(ctx context.Context, projectID, clientPOID, sequenceOrder int64) (*AttachPOResponse, error) {
	return api.AttachPOToProject(ctx, c.caller, projectID, clientPOID, sequenceOrder)
}

// SetPrimaryPO marks a PO as the project's primary PO.
func (c *Client) SetPrimaryPO(ctx context.Context, projectID, clientPOID int64) (*SetPrimaryPOResponse, error) {
	return api.SetPrimaryPO(ctx, c.caller, projectID, clientPOID)
}

// UpdatePO applies a partial update to a PO.
func (c *Client) UpdatePO(ctx context.Context, clientPOID int64, req UpdatePORequest) (*UpdatePOResponse, error) {
	return api.UpdatePO(ctx, c.caller, clientPOID, req)
}

// DeletePO deletes a PO.
func (c *Client) DeletePO(ctx context.Context, clientPOID int64) (*DeletePOResponse, error) {
	return api.DeletePO(ctx, c.caller, clientPOID)
}

// --------------------------------------------------------------------
// Verbal agreements
// --------------------------------------------------------------------

func (c *Client) CreateVerbalAgreement(ctx context.Context, projectID, clientID int64, req VerbalAgreementRequest) (*CreateVerbalAgreementResponse, error) {
	return api.CreateVerbalAgreement(ctx, c.caller, projectID, clientID, req)
}

func (c *Client) AddPOToVerbalAgreement(ctx context.Context, agreementID int64, req AddPOToVerbalAgreementRequest) (*AddPOToVerbalAgreementResponse, error) {
	return api.AddPOToVerbalAgreement(ctx, c.caller, agreementID, req)
}

func (c *Client) GetVerbalAgreements(ctx context.Context, projectID int64) (*GetVerbalAgreementsResponse, error) {
	return api.GetVerbalAgreements(ctx, c.caller, projectID)
}

// --------------------------------------------------------------------
// Projects and summaries
// --------------------------------------------------------------------

// CreateProject creates a project.
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*CreateProjectResponse, error) {
	return api.CreateProject(ctx, c.caller, req)
}

// DeleteProject deletes a project by name.
func (c *Client) DeleteProject(ctx context.Context, name string) (*DeleteProjectResponse, error) {
	return api.DeleteProject(ctx, c.caller, name)
}

// GetFinancialSummary returns PO and verbal agreement totals for a project.
func (c *Client) GetFinancialSummary(ctx context.Context, projectID int64) (*FinancialSummaryResponse, error) {
	return api.GetFinancialSummary(ctx, c.caller, projectID)
}

// GetEnrichedPOs returns a project's POs joined with their payments.
func (c *Client) GetEnrichedPOs(ctx context.Context, projectID int64) (*EnrichedPOsResponse, error) {
	return api.GetEnrichedPOs(ctx, c.caller, projectID)
}

// --------------------------------------------------------------------
// Single PO reads
// --------------------------------------------------------------------

// GetPO returns a single PO with its line items.
func (c *Client) GetPO(ctx context.Context, clientPOID int64) (*PODetailResponse, error) {
	return api.GetPO(ctx, c.caller, clientPOID)
}

// GetPODetails is GetPO plus payment status, total paid and outstanding
// amount.
func (c *Client) GetPODetails(ctx context.Context, clientPOID int64) (*PODetailResponse, error) {
	return api.GetPODetails(ctx, c.caller, clientPOID)
}

// --------------------------------------------------------------------
// Project reads and updates
// --------------------------------------------------------------------

func (c *Client) ListProjects(ctx context.Context, skip, limit int) (*ProjectsResponse, error) {
	return api.ListProjects(ctx, c.caller, skip, limit)
}

func (c *Client) GetProject(ctx context.Context, projectID int64) (*ProjectResponse, error) {
	return api.GetProject(ctx, c.caller, projectID)
}

func (c *Client) UpdateProject(ctx context.Context, projectID int64, req UpdateProjectRequest) (*ProjectResponse, error) {
	return api.UpdateProject(ctx, c.caller, projectID, req)
}

func (c *Client) DeleteProjectByID(ctx context.Context, projectID int64) (*MessageResponse, error) {
	return api.DeleteProjectByID(ctx, c.caller, projectID)
}

func (c *Client) SearchProjects(ctx context.Context, term string) (*ProjectsResponse, error) {
	return api.SearchProjects(ctx, c.caller, term)
}
