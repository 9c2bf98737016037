package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Jinansh2608/ledger-backend/client/internal/types"
)

// GetAllPOs lists every PO; a non-zero clientID filters by client.
func GetAllPOs(ctx context.Context, c *Caller, clientID int64) (*types.GetAllPOsResponse, error) {
	q := url.Values{}
	setIfNonZero(q, "client_id", clientID)
	return call[types.GetAllPOsResponse](ctx, c, request{
		op:     "get_all_pos",
		method: http.MethodGet,
		path:   "/api/po",
		query:  q,
	})
}

// CreatePOForProject creates a client PO under a project.
func CreatePOForProject(ctx context.Context, c *Caller, projectID, clientID int64, req types.CreatePORequest) (*types.CreatePOResponse, error) {
	return call[types.CreatePOResponse](ctx, c, request{
		op:     "create_po_for_project",
		method: http.MethodPost,
		path:   "/api/projects/" + id(projectID) + "/po",
		query:  url.Values{"client_id": {id(clientID)}},
		body:   req,
	})
}

// GetProjectPOs lists the POs attached to a project.
func GetProjectPOs(ctx context.Context, c *Caller, projectID int64) (*types.GetProjectPOsResponse, error) {
	return call[types.GetProjectPOsResponse](ctx, c, request{
		op:     "get_project_pos",
		method: http.MethodGet,
		path:   "/api/projects/" + id(projectID) + "/po",
	})
}

// AttachPOToProject attaches an existing PO to a project. A zero
// sequenceOrder lets the backend append it.
func AttachPOToProject(ctx context.Context, c *Caller, projectID, clientPOID, sequenceOrder int64) (*types.AttachPOResponse, error) {
	q := url.Values{}
	setIfNonZero(q, "sequence_order", sequenceOrder)
	return call[types.AttachPOResponse](ctx, c, request{
		op:     "attach_po_to_project",
		method: http.MethodPost,
		path:   "/api/projects/" + id(projectID) + "/po/" + id(clientPOID) + "/attach",
		query:  q,
	})
}

// SetPrimaryPO marks a PO as the project's primary PO.
func SetPrimaryPO(ctx context.Context, c *Caller, projectID, clientPOID int64) (*types.SetPrimaryPOResponse, error) {
	return call[types.SetPrimaryPOResponse](ctx, c, request{
		op:     "set_primary_po",
		method: http.MethodPut,
		path:   "/api/projects/" + id(projectID) + "/po/" + id(clientPOID) + "/set-primary",
	})
}

// UpdatePO applies a partial update to a PO.
func UpdatePO(ctx context.Context, c *Caller, clientPOID int64, req types.UpdatePORequest) (*types.UpdatePOResponse, error) {
	return call[types.UpdatePOResponse](ctx, c, request{
		op:     "update_po",
		method: http.MethodPut,
		path:   "/api/po/" + id(clientPOID),
		body:   req,
	})
}

// DeletePO deletes a PO and its line items.
func DeletePO(ctx context.Context, c *Caller, clientPOID int64) (*types.DeletePOResponse, error) {
	return call[types.DeletePOResponse](ctx, c, request{
		op:     "delete_po",
		method: http.MethodDelete,
		path:   "/api/po/" + id(clientPOID),
	})
}

// GetPO returns a single PO with its line items.
func GetPO(ctx context.Context, c *Caller, clientPOID int64) (*types.PODetailResponse, error) {
	return call[types.PODetailResponse](ctx, c, request{
		op:     "get_po",
		method: http.MethodGet,
		path:   "/api/po/" + id(clientPOID),
	})
}

// GetPODetails is GetPO plus the PO's payment status and outstanding amount.
func GetPODetails(ctx context.Context, c *Caller, clientPOID int64) (*types.PODetailResponse, error) {
	return call[types.PODetailResponse](ctx, c, request{
		op:     "get_po_details",
		method: http.MethodGet,
		path:   "/api/po/" + id(clientPOID) + "/details",
	})
}
