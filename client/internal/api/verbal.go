package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Jinansh2608/ledger-backend/client/internal/types"
)

// CreateVerbalAgreement records a PI for a project before any PO exists.
func CreateVerbalAgreement(ctx context.Context, c *Caller, projectID, clientID int64, req types.VerbalAgreementRequest) (*types.CreateVerbalAgreementResponse, error) {
	return call[types.CreateVerbalAgreementResponse](ctx, c, request{
		op:     "create_verbal_agreement",
		method: http.MethodPost,
		path:   "/api/projects/" + id(projectID) + "/verbal-agreement",
		query:  url.Values{"client_id": {id(clientID)}},
		body:   req,
	})
}

// AddPOToVerbalAgreement links the PO that eventually arrived to an agreement.
func AddPOToVerbalAgreement(ctx context.Context, c *Caller, agreementID int64, req types.AddPOToVerbalAgreementRequest) (*types.AddPOToVerbalAgreementResponse, error) {
	return call[types.AddPOToVerbalAgreementResponse](ctx, c, request{
		op:     "add_po_to_verbal_agreement",
		method: http.MethodPut,
		path:   "/api/verbal-agreement/" + id(agreementID) + "/add-po",
		body:   req,
	})
}

// GetVerbalAgreements lists a project's verbal agreements.
func GetVerbalAgreements(ctx context.Context, c *Caller, projectID int64) (*types.GetVerbalAgreementsResponse, error) {
	return call[types.GetVerbalAgreementsResponse](ctx, c, request{
		op:     "get_verbal_agreements",
		method: http.MethodGet,
		path:   "/api/projects/" + id(projectID) + "/verbal-agreements",
	})
}
