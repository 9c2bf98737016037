package api

import (
	"context"
	"net/http"

	"github.com/Jinansh2608/ledger-backend/client/internal/types"
)

// GetClientPO fetches a client PO together with its line items.
func GetClientPO(ctx context.Context, c *Caller, clientPOID int64) (*types.GetClientPOResponse, error) {
	return call[types.GetClientPOResponse](ctx, c, request{
		op:     "get_client_po",
		method: http.MethodGet,
		path:   "/api/client-po/" + id(clientPOID),
	})
}
