package rawapi

import (
	"context"

	"github.com/Jinansh2608/ledger-backend/client/internal/api"
	"github.com/Jinansh2608/ledger-backend/client/internal/types"
)

// GetClientPO fetches a client PO with its line items.
func GetClientPO(ctx context.Context, hc HTTPClient, baseURL string, clientPOID int64) (*types.GetClientPOResponse, error) {
	return api.GetClientPO(ctx, caller(hc, baseURL), clientPOID)
}
