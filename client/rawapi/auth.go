package rawapi

import (
	"context"

	"github.com/Jinansh2608/ledger-backend/client/internal/api"
	"github.com/Jinansh2608/ledger-backend/client/internal/types"
)

// Login exchanges credentials for a bearer token. The token is returned,
// not stored; pass it to client.Client.SetAuthToken or an Authorization header.
func Login(ctx context.Context, hc HTTPClient, baseURL, username, password string) (*types.TokenResponse, error) {
	return api.Login(ctx, caller(hc, baseURL), username, password)
}

func Health(ctx context.Context, hc HTTPClient, baseURL string) (*types.HealthResponse, error) {
	return api.Health(ctx, caller(hc, baseURL))
}
