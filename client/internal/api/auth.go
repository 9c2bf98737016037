package api

import (
	"context"
	"net/http"

	"github.com/Jinansh2608/ledger-backend/client/internal/types"
)

// Login exchanges credentials for a bearer token.
func Login(ctx context.Context, c *Caller, username, password string) (*types.TokenResponse, error) {
	return call[types.TokenResponse](ctx, c, request{
		op:     "login",
		method: http.MethodPost,
		path:   "/api/auth/login",
		body:   types.LoginRequest{Username: username, Password: password},
	})
}

// Health reports API and database liveness.
func Health(ctx context.Context, c *Caller) (*types.HealthResponse, error) {
	return call[types.HealthResponse](ctx, c, request{
		op:     "health",
		method: http.MethodGet,
		path:   "/api/health",
	})
}
