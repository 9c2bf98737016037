// Package mcp serves read-only PO tools over the Model Context Protocol.
package mcp

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/Jinansh2608/ledger-backend/client"
	"github.com/Jinansh2608/ledger-backend/internal/config"
	"github.com/Jinansh2608/ledger-backend/mcp/internal/handlers"
)

// serverConfig holds the MCP-specific settings (PO_MCP_*). API access comes
// from internal/config.
type serverConfig struct {
	Name            string        `envconfig:"SERVER_NAME" default:"po-mcp-server"`
	Version         string        `envconfig:"SERVER_VERSION" default:"0.1.0"`
	Addr            string        `envconfig:"ADDR" default:":8765"`
	Transport       string        `envconfig:"TRANSPORT"` // stdio, http or empty to auto-detect
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	ReadTimeout     time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	IdleTimeout     time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"120s"`
}

func loadServerConfig() (*serverConfig, error) {
	var c serverConfig
	if err := envconfig.Process("PO_MCP", &c); err != nil {
		return nil, fmt.Errorf("load mcp config: %w", err)
	}
	switch c.Transport {
	case "", "stdio", "http":
	default:
		return nil, fmt.Errorf("PO_MCP_TRANSPORT must be stdio or http, got %q", c.Transport)
	}
	return &c, nil
}

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

// NewServer builds an MCP server whose tools call the API through c.
func NewServer(c *client.Client, name, version string) (*server.MCPServer, error) {
	s := server.NewMCPServer(name, version, server.WithToolCapabilities(true))

	for _, h := range []struct {
		name string
		h    toolRegisterer
	}{
		{"po", handlers.NewPOHandler(c)},
		{"billing", handlers.NewBillingHandler(c)},
		{"vendor", handlers.NewVendorHandler(c)},
	} {
		if err := h.h.RegisterTools(s); err != nil {
			return nil, fmt.Errorf("register %s tools: %w", h.name, err)
		}
	}
	return s, nil
}

// RunMCPServer starts the MCP server and blocks until it exits.
func RunMCPServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.Init()

	scfg, err := loadServerConfig()
	if err != nil {
		return err
	}

	opts := []client.Option{
		client.WithHTTPTimeout(cfg.HTTPTimeout),
		client.WithDebugLogging(cfg.Debug),
		client.WithRetry(2),
	}
	if cfg.APIToken != "" {
		opts = append(opts, client.WithAuthToken(cfg.APIToken))
	}
	poClient, err := client.New(cfg.APIURL, opts...)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer func() { _ = poClient.Close() }()
	log.Info().Str("api_url", poClient.BaseURL()).Msg("PO client created")

	s, err := NewServer(poClient, scfg.Name, scfg.Version)
	if err != nil {
		return err
	}

	if useStdio(scfg.Transport) {
		log.Info().Msg("starting PO MCP server (stdio transport)")
		return server.ServeStdio(s)
	}
	return serveHTTP(s, scfg)
}

func serveHTTP(s *server.MCPServer, cfg *serverConfig) error {
	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(30*time.Second),
	)
	srv := &http.Server{
		Addr:        cfg.Addr,
		Handler:     streamSrv,
		ReadTimeout: cfg.ReadTimeout,
		// No WriteTimeout: responses may stream.
		IdleTimeout: cfg.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("starting PO MCP server (streamable HTTP)")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}
	if err := streamSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mcp server shutdown")
	}
	log.Info().Msg("PO MCP server stopped")
	return nil
}

// useStdio honours an explicit transport, else picks stdio when stdin is not
// a terminal (the server was launched by an MCP host).
func useStdio(transport string) bool {
	switch transport {
	case "stdio":
		return true
	case "http":
		return false
	}
	if fi, err := os.Stdin.Stat(); err == nil {
		return fi.Mode()&os.ModeCharDevice == 0
	}
	return false
}
