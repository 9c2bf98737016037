package mcp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mcpclient "github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Jinansh2608/ledger-backend/client"
)

var expectedTools = []string{
	"health", "get_client_po", "list_pos", "list_project_pos", "get_financial_summary",
	"get_enriched_pos", "get_billing_summary", "get_project_profit_loss",
	"list_vendor_orders", "get_vendor_order_payment_summary",
}

func newTestServer(t *testing.T) *server.MCPServer {
	t.Helper()
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/health":
			_, _ = io.WriteString(w, `{"status":"UP","database":"UP","service":"po-api"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"detail":"Not Found"}`)
		}
	}))
	t.Cleanup(api.Close)

	c, err := client.New(api.URL)
	if err != nil {
		t.Fatalf("client.New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	s, err := NewServer(c, "test-po-mcp", "1.0.0")
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s
}

func initialize(ctx context.Context, t *testing.T, c *mcpclient.Client) {
	t.Helper()
	_, err := c.Initialize(ctx, mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: "2024-11-05",
			Capabilities:    mcp.ClientCapabilities{},
			ClientInfo:      mcp.Implementation{Name: "test-client", Version: "1.0.0"},
		},
	})
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
}

func TestMCPServer_InProcess(t *testing.T) {
	s := newTestServer(t)

	tr := transport.NewInProcessTransport(s)
	if err := tr.Start(context.Background()); err != nil {
		t.Fatalf("start transport: %v", err)
	}
	defer tr.Close()

	c := mcpclient.NewClient(tr)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	initialize(ctx, t, c)

	tools, err := c.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		t.Fatalf("tools/list: %v", err)
	}
	names := make(map[string]bool, len(tools.Tools))
	for _, tool := range tools.Tools {
		names[tool.Name] = true
	}
	for _, want := range expectedTools {
		if !names[want] {
			t.Errorf("tool %q not registered", want)
		}
	}

	res, err := c.CallTool(ctx, mcp.CallToolRequest{Params: mcp.CallToolParams{Name: "health"}})
	if err != nil {
		t.Fatalf("call health: %v", err)
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content = %T", res.Content[0])
	}
	var health client.HealthResponse
	if err := json.Unmarshal([]byte(text.Text), &health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health.Status != "UP" {
		t.Fatalf("health = %+v", health)
	}

	res, err = c.CallTool(ctx, mcp.CallToolRequest{Params: mcp.CallToolParams{
		Name:      "get_client_po",
		Arguments: map[string]any{"client_po_id": 404},
	}})
	if err != nil {
		t.Fatalf("call get_client_po: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error for missing PO")
	}
}

func TestMCPServer_StreamableHTTP(t *testing.T) {
	s := newTestServer(t)
	streamSrv := server.NewStreamableHTTPServer(s, server.WithEndpointPath("/mcp"))
	httpSrv := httptest.NewServer(streamSrv)
	defer httpSrv.Close()

	tr, err := transport.NewStreamableHTTP(httpSrv.URL + "/mcp")
	if err != nil {
		t.Fatalf("new transport: %v", err)
	}
	if err := tr.Start(context.Background()); err != nil {
		t.Fatalf("start transport: %v", err)
	}
	defer tr.Close()

	c := mcpclient.NewClient(tr)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	initialize(ctx, t, c)

	tools, err := c.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		t.Fatalf("tools/list: %v", err)
	}
	if len(tools.Tools) != len(expectedTools) {
		t.Fatalf("tools = %d, want %d", len(tools.Tools), len(expectedTools))
	}
}

func TestLoadServerConfig(t *testing.T) {
	t.Setenv("PO_MCP_ADDR", ":9999")
	t.Setenv("PO_MCP_TRANSPORT", "http")
	cfg, err := loadServerConfig()
	if err != nil {
		t.Fatalf("loadServerConfig: %v", err)
	}
	if cfg.Addr != ":9999" || cfg.Name != "po-mcp-server" || cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("cfg = %+v", cfg)
	}
	if useStdio(cfg.Transport) {
		t.Fatal("http transport selected stdio")
	}

	t.Setenv("PO_MCP_TRANSPORT", "carrier-pigeon")
	if _, err := loadServerConfig(); err == nil {
		t.Fatal("expected error for unknown transport")
	}
}
