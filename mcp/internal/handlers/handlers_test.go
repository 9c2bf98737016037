package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Jinansh2608/ledger-backend/client"
)

// stubAPI serves fixed bodies keyed by "METHOD path?query".
func stubAPI(t *testing.T, routes map[string]string) *client.Client {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		if r.URL.RawQuery != "" {
			key += "?" + r.URL.RawQuery
		}
		body, ok := routes[key]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"detail":"no route `+key+`"}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(ts.Close)

	c, err := client.New(ts.URL)
	if err != nil {
		t.Fatalf("client.New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func callReq(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: args}}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) == 0 {
		t.Fatalf("empty result")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", res.Content[0])
	}
	return tc.Text
}

func TestGetClientPOTool(t *testing.T) {
	c := stubAPI(t, map[string]string{
		"GET /api/client-po/12": `{"status":"SUCCESS","po":{"po_id":12,"po_number":"PO-12","po_value":900},"line_items":[]}`,
	})
	h := NewPOHandler(c)

	res, err := h.handleGetClientPO(context.Background(), callReq(map[string]any{"client_po_id": float64(12)}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if res.IsError {
		t.Fatalf("tool error: %s", resultText(t, res))
	}
	var got client.GetClientPOResponse
	if err := json.Unmarshal([]byte(resultText(t, res)), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.PO == nil || got.PO.PONumber != "PO-12" {
		t.Fatalf("po = %+v", got.PO)
	}
}

func TestGetClientPOTool_APIError(t *testing.T) {
	c := stubAPI(t, map[string]string{})
	h := NewPOHandler(c)

	res, err := h.handleGetClientPO(context.Background(), callReq(map[string]any{"client_po_id": "99"}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error")
	}
	if txt := resultText(t, res); !strings.Contains(txt, "no route GET /api/client-po/99") {
		t.Fatalf("text = %q", txt)
	}
}

func TestIDArgumentValidation(t *testing.T) {
	h := NewPOHandler(stubAPI(t, map[string]string{}))
	for name, args := range map[string]map[string]any{
		"missing":  {},
		"fraction": {"project_id": 1.5},
		"negative": {"project_id": float64(-3)},
		"text":     {"project_id": "abc"},
		"bool":     {"project_id": true},
	} {
		res, err := h.handleFinancialSummary(context.Background(), callReq(args))
		if err != nil {
			t.Fatalf("%s: handler error: %v", name, err)
		}
		if !res.IsError {
			t.Errorf("%s: expected tool error", name)
		}
	}
}

func TestListPOsTool_OptionalClient(t *testing.T) {
	c := stubAPI(t, map[string]string{
		"GET /api/po":             `{"status":"SUCCESS","pos":[],"po_count":0}`,
		"GET /api/po?client_id=4": `{"status":"SUCCESS","pos":[{"client_po_id":1,"po_number":"A"}],"po_count":1}`,
	})
	h := NewPOHandler(c)

	for _, args := range []map[string]any{{}, {"client_id": float64(4)}} {
		res, err := h.handleListPOs(context.Background(), callReq(args))
		if err != nil || res.IsError {
			t.Fatalf("args %v: err=%v res=%v", args, err, res)
		}
	}
}

func TestProjectTools(t *testing.T) {
	c := stubAPI(t, map[string]string{
		"GET /api/projects/5/po":                  `{"status":"SUCCESS","project_id":5,"pos":[],"total_po_count":0}`,
		"GET /api/projects/5/financial-summary":   `{"status":"SUCCESS","project_id":5}`,
		"GET /api/projects/5/po/enriched":         `{"status":"SUCCESS","project_id":5,"pos":[]}`,
		"GET /api/projects/5/billing-summary":     `{"status":"SUCCESS","project_id":5}`,
		"GET /api/projects/5/billing-pl-analysis": `{"status":"SUCCESS","project_id":5}`,
		"GET /api/projects/5/vendor-orders":       `{"status":"SUCCESS","project_id":5,"vendor_orders":[]}`,
	})
	po, billing, vendor := NewPOHandler(c), NewBillingHandler(c), NewVendorHandler(c)
	args := callReq(map[string]any{"project_id": float64(5)})

	tools := map[string]func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error){
		"list_project_pos":        po.handleListProjectPOs,
		"get_financial_summary":   po.handleFinancialSummary,
		"get_enriched_pos":        po.handleEnrichedPOs,
		"get_billing_summary":     billing.handleBillingSummary,
		"get_project_profit_loss": billing.handleProfitLoss,
		"list_vendor_orders":      vendor.handleListVendorOrders,
	}
	for name, fn := range tools {
		res, err := fn(context.Background(), args)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if res.IsError {
			t.Errorf("%s: %s", name, resultText(t, res))
			continue
		}
		var payload map[string]any
		if err := json.Unmarshal([]byte(resultText(t, res)), &payload); err != nil {
			t.Errorf("%s: invalid json: %v", name, err)
		}
	}
}

func TestVendorPaymentSummaryTool(t *testing.T) {
	c := stubAPI(t, map[string]string{
		"GET /api/vendor-orders/8/payment-summary": `{"status":"SUCCESS","summary":{"total_po_value":100,"total_paid":40,"outstanding":60,"payment_status":"partial"}}`,
	})
	res, err := NewVendorHandler(c).handlePaymentSummary(context.Background(), callReq(map[string]any{"vendor_order_id": 8}))
	if err != nil || res.IsError {
		t.Fatalf("err=%v res=%v", err, res)
	}
	var got client.VendorOrderPaymentSummaryResponse
	if err := json.Unmarshal([]byte(resultText(t, res)), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Summary.Outstanding != 60 {
		t.Fatalf("summary = %+v", got.Summary)
	}
}
