package types

import "encoding/json"

// ------------------------------
// Response Types
// ------------------------------

// MessageResponse is returned by endpoints that only acknowledge an action.
type MessageResponse struct {
	Envelope
}

// GetClientPOResponse wraps GET /api/client-po/{id}.
type GetClientPOResponse struct {
	Envelope
	PO         *ClientPO      `json:"po,omitempty"`
	LineItems  []ClientPOItem `json:"line_items,omitempty"`
	ClientPOID int64          `json:"client_po_id,omitempty"`
	ClientName string         `json:"client_name,omitempty"`
	VendorName string         `json:"vendor_name,omitempty"`
	Location   string         `json:"location,omitempty"`
}

// LineItemResponse is returned when a line item is added or updated.
type LineItemResponse struct {
	Envelope
	LineItem *LineItem `json:"line_item,omitempty"`
}

// GetLineItemsResponse lists the line items of a client PO.
type GetLineItemsResponse struct {
	Envelope
	ClientPOID    int64      `json:"client_po_id"`
	LineItems     []LineItem `json:"line_items"`
	LineItemCount int        `json:"line_item_count"`
	TotalValue    float64    `json:"total_value"`
}

// FailedLineItem explains why one item of a bulk add was rejected.
type FailedLineItem struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// BulkLineItemsResponse reports a bulk add; Status is PARTIAL_SUCCESS when
// some items were rejected.
type BulkLineItemsResponse struct {
	Envelope
	LineItems   []LineItem       `json:"line_items"`
	FailedCount int              `json:"failed_count"`
	FailedItems []FailedLineItem `json:"failed_items"`
}

// GetAllPOsResponse lists every PO, optionally filtered by client.
type GetAllPOsResponse struct {
	Envelope
	POs        []POSummary `json:"pos"`
	TotalCount int         `json:"total_count"`
	TotalValue float64     `json:"total_value"`
}

// CreatePOResponse acknowledges a PO created under a project.
type CreatePOResponse struct {
	Envelope
	ClientPOID int64  `json:"client_po_id"`
	PONumber   string `json:"po_number"`
	POType     string `json:"po_type"`
}

// GetProjectPOsResponse lists the POs of a project.
type GetProjectPOsResponse struct {
	Envelope
	ProjectID         int64       `json:"project_id"`
	POs               []POSummary `json:"pos"`
	TotalPOCount      int         `json:"total_po_count"`
	TotalProjectValue float64     `json:"total_project_value"`
	PrimaryPO         *POSummary  `json:"primary_po,omitempty"`
}

// AttachPOResponse acknowledges attaching a PO to a project.
type AttachPOResponse struct {
	Envelope
	SequenceOrder int `json:"sequence_order"`
}

// SetPrimaryPOResponse acknowledges a primary PO change.
type SetPrimaryPOResponse struct {
	Envelope
	PrimaryPOID int64 `json:"primary_po_id"`
}

// UpdatePOResponse echoes the updated PO.
type UpdatePOResponse struct {
	Envelope
	PO *UpdatedPO `json:"po,omitempty"`
}

// DeletePOResponse acknowledges a PO deletion.
type DeletePOResponse struct {
	Envelope
	ClientPOID int64 `json:"client_po_id"`
}

// CreateVerbalAgreementResponse acknowledges a new verbal agreement.
type CreateVerbalAgreementResponse struct {
	Envelope
	AgreementID int64  `json:"agreement_id"`
	PINumber    string `json:"pi_number"`
	PIDate      Date   `json:"pi_date"`
}

// AddPOToVerbalAgreementResponse acknowledges linking a PO to an agreement.
type AddPOToVerbalAgreementResponse struct {
	Envelope
	AgreementID int64  `json:"agreement_id"`
	PINumber    string `json:"pi_number"`
	PONumber    string `json:"po_number"`
	PODate      Date   `json:"po_date"`
}

// GetVerbalAgreementsResponse lists the verbal agreements of a project.
type GetVerbalAgreementsResponse struct {
	Envelope
	ProjectID           int64             `json:"project_id"`
	Agreements          []VerbalAgreement `json:"agreements"`
	TotalAgreementCount int               `json:"total_agreement_count"`
	TotalAgreementValue float64           `json:"total_agreement_value"`
}

// CreateProjectResponse acknowledges a new project.
type CreateProjectResponse struct {
	Envelope
	ProjectID int64  `json:"project_id"`
	Name      string `json:"name"`
}

// DeleteProjectResponse acknowledges a project deletion and its cascade.
type DeleteProjectResponse struct {
	Envelope
	ProjectID  int64 `json:"project_id"`
	POsDeleted int   `json:"pos_deleted"`
}

// FinancialData is the server-computed money view of a project.
type FinancialData struct {
	TotalPOValue           float64 `json:"total_po_value"`
	TotalAgreementValue    float64 `json:"total_agreement_value"`
	TotalProjectValue      float64 `json:"total_project_value"`
	Documents              int     `json:"documents"`
	VerbalAgreements       int     `json:"verbal_agreements"`
	TotalCollected         float64 `json:"total_collected"`
	OutstandingAmount      float64 `json:"outstanding_amount"`
	NetProfit              float64 `json:"net_profit"`
	ProfitMarginPercentage float64 `json:"profit_margin_percentage"`
	ActiveOrders           int     `json:"active_orders"`
	VendorCount            int     `json:"vendor_count"`
	ClientCount            int     `json:"client_count"`
}

// FinancialPO is a PO line of the financial summary.
type FinancialPO struct {
	POID       int64   `json:"po_id,omitempty"`
	ClientPOID int64   `json:"client_po_id"`
	PONumber   string  `json:"po_number"`
	POValue    float64 `json:"po_value"`
	PODate     Date    `json:"po_date"`
	Status     string  `json:"status,omitempty"`
	Location   string  `json:"location,omitempty"`
}

// FinancialAgreement is a verbal agreement line of the financial summary.
type FinancialAgreement struct {
	AgreementID int64   `json:"agreement_id"`
	PINumber    string  `json:"pi_number"`
	PIDate      Date    `json:"pi_date"`
	Value       float64 `json:"value"`
}

// FinancialPOGroup totals the POs of a project.
type FinancialPOGroup struct {
	Count      int           `json:"count"`
	TotalValue float64       `json:"total_value"`
	Orders     []FinancialPO `json:"orders"`
}

// FinancialAgreementGroup totals the verbal agreements of a project.
type FinancialAgreementGroup struct {
	Count      int                  `json:"count"`
	TotalValue float64              `json:"total_value"`
	Agreements []FinancialAgreement `json:"agreements"`
}

// FinancialSummaryResponse wraps GET /api/projects/{id}/financial-summary.
type FinancialSummaryResponse struct {
	Envelope
	ProjectID        int64                   `json:"project_id"`
	FinancialSummary FinancialData           `json:"financial_summary"`
	PurchaseOrders   FinancialPOGroup        `json:"purchase_orders"`
	VerbalAgreements FinancialAgreementGroup `json:"verbal_agreements"`
}

// PaymentStatusCounts counts enriched POs per payment status.
type PaymentStatusCounts struct {
	PaidCount    int `json:"paid_count"`
	PartialCount int `json:"partial_count"`
	PendingCount int `json:"pending_count"`
}

// EnrichedPOsResponse wraps GET /api/projects/{id}/po/enriched.
type EnrichedPOsResponse struct {
	Envelope
	ProjectID         int64               `json:"project_id"`
	POs               []EnrichedPO        `json:"pos"`
	TotalPOCount      int                 `json:"total_po_count"`
	TotalProjectValue float64             `json:"total_project_value"`
	TotalPaid         float64             `json:"total_paid"`
	TotalReceivable   float64             `json:"total_receivable"`
	Summary           PaymentStatusCounts `json:"summary"`
}

// BillingPOResponse is returned when a billing PO is created or updated.
type BillingPOResponse struct {
	Envelope
	BillingPO *BillingPO `json:"billing_po,omitempty"`
}

// GetBillingPOResponse wraps GET /api/billing-po/{id}. Some backend versions
// nest the record under data instead of billing_po.
type GetBillingPOResponse struct {
	Envelope
	BillingPO *BillingPO      `json:"billing_po,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// BillingLineItemResponse is returned when a billing line is added.
type BillingLineItemResponse struct {
	Envelope
	LineItem *BillingLineItem `json:"line_item,omitempty"`
}

// GetBillingLineItemsResponse lists the lines of a billing PO.
type GetBillingLineItemsResponse struct {
	Envelope
	BillingPOID   string            `json:"billing_po_id"`
	LineItemCount int               `json:"line_item_count"`
	TotalValue    float64           `json:"total_value"`
	LineItems     []BillingLineItem `json:"line_items"`
}

// BillingFinancial is a total/gst/net triple; any part may be absent.
type BillingFinancial struct {
	Total *float64 `json:"total,omitempty"`
	GST   *float64 `json:"gst,omitempty"`
	Net   *float64 `json:"net,omitempty"`
}

// BillingDelta compares billed against originally ordered value.
type BillingDelta struct {
	DeltaValue          float64 `json:"delta_value"`
	DeltaPercent        float64 `json:"delta_percent"`
	VendorCosts         float64 `json:"vendor_costs"`
	Profit              float64 `json:"profit"`
	ProfitMarginPercent float64 `json:"profit_margin_percent"`
	FinalRevenue        float64 `json:"final_revenue"`
}

// BillingSummary is the billing view of a project.
type BillingSummary struct {
	OriginalPO       BillingFinancial `json:"original_po"`
	BillingPO        BillingFinancial `json:"billing_po"`
	FinancialSummary BillingDelta     `json:"financial_summary"`
}

// ProjectBillingSummaryResponse wraps GET /api/projects/{id}/billing-summary.
type ProjectBillingSummaryResponse struct {
	Envelope
	ProjectID int64          `json:"project_id"`
	Data      BillingSummary `json:"data"`
}

// ProfitLossAnalysis is the server-side P&L breakdown of a project.
type ProfitLossAnalysis struct {
	Baseline struct {
		POValue float64 `json:"po_value"`
	} `json:"baseline"`
	Billing struct {
		BilledValue float64 `json:"billed_value"`
	} `json:"billing"`
	Variance struct {
		Delta        float64 `json:"delta"`
		DeltaPercent float64 `json:"delta_percent"`
		Direction    string  `json:"direction"`
	} `json:"variance"`
	Costs struct {
		VendorCosts float64 `json:"vendor_costs"`
	} `json:"costs"`
	ProfitLoss struct {
		Amount        float64 `json:"amount"`
		MarginPercent float64 `json:"margin_percent"`
		Status        string  `json:"status"`
	} `json:"profit_loss"`
	Totals struct {
		Revenue float64 `json:"revenue"`
		Costs   float64 `json:"costs"`
		Profit  float64 `json:"profit"`
	} `json:"totals"`
}

// ProjectProfitLossResponse wraps GET /api/projects/{id}/billing-pl-analysis.
type ProjectProfitLossResponse struct {
	Envelope
	ProjectID int64              `json:"project_id"`
	Analysis  ProfitLossAnalysis `json:"analysis"`
}

// PLAnalysisData is the flattened P&L view served at /pl-analysis.
type PLAnalysisData struct {
	TotalPOValue           float64             `json:"total_po_value"`
	TotalBilled            float64             `json:"total_billed"`
	TotalVendorCosts       float64             `json:"total_vendor_costs"`
	NetProfit              float64             `json:"net_profit"`
	ProfitMarginPercentage float64             `json:"profit_margin_percentage"`
	Variance               float64             `json:"variance"`
	VariancePercentage     float64             `json:"variance_percentage"`
	OriginalBudget         float64             `json:"original_budget"`
	FinalRevenue           float64             `json:"final_revenue"`
	Analysis               *ProfitLossAnalysis `json:"analysis,omitempty"`
}

// ProjectPLAnalysisResponse wraps GET /api/projects/{id}/pl-analysis.
type ProjectPLAnalysisResponse struct {
	Envelope
	ProjectID int64          `json:"project_id"`
	Data      PLAnalysisData `json:"data"`
}

// ApproveBillingPOResponse acknowledges a billing PO approval.
type ApproveBillingPOResponse struct {
	Envelope
	Data json.RawMessage `json:"data,omitempty"`
}

// VendorOrderResponse carries a single vendor order.
type VendorOrderResponse struct {
	Envelope
	VendorOrder *VendorOrder `json:"vendor_order,omitempty"`
}

// BulkCreateVendorOrdersResponse acknowledges a bulk vendor order create.
type BulkCreateVendorOrdersResponse struct {
	Envelope
	VendorOrders []VendorOrder `json:"vendor_orders"`
	Count        int           `json:"count"`
}

// ProjectVendorOrdersResponse lists the vendor orders of a project.
type ProjectVendorOrdersResponse struct {
	Envelope
	ProjectID    int64         `json:"project_id"`
	VendorOrders []VendorOrder `json:"vendor_orders"`
	TotalOrders  int           `json:"total_orders"`
	TotalValue   float64       `json:"total_value"`
}

// VendorOrderLineItemResponse is returned when a vendor order line is added
// or updated.
type VendorOrderLineItemResponse struct {
	Envelope
	LineItem *VendorOrderLineItem `json:"line_item,omitempty"`
}

// VendorOrderLineItemsResponse lists the lines of a vendor order.
type VendorOrderLineItemsResponse struct {
	Envelope
	VendorOrderID int64                 `json:"vendor_order_id"`
	LineItems     []VendorOrderLineItem `json:"line_items"`
	LineItemCount int                   `json:"line_item_count"`
	TotalValue    float64               `json:"total_value"`
}

// VendorOrderPaymentSummary reconciles a vendor order against payments made.
type VendorOrderPaymentSummary struct {
	TotalPOValue  float64       `json:"total_po_value"`
	TotalPaid     float64       `json:"total_paid"`
	Outstanding   float64       `json:"outstanding"`
	PaymentStatus PaymentStatus `json:"payment_status"`
}

// VendorOrderPaymentSummaryResponse wraps the payment-summary sub-resource.
type VendorOrderPaymentSummaryResponse struct {
	Envelope
	Summary VendorOrderPaymentSummary `json:"summary"`
}

// VendorOrderProfitAnalysisResponse wraps the profit-analysis sub-resource.
type VendorOrderProfitAnalysisResponse struct {
	Envelope
	VendorOrderID  int64                      `json:"vendor_order_id"`
	POValue        float64                    `json:"po_value"`
	ProfitAnalysis *VendorOrderPaymentSummary `json:"profit_analysis,omitempty"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Envelope
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// HealthResponse reports API and database liveness. Its status is UP or
// DEGRADED rather than an Envelope status. Timestamps are naive UTC ISO
// strings, which time.Time cannot decode.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Database  string `json:"database"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// ProjectResponse wraps a single project.
type ProjectResponse struct {
	Envelope
	Project *Project `json:"project,omitempty"`
}

// ProjectsResponse lists projects.
type ProjectsResponse struct {
	Envelope
	ProjectCount int       `json:"project_count"`
	Projects     []Project `json:"projects"`
}

// PODetailResponse wraps a single PO read.
type PODetailResponse struct {
	Envelope
	Data *PODetail `json:"data,omitempty"`
}

// CreatePaymentResponse acknowledges a recorded PO payment.
type CreatePaymentResponse struct {
	Envelope
	PaymentID       int64        `json:"payment_id"`
	PaymentDate     Date         `json:"payment_date"`
	Amount          float64      `json:"amount"`
	PaymentMode     string       `json:"payment_mode"`
	PaymentStage    string       `json:"payment_stage"`
	PaymentStatus   PaymentState `json:"payment_status"`
	TransactionType string       `json:"transaction_type"`
}

// POPaymentTotals summarises the cleared payments of a PO.
type POPaymentTotals struct {
	TotalPaid    float64 `json:"total_paid"`
	TotalTDS     float64 `json:"total_tds"`
	ClearedCount int     `json:"cleared_count"`
	PendingCount int     `json:"pending_count"`
	BouncedCount int     `json:"bounced_count"`
}

// POPaymentsResponse lists the payments of a PO.
type POPaymentsResponse struct {
	Envelope
	POID         int64           `json:"po_id"`
	Payments     []Payment       `json:"payments"`
	PaymentCount int             `json:"payment_count"`
	Summary      POPaymentTotals `json:"summary"`
}

// PaymentsPageResponse is one page of all payments.
type PaymentsPageResponse struct {
	Envelope
	Payments     []Payment `json:"payments"`
	PaymentCount int       `json:"payment_count"`
	TotalCount   int       `json:"total_count"`
	Skip         int       `json:"skip"`
	Limit        int       `json:"limit"`
}

// VendorResponse wraps a single vendor.
type VendorResponse struct {
	Envelope
	Vendor *VendorProfile `json:"vendor,omitempty"`
}

// VendorsResponse lists vendors.
type VendorsResponse struct {
	Envelope
	VendorCount int             `json:"vendor_count"`
	Vendors     []VendorProfile `json:"vendors"`
}

// VendorPaymentHistoryResponse lists every payment made to a vendor.
type VendorPaymentHistoryResponse struct {
	Envelope
	VendorID     int64           `json:"vendor_id"`
	Payments     []VendorPayment `json:"payments"`
	PaymentCount int             `json:"payment_count"`
}

// VendorPayables is what the business owes a vendor.
type VendorPayables struct {
	VendorID        int64   `json:"vendor_id"`
	TotalOrderValue float64 `json:"total_order_value"`
	TotalPaid       float64 `json:"total_paid"`
	TotalPayable    float64 `json:"total_payable"`
}

// VendorPayablesResponse wraps a vendor's payment summary.
type VendorPayablesResponse struct {
	Envelope
	VendorID int64           `json:"vendor_id"`
	Data     *VendorPayables `json:"data,omitempty"`
}

// VendorPaymentResponse wraps a created or updated vendor payment.
type VendorPaymentResponse struct {
	Envelope
	Payment *VendorPayment `json:"payment,omitempty"`
}

// VendorOrderPaymentTotals splits a vendor order's payments by state.
type VendorOrderPaymentTotals struct {
	TotalCleared float64 `json:"total_cleared"`
	TotalPending float64 `json:"total_pending"`
	TotalBounced float64 `json:"total_bounced"`
	ClearedCount int     `json:"cleared_count"`
	PendingCount int     `json:"pending_count"`
	BouncedCount int     `json:"bounced_count"`
}

// VendorOrderPaymentsResponse lists the outgoing payments of a vendor order.
type VendorOrderPaymentsResponse struct {
	Envelope
	VendorOrderID int64                    `json:"vendor_order_id"`
	Payments      []VendorPayment          `json:"payments"`
	PaymentCount  int                      `json:"payment_count"`
	Summary       VendorOrderPaymentTotals `json:"summary"`
}

// PaymentLinkResponse wraps a newly created payment link.
type PaymentLinkResponse struct {
	Envelope
	Link *PaymentLink `json:"link,omitempty"`
}

// LinkedPaymentsResponse lists the client payments linked to a vendor order.
type LinkedPaymentsResponse struct {
	Envelope
	VendorOrderID    int64         `json:"vendor_order_id"`
	IncomingPayments []PaymentLink `json:"incoming_payments"`
	OutgoingPayments []PaymentLink `json:"outgoing_payments"`
	TotalLinked      int           `json:"total_linked"`
}
