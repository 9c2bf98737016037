package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// PaymentStatus is the reconciliation state the backend derives for a PO or
// vendor order.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPending PaymentStatus = "pending"
)

// ClientPO is the PO header returned with a client PO.
type ClientPO struct {
	POID     int64   `json:"po_id"`
	PONumber string  `json:"po_number"`
	PODate   Date    `json:"po_date"`
	POValue  float64 `json:"po_value"`
	POType   string  `json:"po_type,omitempty"`
	Notes    string  `json:"notes,omitempty"`
	Status   string  `json:"status,omitempty"`
	StoreID  string  `json:"store_id,omitempty"`
	Location string  `json:"location,omitempty"`
}

// ClientPOItem is a line of a client PO as returned with the PO itself.
type ClientPOItem struct {
	ID         int64   `json:"id,omitempty"`
	ClientPOID int64   `json:"client_po_id,omitempty"`
	ItemName   string  `json:"item_name"`
	Quantity   float64 `json:"quantity"`
	Rate       float64 `json:"rate"`
	Total      float64 `json:"total,omitempty"`
}

// LineItem is a managed client PO line item.
type LineItem struct {
	ID         int64   `json:"id,omitempty"`
	LineItemID int64   `json:"line_item_id,omitempty"`
	ItemName   string  `json:"item_name"`
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price,omitempty"`
}

// POSummary is a PO as listed globally or per project.
type POSummary struct {
	POID       int64   `json:"po_id,omitempty"`
	ClientPOID int64   `json:"client_po_id"`
	PONumber   string  `json:"po_number"`
	PODate     Date    `json:"po_date"`
	POValue    float64 `json:"po_value"`
	POType     string  `json:"po_type,omitempty"`
	Status     string  `json:"status,omitempty"`
	Notes      string  `json:"notes,omitempty"`
	ClientName string  `json:"client_name,omitempty"`
	VendorName string  `json:"vendor_name,omitempty"`
	Location   string  `json:"location,omitempty"`
	IsPrimary  bool    `json:"is_primary,omitempty"`
}

// UpdatedPO is the PO header echoed back after an update.
type UpdatedPO struct {
	POID     int64   `json:"po_id"`
	PONumber string  `json:"po_number"`
	PODate   Date    `json:"po_date"`
	POValue  float64 `json:"po_value"`
	Status   string  `json:"status,omitempty"`
}

// VerbalAgreement is a PI-backed agreement that may later gain a PO.
type VerbalAgreement struct {
	AgreementID int64   `json:"agreement_id"`
	PINumber    string  `json:"pi_number"`
	PIDate      Date    `json:"pi_date"`
	PONumber    string  `json:"po_number,omitempty"`
	PODate      Date    `json:"po_date,omitempty"`
	Value       float64 `json:"value"`
	Notes       string  `json:"notes,omitempty"`
	VendorName  string  `json:"vendor_name,omitempty"`
	ClientName  string  `json:"client_name,omitempty"`
}

// PaymentDetail is one payment received against a PO.
type PaymentDetail struct {
	PaymentID int64    `json:"payment_id"`
	Amount    float64  `json:"amount"`
	Date      Date     `json:"date"`
	Method    string   `json:"method"`
	TDS       *float64 `json:"tds,omitempty"`
}

// EnrichedPO is a project PO joined with its payment data.
type EnrichedPO struct {
	POID             int64           `json:"po_id,omitempty"`
	ClientPOID       int64           `json:"client_po_id"`
	PONumber         string          `json:"po_number"`
	PODate           Date            `json:"po_date"`
	POValue          float64         `json:"po_value"`
	TotalPaid        float64         `json:"total_paid"`
	ReceivableAmount float64         `json:"receivable_amount"`
	PaymentStatus    PaymentStatus   `json:"payment_status"`
	TotalTDS         float64         `json:"total_tds"`
	PaymentDetails   []PaymentDetail `json:"payment_details"`
	PaymentCount     int             `json:"payment_count"`
	Location         string          `json:"location,omitempty"`
}

// BillingLineItem is a line of a billing PO.
type BillingLineItem struct {
	ID          int64   `json:"id,omitempty"`
	LineItemID  string  `json:"line_item_id,omitempty"`
	Description string  `json:"description"`
	Qty         float64 `json:"qty"`
	Rate        float64 `json:"rate"`
	Total       float64 `json:"total"`
}

// BillingPO is the invoiced counterpart of a client PO.
type BillingPO struct {
	BillingPOID  string            `json:"billing_po_id"`
	PONumber     string            `json:"po_number"`
	ClientPOID   int64             `json:"client_po_id"`
	ProjectID    int64             `json:"project_id"`
	BilledValue  float64           `json:"billed_value"`
	BilledGST    float64           `json:"billed_gst"`
	BillingNotes string            `json:"billing_notes,omitempty"`
	LineItems    []BillingLineItem `json:"line_items,omitempty"`
	CreatedAt    string            `json:"created_at,omitempty"`
}

// VendorOrder is a PO issued by the business to a vendor.
type VendorOrder struct {
	VendorOrderID int64   `json:"vendor_order_id,omitempty"`
	VendorID      int64   `json:"vendor_id"`
	ProjectID     int64   `json:"project_id"`
	PONumber      string  `json:"po_number"`
	PODate        Date    `json:"po_date"`
	POValue       float64 `json:"po_value"`
	DueDate       Date    `json:"due_date,omitempty"`
	Description   string  `json:"description,omitempty"`
	WorkStatus    string  `json:"work_status,omitempty"`
	PaymentStatus string  `json:"payment_status,omitempty"`
	VendorName    string  `json:"vendor_name,omitempty"`
}

// VendorOrderLineItem is a line of a vendor order.
type VendorOrderLineItem struct {
	LineItemID int64   `json:"line_item_id,omitempty"`
	ItemName   string  `json:"item_name"`
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	Total      float64 `json:"total,omitempty"`
}

// User is the authenticated account returned at login.
type User struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// PaymentState is the clearing state of a single recorded payment.
type PaymentState string

const (
	PaymentStatePending PaymentState = "pending"
	PaymentStateCleared PaymentState = "cleared"
	PaymentStateBounced PaymentState = "bounced"
)

// LinkType tells whether a client payment linked to a vendor order flows in
// or out.
type LinkType string

const (
	LinkIncoming LinkType = "incoming"
	LinkOutgoing LinkType = "outgoing"
)

// Project groups the POs, billing POs and vendor orders of one site.
type Project struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Location  string   `json:"location,omitempty"`
	City      string   `json:"city,omitempty"`
	State     string   `json:"state,omitempty"`
	Country   string   `json:"country,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// PODetailLineItem is a line item as returned with a single PO.
type PODetailLineItem struct {
	LineItemID  int64   `json:"line_item_id"`
	ItemName    string  `json:"item_name"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
	HSNCode     string  `json:"hsn_code,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	Rate        float64 `json:"rate,omitempty"`
	GSTAmount   float64 `json:"gst_amount,omitempty"`
	GrossAmount float64 `json:"gross_amount,omitempty"`
}

// PODetail is one PO with its line items. The payment fields are filled by
// the details endpoint only.
type PODetail struct {
	ID               int64              `json:"id"`
	ClientPOID       int64              `json:"client_po_id"`
	ClientID         int64              `json:"client_id"`
	ClientName       string             `json:"client_name,omitempty"`
	ProjectID        int64              `json:"project_id,omitempty"`
	ProjectName      string             `json:"project_name,omitempty"`
	StoreID          string             `json:"store_id,omitempty"`
	PONumber         string             `json:"po_number"`
	PODate           Date               `json:"po_date,omitempty"`
	POValue          float64            `json:"po_value"`
	ReceivableAmount float64            `json:"receivable_amount"`
	Status           string             `json:"status,omitempty"`
	POType           string             `json:"po_type,omitempty"`
	ParentPOID       *int64             `json:"parent_po_id,omitempty"`
	PINumber         string             `json:"pi_number,omitempty"`
	PIDate           Date               `json:"pi_date,omitempty"`
	Notes            string             `json:"notes,omitempty"`
	CreatedAt        string             `json:"created_at,omitempty"`
	LineItems        []PODetailLineItem `json:"line_items"`

	PaymentStatus     PaymentStatus `json:"payment_status,omitempty"`
	TotalPaid         float64       `json:"total_paid,omitempty"`
	TotalTDS          float64       `json:"total_tds,omitempty"`
	OutstandingAmount float64       `json:"outstanding_amount,omitempty"`
}

// Payment is a client payment recorded against a PO. Debit transactions
// count against the PO's total paid.
type Payment struct {
	ID                int64        `json:"id"`
	ClientPOID        int64        `json:"client_po_id"`
	PaymentDate       Date         `json:"payment_date"`
	Amount            float64      `json:"amount"`
	PaymentMode       string       `json:"payment_mode"`
	ReferenceNumber   string       `json:"reference_number,omitempty"`
	Status            PaymentState `json:"status"`
	PaymentStage      string       `json:"payment_stage,omitempty"`
	Notes             string       `json:"notes,omitempty"`
	IsTDSDeducted     bool         `json:"is_tds_deducted"`
	TDSAmount         float64      `json:"tds_amount"`
	ReceivedByAccount string       `json:"received_by_account,omitempty"`
	TransactionType   string       `json:"transaction_type,omitempty"`
	CreatedAt         string       `json:"created_at,omitempty"`
}

// VendorProfile is a supplier the business issues vendor orders to. The
// totals are present on single-vendor reads only.
type VendorProfile struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	PaymentTerms  string `json:"payment_terms,omitempty"`
	Status        string `json:"status,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`

	TotalOrders     int     `json:"total_orders,omitempty"`
	TotalOrderValue float64 `json:"total_order_value,omitempty"`
	TotalPaid       float64 `json:"total_paid,omitempty"`
	Balance         float64 `json:"balance,omitempty"`
}

// VendorPayment is an outgoing payment against a vendor order. PONumber and
// OrderAmount are set in a vendor's payment history.
type VendorPayment struct {
	ID              int64        `json:"id"`
	VendorOrderID   int64        `json:"vendor_order_id"`
	PaymentDate     Date         `json:"payment_date"`
	Amount          float64      `json:"amount"`
	PaymentMode     string       `json:"payment_mode,omitempty"`
	ReferenceNumber string       `json:"reference_number,omitempty"`
	Status          PaymentState `json:"status"`
	Notes           string       `json:"notes,omitempty"`
	PONumber        string       `json:"po_number,omitempty"`
	OrderAmount     float64      `json:"order_amount,omitempty"`
	CreatedAt       string       `json:"created_at,omitempty"`
	UpdatedAt       string       `json:"updated_at,omitempty"`
}

// PaymentLink ties a client payment to a vendor order. The payment fields
// are joined in when links are listed.
type PaymentLink struct {
	ID            int64        `json:"id"`
	VendorOrderID int64        `json:"vendor_order_id"`
	PaymentID     int64        `json:"payment_id"`
	LinkType      LinkType     `json:"link_type"`
	LinkedAt      string       `json:"linked_at,omitempty"`
	Amount        float64      `json:"amount,omitempty"`
	PaymentDate   Date         `json:"payment_date,omitempty"`
	PaymentMode   string       `json:"payment_mode,omitempty"`
	PaymentStatus PaymentState `json:"payment_status,omitempty"`
}
