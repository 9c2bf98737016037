package types

// ------------------------------
// Request Types
// ------------------------------

// Optional numeric fields are pointers so an explicit zero still reaches the
// backend; optional strings are dropped when empty.

// CreatePORequest holds parameters for a new client PO.
type CreatePORequest struct {
	PONumber   string   `json:"po_number"`
	PODate     Date     `json:"po_date"`
	POValue    *float64 `json:"po_value,omitempty"`
	POType     string   `json:"po_type,omitempty"`
	ParentPOID *int64   `json:"parent_po_id,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

// CreateClientPORequest is the same payload under its client-PO name.
type CreateClientPORequest = CreatePORequest

// UpdatePORequest carries a partial PO update.
type UpdatePORequest struct {
	PONumber string   `json:"po_number,omitempty"`
	PODate   Date     `json:"po_date,omitempty"`
	POValue  *float64 `json:"po_value,omitempty"`
	PINumber string   `json:"pi_number,omitempty"`
	PIDate   Date     `json:"pi_date,omitempty"`
	Notes    string   `json:"notes,omitempty"`
	Status   string   `json:"status,omitempty"`
}

// LineItemRequest adds a line item to a client PO.
type LineItemRequest struct {
	ItemName  string  `json:"item_name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// LineItemUpdateRequest carries a partial line item update.
type LineItemUpdateRequest struct {
	ItemName  string   `json:"item_name,omitempty"`
	Quantity  *float64 `json:"quantity,omitempty"`
	UnitPrice *float64 `json:"unit_price,omitempty"`
}

// BulkLineItemsRequest adds up to 100 line items in one call.
type BulkLineItemsRequest struct {
	Items []LineItemRequest `json:"items"`
}

// VerbalAgreementRequest records a PI issued before a PO exists.
type VerbalAgreementRequest struct {
	PINumber string   `json:"pi_number"`
	PIDate   Date     `json:"pi_date"`
	Value    *float64 `json:"value,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// AddPOToVerbalAgreementRequest links a PO to an existing verbal agreement.
type AddPOToVerbalAgreementRequest struct {
	PONumber string `json:"po_number"`
	PODate   Date   `json:"po_date"`
}

// CreateProjectRequest holds parameters for a new project.
type CreateProjectRequest struct {
	Name      string   `json:"name"`
	Location  string   `json:"location,omitempty"`
	City      string   `json:"city,omitempty"`
	State     string   `json:"state,omitempty"`
	Country   string   `json:"country,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// CreateBillingPORequest creates the billed counterpart of a client PO.
type CreateBillingPORequest struct {
	ClientPOID   int64    `json:"client_po_id"`
	BilledValue  float64  `json:"billed_value"`
	BilledGST    *float64 `json:"billed_gst,omitempty"`
	BillingNotes string   `json:"billing_notes,omitempty"`
}

// UpdateBillingPORequest carries a partial billing PO update.
type UpdateBillingPORequest struct {
	BilledValue  *float64 `json:"billed_value,omitempty"`
	BilledGST    *float64 `json:"billed_gst,omitempty"`
	BillingNotes string   `json:"billing_notes,omitempty"`
}

// BillingLineItemRequest adds a line to a billing PO.
type BillingLineItemRequest struct {
	Description string  `json:"description"`
	Qty         float64 `json:"qty"`
	Rate        float64 `json:"rate"`
}

// ApproveBillingPORequest approves a billing PO with optional notes.
type ApproveBillingPORequest struct {
	Notes string `json:"notes,omitempty"`
}

// VendorOrderRequest creates a PO issued to a vendor.
type VendorOrderRequest struct {
	VendorID    int64    `json:"vendor_id"`
	PONumber    string   `json:"po_number"`
	PODate      Date     `json:"po_date"`
	POValue     *float64 `json:"po_value,omitempty"`
	DueDate     Date     `json:"due_date,omitempty"`
	Description string   `json:"description,omitempty"`
}

// BulkCreateVendorOrdersRequest creates several vendor orders at once.
type BulkCreateVendorOrdersRequest struct {
	Orders []VendorOrderRequest `json:"orders"`
}

// VendorOrderUpdateRequest carries a partial vendor order update.
type VendorOrderUpdateRequest struct {
	POValue       *float64 `json:"po_value,omitempty"`
	DueDate       Date     `json:"due_date,omitempty"`
	Description   string   `json:"description,omitempty"`
	WorkStatus    string   `json:"work_status,omitempty"`
	PaymentStatus string   `json:"payment_status,omitempty"`
}

// VendorOrderStatusRequest updates work and/or payment status.
type VendorOrderStatusRequest struct {
	WorkStatus    string `json:"work_status,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
}

// VendorOrderLineItemRequest adds a line item to a vendor order.
type VendorOrderLineItemRequest struct {
	ItemName  string  `json:"item_name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// VendorOrderLineItemUpdateRequest carries a partial vendor order line update.
type VendorOrderLineItemUpdateRequest struct {
	ItemName  string   `json:"item_name,omitempty"`
	Quantity  *float64 `json:"quantity,omitempty"`
	UnitPrice *float64 `json:"unit_price,omitempty"`
}

// LoginRequest exchanges credentials for a bearer token.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProjectRequest carries a partial project update.
type UpdateProjectRequest struct {
	Name      string   `json:"name,omitempty"`
	Location  string   `json:"location,omitempty"`
	City      string   `json:"city,omitempty"`
	State     string   `json:"state,omitempty"`
	Country   string   `json:"country,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// PaymentRequest records a client payment against a PO. Empty optional
// fields take the backend defaults (status pending, stage other, credit).
type PaymentRequest struct {
	PaymentDate       Date         `json:"payment_date"`
	Amount            float64      `json:"amount"`
	PaymentMode       string       `json:"payment_mode"`
	Status            PaymentState `json:"status,omitempty"`
	PaymentStage      string       `json:"payment_stage,omitempty"`
	Notes             string       `json:"notes,omitempty"`
	IsTDSDeducted     bool         `json:"is_tds_deducted,omitempty"`
	TDSAmount         *float64     `json:"tds_amount,omitempty"`
	ReceivedByAccount string       `json:"received_by_account,omitempty"`
	TransactionType   string       `json:"transaction_type,omitempty"`
	ReferenceNumber   string       `json:"reference_number,omitempty"`
}

// PaymentUpdateRequest carries a partial payment update.
type PaymentUpdateRequest struct {
	PaymentDate       Date         `json:"payment_date,omitempty"`
	Amount            *float64     `json:"amount,omitempty"`
	PaymentMode       string       `json:"payment_mode,omitempty"`
	Status            PaymentState `json:"status,omitempty"`
	PaymentStage      string       `json:"payment_stage,omitempty"`
	Notes             string       `json:"notes,omitempty"`
	IsTDSDeducted     *bool        `json:"is_tds_deducted,omitempty"`
	TDSAmount         *float64     `json:"tds_amount,omitempty"`
	ReceivedByAccount string       `json:"received_by_account,omitempty"`
	TransactionType   string       `json:"transaction_type,omitempty"`
	ReferenceNumber   string       `json:"reference_number,omitempty"`
}

// VendorRequest creates a vendor.
type VendorRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	PaymentTerms  string `json:"payment_terms,omitempty"`
}

// VendorUpdateRequest carries a partial vendor update.
type VendorUpdateRequest struct {
	Name          string `json:"name,omitempty"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	PaymentTerms  string `json:"payment_terms,omitempty"`
	Status        string `json:"status,omitempty"`
}

// VendorPaymentRequest records an outgoing payment on a vendor order.
type VendorPaymentRequest struct {
	PaymentDate     Date    `json:"payment_date"`
	Amount          float64 `json:"amount"`
	PaymentMode     string  `json:"payment_mode"`
	ReferenceNumber string  `json:"reference_number,omitempty"`
	Notes           string  `json:"notes,omitempty"`
}

// VendorPaymentUpdateRequest carries a partial vendor payment update.
type VendorPaymentUpdateRequest struct {
	PaymentDate     Date         `json:"payment_date,omitempty"`
	Amount          *float64     `json:"amount,omitempty"`
	PaymentMode     string       `json:"payment_mode,omitempty"`
	Status          PaymentState `json:"status,omitempty"`
	ReferenceNumber string       `json:"reference_number,omitempty"`
	Notes           string       `json:"notes,omitempty"`
}

// PaymentLinkRequest links an existing client payment to a vendor order.
type PaymentLinkRequest struct {
	PaymentID int64    `json:"payment_id"`
	LinkType  LinkType `json:"link_type"`
}
