package types

import (
	"fmt"
	"io"
)

// Vendor names a client whose PO spreadsheet format the backend can parse.
// It is the {vendor} segment of /api/{vendor}-po.
type Vendor string

const (
	VendorBajaj     Vendor = "bajaj"
	VendorDavaIndia Vendor = "dava-india"
)

// Vendors lists every vendor with an upload endpoint.
var Vendors = []Vendor{VendorBajaj, VendorDavaIndia}

// ParseVendor maps a user-supplied name onto a known Vendor.
func ParseVendor(s string) (Vendor, error) {
	for _, v := range Vendors {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown vendor %q (want one of %v)", s, Vendors)
}

// UploadFile is one spreadsheet part of a multipart upload.
type UploadFile struct {
	Name    string
	Content io.Reader
}

// ParsedPO is the PO header the backend extracted from a spreadsheet. Bajaj
// sheets carry store/quantity/rate, Dava India sheets warehouse/reference.
type ParsedPO struct {
	PONumber    string   `json:"po_number"`
	PODate      Date     `json:"po_date"`
	POValue     float64  `json:"po_value"`
	StoreID     string   `json:"store_id,omitempty"`
	Location    string   `json:"location,omitempty"`
	Warehouse   string   `json:"warehouse,omitempty"`
	ReferenceNo string   `json:"reference_no,omitempty"`
	Quantity    *float64 `json:"quantity,omitempty"`
	Rate        *float64 `json:"rate,omitempty"`
}

// ParseSummary totals the parsed sheet.
type ParseSummary struct {
	TotalItems    int     `json:"total_items,omitempty"`
	TotalQuantity float64 `json:"total_quantity,omitempty"`
	TotalValue    float64 `json:"total_value,omitempty"`
}

// ParsedLineItem is a spreadsheet row turned into a PO line.
type ParsedLineItem struct {
	ItemName string  `json:"item_name"`
	Quantity float64 `json:"quantity"`
	Rate     float64 `json:"rate"`
	Total    float64 `json:"total"`
}

// POParseResponse is returned by a single-file vendor upload.
type POParseResponse struct {
	Envelope
	ClientPOID    int64            `json:"client_po_id"`
	PO            ParsedPO         `json:"po"`
	Summary       ParseSummary     `json:"summary"`
	LineItems     []ParsedLineItem `json:"line_items"`
	LineItemCount int              `json:"line_item_count"`
}

// UploadedPO is one successfully stored file of a bulk upload.
type UploadedPO struct {
	ClientPOID    int64   `json:"client_po_id"`
	Filename      string  `json:"filename"`
	PONumber      string  `json:"po_number"`
	POValue       float64 `json:"po_value"`
	StoreID       string  `json:"store_id,omitempty"`
	Location      string  `json:"location,omitempty"`
	LineItemCount int     `json:"line_item_count"`
}

// UploadFailure is one rejected file of a bulk upload.
type UploadFailure struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// BulkUploadResponse is returned by a multi-file vendor upload.
type BulkUploadResponse struct {
	Envelope
	TotalFiles  int             `json:"total_files"`
	Successful  int             `json:"successful"`
	Failed      int             `json:"failed"`
	UploadedPOs []UploadedPO    `json:"uploaded_pos"`
	Errors      []UploadFailure `json:"errors"`
}
