// Package xlsxexport writes PO data to .xlsx workbooks and sanity-checks
// spreadsheets before they are uploaded.
package xlsxexport

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Jinansh2608/ledger-backend/client"
)

// Sheet names used by the exports.
const (
	SheetLineItems    = "Line Items"
	SheetVendorOrders = "Vendor Orders"
	SheetPOs          = "POs"
	SheetPayments     = "Payments"
)

var (
	lineItemHeaders    = []string{"Line Item ID", "Item", "Quantity", "Unit Price", "Total"}
	vendorOrderHeaders = []string{"Vendor Order ID", "Vendor", "PO Number", "PO Date", "Due Date", "PO Value", "Work Status", "Payment Status", "Description"}
	poHeaders          = []string{"Client PO ID", "PO Number", "PO Date", "Location", "PO Value", "Paid", "TDS", "Receivable", "Payment Status", "Payments"}
	paymentHeaders     = []string{"Client PO ID", "PO Number", "Payment ID", "Date", "Method", "Amount", "TDS"}
)

// ErrEmptyWorkbook is returned by CheckWorkbook when the active sheet has no
// data rows.
var ErrEmptyWorkbook = errors.New("workbook has no data rows")

// WriteLineItems writes a client PO's line items with a totals row.
func WriteLineItems(w io.Writer, items []client.LineItem) error {
	rows := make([][]any, 0, len(items))
	var total float64
	for _, it := range items {
		line := it.TotalPrice
		if line == 0 {
			line = it.Quantity * it.UnitPrice
		}
		total += line
		rows = append(rows, []any{lineItemID(it), it.ItemName, it.Quantity, it.UnitPrice, line})
	}
	return write(w, []sheet{{
		name:    SheetLineItems,
		headers: lineItemHeaders,
		rows:    rows,
		totals:  map[int]float64{4: total},
		widths:  []float64{12, 40, 10, 12, 14},
	}})
}

// WriteVendorOrders writes a project's vendor orders with a totals row.
func WriteVendorOrders(w io.Writer, orders []client.VendorOrder) error {
	rows := make([][]any, 0, len(orders))
	var total float64
	for _, o := range orders {
		total += o.POValue
		rows = append(rows, []any{
			o.VendorOrderID, o.VendorName, o.PONumber, string(o.PODate), string(o.DueDate),
			o.POValue, o.WorkStatus, o.PaymentStatus, o.Description,
		})
	}
	return write(w, []sheet{{
		name:    SheetVendorOrders,
		headers: vendorOrderHeaders,
		rows:    rows,
		totals:  map[int]float64{5: total},
		widths:  []float64{14, 24, 18, 12, 12, 14, 14, 14, 40},
	}})
}

// WriteEnrichedPOs writes a project's POs on one sheet and every recorded
// payment on a second.
func WriteEnrichedPOs(w io.Writer, pos []client.EnrichedPO) error {
	poRows := make([][]any, 0, len(pos))
	var payRows [][]any
	var value, paid, tds, receivable float64
	for _, po := range pos {
		value += po.POValue
		paid += po.TotalPaid
		tds += po.TotalTDS
		receivable += po.ReceivableAmount
		poRows = append(poRows, []any{
			po.ClientPOID, po.PONumber, string(po.PODate), po.Location, po.POValue,
			po.TotalPaid, po.TotalTDS, po.ReceivableAmount, string(po.PaymentStatus), po.PaymentCount,
		})
		for _, p := range po.PaymentDetails {
			var t any
			if p.TDS != nil {
				t = *p.TDS
			}
			payRows = append(payRows, []any{po.ClientPOID, po.PONumber, p.PaymentID, string(p.Date), p.Method, p.Amount, t})
		}
	}
	return write(w, []sheet{
		{
			name:    SheetPOs,
			headers: poHeaders,
			rows:    poRows,
			totals:  map[int]float64{4: value, 5: paid, 6: tds, 7: receivable},
			widths:  []float64{12, 18, 12, 20, 14, 14, 12, 14, 14, 10},
		},
		{
			name:    SheetPayments,
			headers: paymentHeaders,
			rows:    payRows,
			widths:  []float64{12, 18, 12, 12, 14, 14, 12},
		},
	})
}

func lineItemID(it client.LineItem) int64 {
	if it.LineItemID != 0 {
		return it.LineItemID
	}
	return it.ID
}

// WorkbookInfo describes the active sheet of a workbook.
type WorkbookInfo struct {
	Sheet    string
	Sheets   []string
	Header   []string
	DataRows int
}

// CheckWorkbook opens r as an .xlsx workbook and reports its active sheet.
// It fails if the file is not a workbook or has a header but no data.
func CheckWorkbook(r io.Reader) (*WorkbookInfo, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	name := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}

	info := &WorkbookInfo{Sheet: name, Sheets: f.GetSheetList()}
	for i, row := range rows {
		if blank(row) {
			continue
		}
		if info.Header == nil {
			info.Header = rows[i]
			continue
		}
		info.DataRows++
	}
	if info.DataRows == 0 {
		return info, ErrEmptyWorkbook
	}
	return info, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
