package xlsxexport

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Jinansh2608/ledger-backend/client"
)

func open(t *testing.T, buf *bytes.Buffer) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, sheet, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, ref)
	if err != nil {
		t.Fatalf("GetCellValue(%s!%s): %v", sheet, ref, err)
	}
	return v
}

func TestWriteLineItems(t *testing.T) {
	var buf bytes.Buffer
	items := []client.LineItem{
		{LineItemID: 1, ItemName: "Cement", Quantity: 10, UnitPrice: 5, TotalPrice: 50},
		{ID: 2, ItemName: "Sand", Quantity: 4, UnitPrice: 25},
	}
	if err := WriteLineItems(&buf, items); err != nil {
		t.Fatalf("WriteLineItems: %v", err)
	}

	f := open(t, &buf)
	if got := f.GetSheetList(); len(got) != 1 || got[0] != SheetLineItems {
		t.Fatalf("sheets = %v", got)
	}
	if v := cell(t, f, SheetLineItems, "B2"); v != "Cement" {
		t.Errorf("B2 = %q", v)
	}
	if v := cell(t, f, SheetLineItems, "A3"); v != "2" {
		t.Errorf("A3 (fallback id) = %q", v)
	}
	if v := cell(t, f, SheetLineItems, "E3"); v != "100" {
		t.Errorf("E3 (computed total) = %q", v)
	}
	if v := cell(t, f, SheetLineItems, "A4"); v != "Total" {
		t.Errorf("A4 = %q", v)
	}
	if v := cell(t, f, SheetLineItems, "E4"); v != "150" {
		t.Errorf("E4 = %q", v)
	}
}

func TestWriteVendorOrders(t *testing.T) {
	var buf bytes.Buffer
	orders := []client.VendorOrder{
		{VendorOrderID: 7, VendorName: "Acme", PONumber: "VO-1", PODate: "2024-01-15", POValue: 1000, WorkStatus: "pending"},
		{VendorOrderID: 8, VendorName: "Zen", PONumber: "VO-2", PODate: "2024-02-01", POValue: 250.5},
	}
	if err := WriteVendorOrders(&buf, orders); err != nil {
		t.Fatalf("WriteVendorOrders: %v", err)
	}

	f := open(t, &buf)
	if v := cell(t, f, SheetVendorOrders, "D2"); v != "2024-01-15" {
		t.Errorf("D2 = %q", v)
	}
	if v := cell(t, f, SheetVendorOrders, "F4"); v != "1250.5" {
		t.Errorf("F4 total = %q", v)
	}
}

func TestWriteEnrichedPOs_PaymentsSheet(t *testing.T) {
	var buf bytes.Buffer
	tds := 12.5
	pos := []client.EnrichedPO{
		{
			ClientPOID: 3, PONumber: "PO-3", PODate: "2024-03-01", POValue: 500,
			TotalPaid: 200, TotalTDS: 12.5, ReceivableAmount: 300, PaymentStatus: "partial", PaymentCount: 2,
			PaymentDetails: []client.PaymentDetail{
				{PaymentID: 31, Amount: 150, Date: "2024-03-05", Method: "neft", TDS: &tds},
				{PaymentID: 32, Amount: 50, Date: "2024-03-09", Method: "cash"},
			},
		},
		{ClientPOID: 4, PONumber: "PO-4", POValue: 100, ReceivableAmount: 100, PaymentStatus: "pending"},
	}
	if err := WriteEnrichedPOs(&buf, pos); err != nil {
		t.Fatalf("WriteEnrichedPOs: %v", err)
	}

	f := open(t, &buf)
	if got := strings.Join(f.GetSheetList(), ","); got != SheetPOs+","+SheetPayments {
		t.Fatalf("sheets = %s", got)
	}
	if v := cell(t, f, SheetPOs, "H4"); v != "400" {
		t.Errorf("receivable total = %q", v)
	}
	rows, err := f.GetRows(SheetPayments)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("payment rows = %d, want header + 2", len(rows))
	}
	if rows[1][2] != "31" || rows[1][6] != "12.5" {
		t.Errorf("first payment = %v", rows[1])
	}
	if len(rows[2]) > 6 && rows[2][6] != "" {
		t.Errorf("payment without TDS = %v", rows[2])
	}
}

func TestCheckWorkbook(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteVendorOrders(&buf, []client.VendorOrder{{VendorOrderID: 1, PONumber: "A"}}); err != nil {
		t.Fatalf("WriteVendorOrders: %v", err)
	}
	info, err := CheckWorkbook(&buf)
	if err != nil {
		t.Fatalf("CheckWorkbook: %v", err)
	}
	if info.Sheet != SheetVendorOrders || info.Header[0] != "Vendor Order ID" {
		t.Fatalf("info = %+v", info)
	}
	// one order plus the totals row
	if info.DataRows != 2 {
		t.Fatalf("DataRows = %d", info.DataRows)
	}
}

func TestCheckWorkbook_Empty(t *testing.T) {
	f := excelize.NewFile()
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	_ = f.Close()

	info, err := CheckWorkbook(&buf)
	if !errors.Is(err, ErrEmptyWorkbook) {
		t.Fatalf("err = %v, want ErrEmptyWorkbook", err)
	}
	if info == nil || info.Sheet != "Sheet1" {
		t.Fatalf("info = %+v", info)
	}
}

func TestCheckWorkbook_NotXLSX(t *testing.T) {
	if _, err := CheckWorkbook(strings.NewReader("po_number,po_date\nA,2024-01-01\n")); err == nil {
		t.Fatal("expected error for csv input")
	}
}
