package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/santpatricihotel-commits/TicketIA/internal/receipt"
)

func sampleReceipts() []*receipt.Receipt {
	return []*receipt.Receipt{
		{
			Vendor:        "Mercadona",
			Amount:        decimal.RequireFromString("45.80"),
			TaxAmount:     decimal.RequireFromString("4.16"),
			Date:          "2026-02-13",
			Category:      "food",
			Description:   "Factura de Mercadona",
			InvoiceNumber: "F-2026-0234",
			Paid:          true,
		},
		{
			Vendor:      "Renfe",
			Amount:      decimal.RequireFromString("32.50"),
			TaxAmount:   decimal.RequireFromString("2.95"),
			Date:        "2026-02-20",
			Category:    "transport",
			Description: "Factura de Renfe",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleReceipts()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "\xEF\xBB\xBF") {
		t.Fatal("missing UTF-8 BOM")
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "Proveedor") || !strings.Contains(lines[0], "IVA") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], "Mercadona") || !strings.Contains(lines[1], "45.80") || !strings.Contains(lines[1], "Si") {
		t.Fatalf("unexpected row %q", lines[1])
	}
	if !strings.Contains(lines[2], "Transporte") || !strings.Contains(lines[2], "No") {
		t.Fatalf("expected Spanish category name and No, got %q", lines[2])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected just the header, got %d lines", len(lines))
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sampleReceipts()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	// header + 2 receipts + totals
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0][1] != "Proveedor" {
		t.Fatalf("unexpected header row %v", rows[0])
	}
	last := rows[len(rows)-1]
	if last[0] != "TOTAL" {
		t.Fatalf("expected totals row, got %v", last)
	}
	if last[5] != "78.3" {
		t.Fatalf("expected amount total 78.3, got %q", last[5])
	}
}

func TestWriteHTMLReport(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, sampleReceipts()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Informe de Gastos",
		"Total Gastos",
		"78.30 €",  // total
		"7.11 €",   // tax total
		"71.19 €",  // tax base
		"Mercadona",
		"Transporte",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q", want)
		}
	}
}

func TestWriteHTMLEscapesVendor(t *testing.T) {
	receipts := []*receipt.Receipt{{
		Vendor:    "<script>alert(1)</script>",
		Amount:    decimal.RequireFromString("1.00"),
		TaxAmount: decimal.Zero,
		Date:      "2026-01-01",
		Category:  "other",
	}}

	var buf bytes.Buffer
	if err := WriteHTML(&buf, receipts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "<script>alert(1)</script>") {
		t.Fatal("vendor not escaped")
	}
}
