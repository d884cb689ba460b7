// Package extract turns raw OCR text from a photographed or scanned
// receipt/invoice into a structured invoice record using line-based
// heuristics. It is pure: no I/O, no network, no shared mutable state,
// safe for concurrent callers.
package extract

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// standardVATRate is the Spanish standard IVA rate assumed when no explicit
// tax line is found. The derived value is an assumption, not a detection;
// Invoice.TaxAssumed flags it so the review surface can say so.
const standardVATRate = 0.21

// now is swapped out in tests to pin the date/number defaults.
var now = time.Now

// Invoice is the structured result of one extraction. Every field is always
// set: undetected fields carry their documented defaults, never an error.
type Invoice struct {
	Vendor        string          `json:"vendor"`
	Amount        decimal.Decimal `json:"amount"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	TaxAssumed    bool            `json:"taxAssumed"`
	Date          string          `json:"date"` // YYYY-MM-DD
	Category      string          `json:"category"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Description   string          `json:"description"`
}

// Extract recovers vendor, amount, tax, date, invoice number and category
// from raw OCR text. It never fails: degenerate input yields the
// all-defaults record. Identical text yields identical output, except for
// the current-date and synthetic-number defaults used when detection fails.
func Extract(rawText string) Invoice {
	inv := Invoice{
		Amount:        decimal.Zero,
		TaxAmount:     decimal.Zero,
		Date:          now().Format("2006-01-02"),
		Category:      "other",
		InvoiceNumber: syntheticNumber(),
	}

	text := strings.TrimSpace(rawText)
	if len(text) < 3 {
		inv.Description = describeInvoice(inv.Vendor, inv.Category)
		return inv
	}

	lowered := strings.ToLower(text)
	lines := strings.Split(text, "\n")

	// Known brands are far more reliable than the generic heuristics and
	// resolve the category at the same time.
	if rule := matchBrand(lowered); rule != nil {
		inv.Vendor = rule.Vendor
		inv.Category = rule.Category
	} else {
		inv.Vendor = scanVendorLines(lines)
	}

	if amount, ok := detectAmount(lines, text); ok {
		inv.Amount = amount
	}

	tax, assumed := detectTax(lines, inv.Amount)
	inv.TaxAmount = tax
	inv.TaxAssumed = assumed

	if date, ok := detectDate(text); ok {
		inv.Date = date
	}

	if num, ok := detectInvoiceNumber(text); ok {
		inv.InvoiceNumber = num
	}

	if inv.Category == "other" {
		inv.Category = matchCategoryKeywords(lowered)
	}

	inv.Description = describeInvoice(inv.Vendor, inv.Category)
	return inv
}

// describeInvoice derives the description shown in the review form.
func describeInvoice(vendor, category string) string {
	if vendor != "" {
		return "Factura de " + vendor
	}
	return "Factura de " + CategoryByID(category).Name
}

// syntheticNumber builds the placeholder number used when no invoice number
// was found in the text: "T-" plus the last six digits of epoch millis.
func syntheticNumber() string {
	millis := now().UnixMilli()
	return fmt.Sprintf("T-%06d", millis%1000000)
}
