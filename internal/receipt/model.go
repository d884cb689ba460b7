package receipt

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is a confirmed invoice: the extractor's draft after human review,
// frozen into storage. Date is kept as YYYY-MM-DD, the format the review
// surface edits and the exports print.
type Receipt struct {
	ID            int             `json:"id"`
	UserID        string          `json:"-"`
	Vendor        string          `json:"vendor"`
	Amount        decimal.Decimal `json:"amount"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	Date          string          `json:"date"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Paid          bool            `json:"paid"`
	FileType      string          `json:"fileType"` // jpg, pdf or manual
	ImageURL      string          `json:"imageUrl,omitempty"`
	OCRText       string          `json:"ocrText,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListFilter narrows List results the same way the UI filter bar does.
type ListFilter struct {
	Search   string // matches vendor, description or invoice number
	Category string // category id, empty for all
	Paid     string // "paid", "unpaid" or empty for all
}

// CategoryTotal is one row of the per-category breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// MonthTotal is one bucket of the monthly trend, keyed YYYY-MM.
type MonthTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// Stats aggregates a user's receipts for the dashboard.
type Stats struct {
	Total          decimal.Decimal `json:"total"`
	TotalTax       decimal.Decimal `json:"totalTax"`
	Count          int             `json:"count"`
	UnpaidCount    int             `json:"unpaidCount"`
	UnpaidTotal    decimal.Decimal `json:"unpaidTotal"`
	CategoryTotals []CategoryTotal `json:"categoryTotals"`
	MonthlyTotals  []MonthTotal    `json:"monthlyTotals"`
}
