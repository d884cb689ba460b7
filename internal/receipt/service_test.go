package receipt

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

const testUser = "7b6d35b0-9f64-4c6e-9a7a-0f6de2f3a001"

func newTestReceipt(vendor string, amount string, category string) *Receipt {
	return &Receipt{
		UserID:    testUser,
		Vendor:    vendor,
		Amount:    decimal.RequireFromString(amount),
		TaxAmount: decimal.Zero,
		Date:      "2026-02-15",
		Category:  category,
		Paid:      false,
	}
}

func TestCreateDerivesDescription(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	rec := newTestReceipt("Mercadona", "45.80", "food")
	if err := service.Create(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Description != "Factura de Mercadona" {
		t.Fatalf("unexpected description %q", rec.Description)
	}

	rec = newTestReceipt("", "10.00", "transport")
	if err := service.Create(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Description != "Factura de Transporte" {
		t.Fatalf("unexpected description %q", rec.Description)
	}
}

func TestCreateRejectsBadInput(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	bad := newTestReceipt("X", "10.00", "no-such-category")
	if err := service.Create(context.Background(), bad); err != ErrInvalidCategory {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}

	bad = newTestReceipt("X", "10.00", "food")
	bad.Date = "15/02/2026"
	if err := service.Create(context.Background(), bad); err != ErrInvalidDate {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}

	bad = newTestReceipt("X", "10.00", "food")
	bad.Amount = decimal.RequireFromString("-1")
	if err := service.Create(context.Background(), bad); err != ErrNegativeAmount {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestRoundTripLosesNothing(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	rec := newTestReceipt("Bar La Tasca", "32.50", "food")
	rec.TaxAmount = decimal.RequireFromString("6.83")
	rec.InvoiceNumber = "F-2026-0234"
	rec.Description = "Cena con equipo"
	rec.FileType = "jpg"
	rec.OCRText = "BAR LA TASCA\nTOTAL 32,50"

	if err := service.Create(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := service.Get(context.Background(), testUser, rec.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Vendor != rec.Vendor ||
		!got.Amount.Equal(rec.Amount) ||
		!got.TaxAmount.Equal(rec.TaxAmount) ||
		got.Date != rec.Date ||
		got.Category != rec.Category ||
		got.Description != rec.Description ||
		got.InvoiceNumber != rec.InvoiceNumber ||
		got.Paid != rec.Paid ||
		got.OCRText != rec.OCRText {
		t.Fatalf("round trip changed the record:\nstored %+v\ngot    %+v", rec, got)
	}
}

func TestUpdateKeepsFileMetadata(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	rec := newTestReceipt("Repsol", "60.00", "transport")
	rec.FileType = "pdf"
	rec.ImageURL = "https://files.example.com/r2/gasolina.pdf"
	rec.OCRText = "REPSOL\nTOTAL 60,00 EUR"
	if err := service.Create(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Edits send only the editable fields; the upload metadata must not be
	// wiped by a blank update payload.
	upd := newTestReceipt("Repsol Butano", "60.00", "transport")
	upd.ID = rec.ID
	upd.Description = "Gasolina"
	if err := service.Update(context.Background(), upd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := service.Get(context.Background(), testUser, rec.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Vendor != "Repsol Butano" {
		t.Fatalf("update did not apply, vendor %q", got.Vendor)
	}
	if got.FileType != "pdf" || got.ImageURL != rec.ImageURL || got.OCRText != rec.OCRText {
		t.Fatalf("update cleared file metadata: %+v", got)
	}
}

func TestTogglePaidFlipsState(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	rec := newTestReceipt("Endesa", "95.40", "services")
	if err := service.Create(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	paid, err := service.TogglePaid(context.Background(), testUser, rec.ID)
	if err != nil || !paid {
		t.Fatalf("expected paid=true, got %v err=%v", paid, err)
	}
	paid, err = service.TogglePaid(context.Background(), testUser, rec.ID)
	if err != nil || paid {
		t.Fatalf("expected paid=false, got %v err=%v", paid, err)
	}
}

func TestListFilters(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	a := newTestReceipt("Mercadona", "45.80", "food")
	b := newTestReceipt("Renfe", "45.00", "transport")
	b.Paid = true
	c := newTestReceipt("Carrefour", "92.15", "food")
	for _, r := range []*Receipt{a, b, c} {
		if err := service.Create(ctx, r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	food, err := service.List(ctx, testUser, ListFilter{Category: "food"})
	if err != nil || len(food) != 2 {
		t.Fatalf("expected 2 food receipts, got %d err=%v", len(food), err)
	}

	unpaid, err := service.List(ctx, testUser, ListFilter{Paid: "unpaid"})
	if err != nil || len(unpaid) != 2 {
		t.Fatalf("expected 2 unpaid receipts, got %d err=%v", len(unpaid), err)
	}

	search, err := service.List(ctx, testUser, ListFilter{Search: "renfe"})
	if err != nil || len(search) != 1 || search[0].Vendor != "Renfe" {
		t.Fatalf("unexpected search result %v err=%v", search, err)
	}

	other, err := service.List(ctx, "b0000000-0000-4000-8000-000000000000", ListFilter{})
	if err != nil || len(other) != 0 {
		t.Fatalf("expected no receipts for other user, got %d", len(other))
	}
}

func TestStatsAggregates(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	a := newTestReceipt("Mercadona", "100.00", "food")
	a.TaxAmount = decimal.RequireFromString("17.36")
	a.Date = "2026-01-10"
	a.Paid = true
	b := newTestReceipt("Renfe", "50.00", "transport")
	b.TaxAmount = decimal.RequireFromString("4.55")
	b.Date = "2026-02-02"
	for _, r := range []*Receipt{a, b} {
		if err := service.Create(ctx, r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	stats, err := service.Stats(ctx, testUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stats.Total.Equal(decimal.RequireFromString("150")) {
		t.Fatalf("expected total 150, got %s", stats.Total)
	}
	if !stats.TotalTax.Equal(decimal.RequireFromString("21.91")) {
		t.Fatalf("expected tax 21.91, got %s", stats.TotalTax)
	}
	if stats.UnpaidCount != 1 || !stats.UnpaidTotal.Equal(decimal.RequireFromString("50")) {
		t.Fatalf("unexpected unpaid stats %+v", stats)
	}
	if len(stats.CategoryTotals) != 2 || stats.CategoryTotals[0].Category != "food" {
		t.Fatalf("expected food to rank first, got %+v", stats.CategoryTotals)
	}
	if len(stats.MonthlyTotals) != 2 || stats.MonthlyTotals[0].Month != "2026-01" {
		t.Fatalf("expected ascending months, got %+v", stats.MonthlyTotals)
	}
}
