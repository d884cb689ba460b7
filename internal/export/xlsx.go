package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/santpatricihotel-commits/TicketIA/internal/extract"
	"github.com/santpatricihotel-commits/TicketIA/internal/receipt"
)

const sheetName = "Facturas"

// WriteXLSX renders the receipts as a spreadsheet with a totals row.
func WriteXLSX(w io.Writer, receipts []*receipt.Receipt) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return err
	}

	header := make([]interface{}, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(sheetName, 1, 1, bold); err != nil {
		return err
	}

	totalAmount := decimal.Zero
	totalTax := decimal.Zero
	for i, r := range receipts {
		paid := "No"
		if r.Paid {
			paid = "Si"
		}
		amount, _ := r.Amount.Round(2).Float64()
		tax, _ := r.TaxAmount.Round(2).Float64()
		row := []interface{}{
			r.Date,
			r.Vendor,
			r.InvoiceNumber,
			r.Description,
			extract.CategoryByID(r.Category).Name,
			amount,
			tax,
			paid,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
		totalAmount = totalAmount.Add(r.Amount)
		totalTax = totalTax.Add(r.TaxAmount)
	}

	amountSum, _ := totalAmount.Round(2).Float64()
	taxSum, _ := totalTax.Round(2).Float64()
	totalsRow := []interface{}{"TOTAL", "", "", "", "", amountSum, taxSum, ""}
	totalsCell := fmt.Sprintf("A%d", len(receipts)+2)
	if err := f.SetSheetRow(sheetName, totalsCell, &totalsRow); err != nil {
		return err
	}
	if err := f.SetRowStyle(sheetName, len(receipts)+2, len(receipts)+2, bold); err != nil {
		return err
	}

	if err := f.SetColWidth(sheetName, "A", "E", 18); err != nil {
		return err
	}

	return f.Write(w)
}
