package export

import (
	"encoding/csv"
	"io"

	"github.com/santpatricihotel-commits/TicketIA/internal/extract"
	"github.com/santpatricihotel-commits/TicketIA/internal/receipt"
)

var csvHeader = []string{"Fecha", "Proveedor", "Nº Factura", "Descripcion", "Categoria", "Importe", "IVA", "Pagada"}

// WriteCSV streams the receipts as a UTF-8 CSV. The BOM is there so
// Excel on Windows reads the accented characters correctly.
func WriteCSV(w io.Writer, receipts []*receipt.Receipt) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range receipts {
		paid := "No"
		if r.Paid {
			paid = "Si"
		}
		row := []string{
			r.Date,
			r.Vendor,
			r.InvoiceNumber,
			r.Description,
			extract.CategoryByID(r.Category).Name,
			r.Amount.StringFixed(2),
			r.TaxAmount.StringFixed(2),
			paid,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
