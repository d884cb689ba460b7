package export

import (
	"html/template"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/santpatricihotel-commits/TicketIA/internal/extract"
	"github.com/santpatricihotel-commits/TicketIA/internal/receipt"
)

// reportRow is one table line in the printable report.
type reportRow struct {
	Date          string
	Vendor        string
	InvoiceNumber string
	Description   string
	Category      string
	Emoji         string
	Amount        string
	TaxAmount     string
	Paid          bool
}

type reportData struct {
	GeneratedAt string
	Count       int
	Total       string
	TotalTax    string
	TaxBase     string
	Rows        []reportRow
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Informe de Gastos</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 40px; color: #111827; }
  h1 { font-size: 22px; }
  .meta { color: #6b7280; font-size: 13px; margin-bottom: 24px; }
  .cards { display: flex; gap: 16px; margin-bottom: 32px; }
  .card { flex: 1; border: 1px solid #e5e7eb; border-radius: 8px; padding: 16px; }
  .card .label { font-size: 12px; color: #6b7280; text-transform: uppercase; }
  .card .value { font-size: 20px; font-weight: 600; margin-top: 4px; }
  table { width: 100%; border-collapse: collapse; font-size: 13px; }
  th { text-align: left; border-bottom: 2px solid #111827; padding: 8px 6px; }
  td { border-bottom: 1px solid #e5e7eb; padding: 8px 6px; }
  td.num { text-align: right; font-variant-numeric: tabular-nums; }
  .paid { color: #16a34a; }
  .unpaid { color: #dc2626; }
</style>
</head>
<body>
<h1>Informe de Gastos</h1>
<div class="meta">Generado el {{.GeneratedAt}}</div>
<div class="cards">
  <div class="card"><div class="label">Total Gastos</div><div class="value">{{.Total}} €</div></div>
  <div class="card"><div class="label">IVA Total</div><div class="value">{{.TotalTax}} €</div></div>
  <div class="card"><div class="label">Base Imponible</div><div class="value">{{.TaxBase}} €</div></div>
  <div class="card"><div class="label">Facturas</div><div class="value">{{.Count}}</div></div>
</div>
<table>
<thead>
<tr><th>Fecha</th><th>Proveedor</th><th>Nº Factura</th><th>Descripcion</th><th>Categoria</th><th>Importe</th><th>IVA</th><th>Pagada</th></tr>
</thead>
<tbody>
{{range .Rows}}
<tr>
  <td>{{.Date}}</td>
  <td>{{.Vendor}}</td>
  <td>{{.InvoiceNumber}}</td>
  <td>{{.Description}}</td>
  <td>{{.Emoji}} {{.Category}}</td>
  <td class="num">{{.Amount}} €</td>
  <td class="num">{{.TaxAmount}} €</td>
  <td>{{if .Paid}}<span class="paid">Si</span>{{else}}<span class="unpaid">No</span>{{end}}</td>
</tr>
{{end}}
</tbody>
</table>
</body>
</html>
`))

// WriteHTML renders the printable expense report the dashboard offers
// as "exportar PDF" (the browser print dialog does the PDF part).
func WriteHTML(w io.Writer, receipts []*receipt.Receipt) error {
	total := decimal.Zero
	totalTax := decimal.Zero
	rows := make([]reportRow, 0, len(receipts))

	for _, r := range receipts {
		cat := extract.CategoryByID(r.Category)
		rows = append(rows, reportRow{
			Date:          r.Date,
			Vendor:        r.Vendor,
			InvoiceNumber: r.InvoiceNumber,
			Description:   r.Description,
			Category:      cat.Name,
			Emoji:         cat.Emoji,
			Amount:        r.Amount.StringFixed(2),
			TaxAmount:     r.TaxAmount.StringFixed(2),
			Paid:          r.Paid,
		})
		total = total.Add(r.Amount)
		totalTax = totalTax.Add(r.TaxAmount)
	}

	data := reportData{
		GeneratedAt: time.Now().Format("02/01/2006"),
		Count:       len(receipts),
		Total:       total.StringFixed(2),
		TotalTax:    totalTax.StringFixed(2),
		TaxBase:     total.Sub(totalTax).StringFixed(2),
		Rows:        rows,
	}
	return reportTemplate.Execute(w, data)
}
