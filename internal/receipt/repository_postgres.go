package receipt

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("receipt not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// receiptColumns keeps SELECT lists consistent across queries. Amounts come
// back as text so they land in decimals without float round-trips.
const receiptColumns = `
	id,
	vendor,
	amount::text,
	tax_amount::text,
	to_char(invoice_date, 'YYYY-MM-DD'),
	category,
	description,
	invoice_number,
	paid,
	file_type,
	image_url,
	ocr_text,
	created_at
`

func (r *PostgresRepository) Create(ctx context.Context, rec *Receipt) error {
	query := `
		INSERT INTO receipts (
			user_id,
			vendor,
			amount,
			tax_amount,
			invoice_date,
			category,
			description,
			invoice_number,
			paid,
			file_type,
			image_url,
			ocr_text
		)
		VALUES ($1, $2, $3::numeric, $4::numeric, $5::date, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		rec.UserID,
		rec.Vendor,
		rec.Amount.StringFixed(2),
		rec.TaxAmount.StringFixed(2),
		rec.Date,
		rec.Category,
		rec.Description,
		rec.InvoiceNumber,
		rec.Paid,
		rec.FileType,
		rec.ImageURL,
		rec.OCRText,
	).Scan(&rec.ID, &rec.CreatedAt)
}

func (r *PostgresRepository) List(ctx context.Context, userID string, f ListFilter) ([]*Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE user_id = $1`
	args := []interface{}{userID}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		query += fmt.Sprintf(
			" AND (vendor ILIKE $%d OR description ILIKE $%d OR invoice_number ILIKE $%d)",
			n, n, n,
		)
	}
	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	switch f.Paid {
	case "paid":
		query += " AND paid = TRUE"
	case "unpaid":
		query += " AND paid = FALSE"
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receipts []*Receipt
	for rows.Next() {
		rec, err := scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		rec.UserID = userID
		receipts = append(receipts, rec)
	}
	return receipts, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, userID string, id int) (*Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE user_id = $1 AND id = $2`

	rows, err := r.db.Query(ctx, query, userID, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ErrNotFound
	}
	rec, err := scanReceipt(rows)
	if err != nil {
		return nil, err
	}
	rec.UserID = userID
	return rec, nil
}

func (r *PostgresRepository) Update(ctx context.Context, rec *Receipt) error {
	query := `
		UPDATE receipts
		SET vendor = $1,
		    amount = $2::numeric,
		    tax_amount = $3::numeric,
		    invoice_date = $4::date,
		    category = $5,
		    description = $6,
		    invoice_number = $7,
		    paid = $8
		WHERE user_id = $9 AND id = $10
	`

	tag, err := r.db.Exec(
		ctx,
		query,
		rec.Vendor,
		rec.Amount.StringFixed(2),
		rec.TaxAmount.StringFixed(2),
		rec.Date,
		rec.Category,
		rec.Description,
		rec.InvoiceNumber,
		rec.Paid,
		rec.UserID,
		rec.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID string, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM receipts WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) SetPaid(ctx context.Context, userID string, id int, paid bool) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE receipts SET paid = $1 WHERE user_id = $2 AND id = $3`,
		paid, userID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Stats(ctx context.Context, userID string) (*Stats, error) {
	stats := &Stats{
		Total:       decimal.Zero,
		TotalTax:    decimal.Zero,
		UnpaidTotal: decimal.Zero,
	}

	var total, totalTax, unpaidTotal string
	err := r.db.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(amount), 0)::text,
			COALESCE(SUM(tax_amount), 0)::text,
			COUNT(*),
			COUNT(*) FILTER (WHERE NOT paid),
			COALESCE(SUM(amount) FILTER (WHERE NOT paid), 0)::text
		FROM receipts
		WHERE user_id = $1
	`, userID).Scan(&total, &totalTax, &stats.Count, &stats.UnpaidCount, &unpaidTotal)
	if err != nil {
		return nil, err
	}
	if stats.Total, err = decimal.NewFromString(total); err != nil {
		return nil, err
	}
	if stats.TotalTax, err = decimal.NewFromString(totalTax); err != nil {
		return nil, err
	}
	if stats.UnpaidTotal, err = decimal.NewFromString(unpaidTotal); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT category, SUM(amount)::text, COUNT(*)
		FROM receipts
		WHERE user_id = $1
		GROUP BY category
		ORDER BY SUM(amount) DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var ct CategoryTotal
		var sum string
		if err := rows.Scan(&ct.Category, &sum, &ct.Count); err != nil {
			return nil, err
		}
		if ct.Total, err = decimal.NewFromString(sum); err != nil {
			return nil, err
		}
		stats.CategoryTotals = append(stats.CategoryTotals, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	monthRows, err := r.db.Query(ctx, `
		SELECT to_char(invoice_date, 'YYYY-MM') AS month, SUM(amount)::text
		FROM receipts
		WHERE user_id = $1
		GROUP BY month
		ORDER BY month
	`, userID)
	if err != nil {
		return nil, err
	}
	defer monthRows.Close()

	for monthRows.Next() {
		var mt MonthTotal
		var sum string
		if err := monthRows.Scan(&mt.Month, &sum); err != nil {
			return nil, err
		}
		if mt.Total, err = decimal.NewFromString(sum); err != nil {
			return nil, err
		}
		stats.MonthlyTotals = append(stats.MonthlyTotals, mt)
	}
	return stats, monthRows.Err()
}

func scanReceipt(rows pgx.Rows) (*Receipt, error) {
	var rec Receipt
	var amount, taxAmount string

	if err := rows.Scan(
		&rec.ID,
		&rec.Vendor,
		&amount,
		&taxAmount,
		&rec.Date,
		&rec.Category,
		&rec.Description,
		&rec.InvoiceNumber,
		&rec.Paid,
		&rec.FileType,
		&rec.ImageURL,
		&rec.OCRText,
		&rec.CreatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if rec.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, err
	}
	if rec.TaxAmount, err = decimal.NewFromString(taxAmount); err != nil {
		return nil, err
	}
	return &rec, nil
}
