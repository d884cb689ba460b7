package scan

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/santpatricihotel-commits/TicketIA/internal/extract"
)

var ErrNotFound = errors.New("scan job not found")

const jobColumns = `id, user_id, image_url, filename, file_type, status,
	COALESCE(scan_error, ''), raw_text,
	vendor, amount::text, tax_amount::text, tax_assumed,
	invoice_date, category, invoice_number, description,
	created_at, updated_at`

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, job *Job) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO scan_jobs (user_id, image_url, filename, file_type, status)
		VALUES ($1, $2, $3, $4, 'UPLOADED')
		RETURNING id, created_at, updated_at
	`, job.UserID, job.ImageURL, job.Filename, job.FileType).
		Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
}

func (r *PostgresRepository) Get(ctx context.Context, userID string, id int) (*Job, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+jobColumns+`
		FROM scan_jobs
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ErrNotFound
	}
	return scanJob(rows)
}

func (r *PostgresRepository) ListRecent(ctx context.Context, userID string, limit int) ([]*Job, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+jobColumns+`
		FROM scan_jobs
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// FetchPending claims the oldest UPLOADED job inside a transaction. The
// SKIP LOCKED clause lets several workers poll without stepping on each
// other.
func (r *PostgresRepository) FetchPending(ctx context.Context) (*Job, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var job Job
	err = tx.QueryRow(ctx, `
		SELECT id, user_id, image_url, filename, file_type
		FROM scan_jobs
		WHERE status = 'UPLOADED'
		ORDER BY created_at
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`).Scan(&job.ID, &job.UserID, &job.ImageURL, &job.Filename, &job.FileType)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `
		UPDATE scan_jobs
		SET status = 'SCAN_PROCESSING', updated_at = now()
		WHERE id = $1
	`, job.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	job.Status = StatusProcessing
	return &job, nil
}

func (r *PostgresRepository) MarkFailed(ctx context.Context, id int, reason string) error {
	return r.setTerminal(ctx, id, StatusFailed, reason)
}

func (r *PostgresRepository) MarkSkipped(ctx context.Context, id int, reason string) error {
	return r.setTerminal(ctx, id, StatusSkipped, reason)
}

func (r *PostgresRepository) setTerminal(ctx context.Context, id int, status, reason string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE scan_jobs
		SET status = $1, scan_error = $2, updated_at = now()
		WHERE id = $3
	`, status, reason, id)
	return err
}

func (r *PostgresRepository) SaveResult(ctx context.Context, id int, rawText string, draft *extract.Invoice) error {
	_, err := r.db.Exec(ctx, `
		UPDATE scan_jobs
		SET status = 'SCAN_DONE',
		    scan_error = NULL,
		    raw_text = $1,
		    vendor = $2,
		    amount = $3,
		    tax_amount = $4,
		    tax_assumed = $5,
		    invoice_date = $6,
		    category = $7,
		    invoice_number = $8,
		    description = $9,
		    updated_at = now()
		WHERE id = $10
	`, rawText, draft.Vendor, draft.Amount.StringFixed(2), draft.TaxAmount.StringFixed(2),
		draft.TaxAssumed, draft.Date, draft.Category, draft.InvoiceNumber, draft.Description, id)
	return err
}

func scanJob(rows pgx.Rows) (*Job, error) {
	var (
		job       Job
		draft     extract.Invoice
		amount    string
		taxAmount string
	)
	if err := rows.Scan(
		&job.ID, &job.UserID, &job.ImageURL, &job.Filename, &job.FileType,
		&job.Status, &job.ScanError, &job.RawText,
		&draft.Vendor, &amount, &taxAmount, &draft.TaxAssumed,
		&draft.Date, &draft.Category, &draft.InvoiceNumber, &draft.Description,
		&job.CreatedAt, &job.UpdatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if draft.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, err
	}
	if draft.TaxAmount, err = decimal.NewFromString(taxAmount); err != nil {
		return nil, err
	}
	if job.Status == StatusDone {
		job.Draft = &draft
	}
	return &job, nil
}
