package scan

import (
	"context"

	"github.com/santpatricihotel-commits/TicketIA/internal/extract"
)

// Repository persists scan jobs. FetchPending must claim atomically so
// several workers can poll the same table.
type Repository interface {
	Create(ctx context.Context, job *Job) error
	Get(ctx context.Context, userID string, id int) (*Job, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]*Job, error)

	// FetchPending claims the oldest UPLOADED job and moves it to
	// SCAN_PROCESSING. Returns nil when the queue is empty.
	FetchPending(ctx context.Context) (*Job, error)
	MarkFailed(ctx context.Context, id int, reason string) error
	MarkSkipped(ctx context.Context, id int, reason string) error
	SaveResult(ctx context.Context, id int, rawText string, draft *extract.Invoice) error
}
