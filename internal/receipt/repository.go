package receipt

import "context"

// Repository defines all database operations for receipts.
// Service depends ONLY on this interface.
type Repository interface {
	Create(ctx context.Context, r *Receipt) error
	List(ctx context.Context, userID string, f ListFilter) ([]*Receipt, error)
	Get(ctx context.Context, userID string, id int) (*Receipt, error)
	Update(ctx context.Context, r *Receipt) error
	Delete(ctx context.Context, userID string, id int) error
	SetPaid(ctx context.Context, userID string, id int, paid bool) error
	Stats(ctx context.Context, userID string) (*Stats, error)
}
