package receipt

import (
	"context"
	"errors"
	"time"

	"github.com/santpatricihotel-commits/TicketIA/internal/extract"
)

var (
	ErrInvalidCategory = errors.New("unknown category")
	ErrInvalidDate     = errors.New("date must be YYYY-MM-DD")
	ErrNegativeAmount  = errors.New("amounts must not be negative")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a reviewed receipt. Every extracted field is treated as a
// provisional suggestion, so whatever survives the review form is accepted
// as-is apart from basic shape checks.
func (s *Service) Create(ctx context.Context, r *Receipt) error {
	if err := validate(r); err != nil {
		return err
	}
	if r.Date == "" {
		r.Date = time.Now().Format("2006-01-02")
	}
	if r.Category == "" {
		r.Category = "other"
	}
	if r.FileType == "" {
		r.FileType = "manual"
	}
	if r.Description == "" {
		if r.Vendor != "" {
			r.Description = "Factura de " + r.Vendor
		} else {
			r.Description = "Factura de " + extract.CategoryByID(r.Category).Name
		}
	}
	return s.repo.Create(ctx, r)
}

func (s *Service) List(ctx context.Context, userID string, f ListFilter) ([]*Receipt, error) {
	return s.repo.List(ctx, userID, f)
}

func (s *Service) Get(ctx context.Context, userID string, id int) (*Receipt, error) {
	return s.repo.Get(ctx, userID, id)
}

// Update applies field corrections from the review surface.
func (s *Service) Update(ctx context.Context, r *Receipt) error {
	if err := validate(r); err != nil {
		return err
	}
	return s.repo.Update(ctx, r)
}

func (s *Service) Delete(ctx context.Context, userID string, id int) error {
	return s.repo.Delete(ctx, userID, id)
}

// TogglePaid flips the paid flag and returns the new state.
func (s *Service) TogglePaid(ctx context.Context, userID string, id int) (bool, error) {
	rec, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return false, err
	}
	if err := s.repo.SetPaid(ctx, userID, id, !rec.Paid); err != nil {
		return false, err
	}
	return !rec.Paid, nil
}

func (s *Service) Stats(ctx context.Context, userID string) (*Stats, error) {
	return s.repo.Stats(ctx, userID)
}

func validate(r *Receipt) error {
	if r.Amount.IsNegative() || r.TaxAmount.IsNegative() {
		return ErrNegativeAmount
	}
	if r.Category != "" && extract.CategoryByID(r.Category).ID != r.Category {
		return ErrInvalidCategory
	}
	if r.Date != "" {
		if _, err := time.Parse("2006-01-02", r.Date); err != nil {
			return ErrInvalidDate
		}
	}
	return nil
}
