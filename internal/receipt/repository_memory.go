package receipt

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// InMemoryRepository backs handler and service tests without Postgres.
type InMemoryRepository struct {
	mu       sync.Mutex
	receipts map[int]*Receipt
	nextID   int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		receipts: make(map[int]*Receipt),
		nextID:   1,
	}
}

func (m *InMemoryRepository) Create(_ context.Context, r *Receipt) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r.ID = m.nextID
	m.nextID++
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	cp := *r
	m.receipts[r.ID] = &cp
	return nil
}

func (m *InMemoryRepository) List(_ context.Context, userID string, f ListFilter) ([]*Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*Receipt
	for _, r := range m.receipts {
		if r.UserID != userID || !matchesFilter(r, f) {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *InMemoryRepository) Get(_ context.Context, userID string, id int) (*Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.receipts[id]
	if !ok || r.UserID != userID {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *InMemoryRepository) Update(_ context.Context, r *Receipt) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.receipts[r.ID]
	if !ok || existing.UserID != r.UserID {
		return ErrNotFound
	}
	// Same column set as the SQL UPDATE: file metadata and OCR text are
	// written once at upload time and survive edits untouched.
	r.CreatedAt = existing.CreatedAt
	r.FileType = existing.FileType
	r.ImageURL = existing.ImageURL
	r.OCRText = existing.OCRText
	cp := *r
	m.receipts[r.ID] = &cp
	return nil
}

func (m *InMemoryRepository) Delete(_ context.Context, userID string, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.receipts[id]
	if !ok || r.UserID != userID {
		return ErrNotFound
	}
	delete(m.receipts, id)
	return nil
}

func (m *InMemoryRepository) SetPaid(_ context.Context, userID string, id int, paid bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.receipts[id]
	if !ok || r.UserID != userID {
		return ErrNotFound
	}
	r.Paid = paid
	return nil
}

func (m *InMemoryRepository) Stats(_ context.Context, userID string) (*Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := &Stats{
		Total:       decimal.Zero,
		TotalTax:    decimal.Zero,
		UnpaidTotal: decimal.Zero,
	}
	byCategory := map[string]*CategoryTotal{}
	byMonth := map[string]decimal.Decimal{}

	for _, r := range m.receipts {
		if r.UserID != userID {
			continue
		}
		stats.Count++
		stats.Total = stats.Total.Add(r.Amount)
		stats.TotalTax = stats.TotalTax.Add(r.TaxAmount)
		if !r.Paid {
			stats.UnpaidCount++
			stats.UnpaidTotal = stats.UnpaidTotal.Add(r.Amount)
		}

		ct, ok := byCategory[r.Category]
		if !ok {
			ct = &CategoryTotal{Category: r.Category, Total: decimal.Zero}
			byCategory[r.Category] = ct
		}
		ct.Total = ct.Total.Add(r.Amount)
		ct.Count++

		if len(r.Date) >= 7 {
			month := r.Date[:7]
			byMonth[month] = byMonth[month].Add(r.Amount)
		}
	}

	for _, ct := range byCategory {
		stats.CategoryTotals = append(stats.CategoryTotals, *ct)
	}
	sort.Slice(stats.CategoryTotals, func(i, j int) bool {
		return stats.CategoryTotals[i].Total.GreaterThan(stats.CategoryTotals[j].Total)
	})

	for month, total := range byMonth {
		stats.MonthlyTotals = append(stats.MonthlyTotals, MonthTotal{Month: month, Total: total})
	}
	sort.Slice(stats.MonthlyTotals, func(i, j int) bool {
		return stats.MonthlyTotals[i].Month < stats.MonthlyTotals[j].Month
	})

	return stats, nil
}

func matchesFilter(r *Receipt, f ListFilter) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(r.Vendor), q) &&
			!strings.Contains(strings.ToLower(r.Description), q) &&
			!strings.Contains(strings.ToLower(r.InvoiceNumber), q) {
			return false
		}
	}
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if f.Paid == "paid" && !r.Paid {
		return false
	}
	if f.Paid == "unpaid" && r.Paid {
		return false
	}
	return true
}
