package scan

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/santpatricihotel-commits/TicketIA/internal/extract"
)

// InMemoryRepository backs handler and worker tests.
type InMemoryRepository struct {
	mu     sync.Mutex
	nextID int
	jobs   map[int]*Job
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, jobs: map[int]*Job{}}
}

func (m *InMemoryRepository) Create(_ context.Context, job *Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job.ID = m.nextID
	m.nextID++
	job.Status = StatusUploaded
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt

	stored := *job
	m.jobs[job.ID] = &stored
	return nil
}

func (m *InMemoryRepository) Get(_ context.Context, userID string, id int) (*Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok || job.UserID != userID {
		return nil, ErrNotFound
	}
	out := *job
	return &out, nil
}

func (m *InMemoryRepository) ListRecent(_ context.Context, userID string, limit int) ([]*Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var jobs []*Job
	for _, job := range m.jobs {
		if job.UserID != userID {
			continue
		}
		out := *job
		jobs = append(jobs, &out)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID > jobs[j].ID })
	if limit > 0 && len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs, nil
}

func (m *InMemoryRepository) FetchPending(_ context.Context) (*Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var oldest *Job
	for _, job := range m.jobs {
		if job.Status != StatusUploaded {
			continue
		}
		if oldest == nil || job.ID < oldest.ID {
			oldest = job
		}
	}
	if oldest == nil {
		return nil, nil
	}
	oldest.Status = StatusProcessing
	oldest.UpdatedAt = time.Now()

	out := *oldest
	return &out, nil
}

func (m *InMemoryRepository) MarkFailed(_ context.Context, id int, reason string) error {
	return m.setTerminal(id, StatusFailed, reason)
}

func (m *InMemoryRepository) MarkSkipped(_ context.Context, id int, reason string) error {
	return m.setTerminal(id, StatusSkipped, reason)
}

func (m *InMemoryRepository) setTerminal(id int, status, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok {
		return ErrNotFound
	}
	job.Status = status
	job.ScanError = reason
	job.UpdatedAt = time.Now()
	return nil
}

func (m *InMemoryRepository) SaveResult(_ context.Context, id int, rawText string, draft *extract.Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok {
		return ErrNotFound
	}
	job.Status = StatusDone
	job.ScanError = ""
	job.RawText = rawText
	d := *draft
	job.Draft = &d
	job.UpdatedAt = time.Now()
	return nil
}
