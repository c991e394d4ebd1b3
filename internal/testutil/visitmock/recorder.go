package visitmock

import (
	"context"
	"sync"

	domain "merhaba-api/internal/domain/visit"
)

// Recorder is a function-backed mock that satisfies domain.Recorder.
// Every visit passed to Record is kept, whatever RecordFn returns.
type Recorder struct {
	RecordFn func(ctx context.Context, v *domain.Visit) error

	mu     sync.Mutex
	visits []domain.Visit
}

func (m *Recorder) Record(ctx context.Context, v *domain.Visit) error {
	m.mu.Lock()
	m.visits = append(m.visits, *v)
	m.mu.Unlock()
	if m.RecordFn != nil {
		return m.RecordFn(ctx, v)
	}
	return nil
}

// Visits returns a copy of everything recorded so far.
func (m *Recorder) Visits() []domain.Visit {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Visit, len(m.visits))
	copy(out, m.visits)
	return out
}
