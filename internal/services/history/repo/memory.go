package repo

import (
	"context"
	"sync"

	"langshift/internal/services/history/domain"
)

// Memory keeps history in process, one bounded queue per session
type Memory struct {
	mu   sync.Mutex
	logs map[string]*Bounded[domain.Entry]
}

// NewMemory constructs an empty in-memory store
func NewMemory() *Memory {
	return &Memory{logs: make(map[string]*Bounded[domain.Entry])}
}

var _ Storage = (*Memory)(nil)

// Push implements Storage
func (m *Memory) Push(_ context.Context, session string, e domain.Entry, capacity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	q, ok := m.logs[session]
	if !ok {
		q = NewBounded[domain.Entry](capacity)
		m.logs[session] = q
	} else if q.Cap() != capacity {
		q.Resize(capacity)
	}
	q.Push(e)
	return nil
}

// List implements Storage
func (m *Memory) List(_ context.Context, session string, limit int) ([]domain.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	q, ok := m.logs[session]
	if !ok {
		return []domain.Entry{}, nil
	}
	out := q.Items()
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Clear implements Storage
func (m *Memory) Clear(_ context.Context, session string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	q, ok := m.logs[session]
	if !ok {
		return 0, nil
	}
	n := q.Len()
	delete(m.logs, session)
	return n, nil
}
