// Package service exposes a session's conversion history
package service

import (
	"context"

	"langshift/internal/services/api/history/domain"
	evdom "langshift/internal/services/events/domain"
	histdom "langshift/internal/services/history/domain"
)

// Service defines the service contract for history
type Service interface{ domain.ServicePort }

// Svc implements Service
type Svc struct {
	q  histdom.QueryPort
	ev evdom.EmitterPort
}

var _ Service = (*Svc)(nil)

// New creates a history service; ev may be nil
func New(q histdom.QueryPort, ev evdom.EmitterPort) *Svc {
	if q == nil {
		panic("history.Service requires a non nil query port")
	}
	return &Svc{q: q, ev: ev}
}

// List returns the session's entries, newest first
func (s *Svc) List(ctx context.Context, session string) (domain.ListOutput, error) {
	xs, err := s.q.List(ctx, session)
	if err != nil {
		return domain.ListOutput{}, err
	}
	return domain.ListOutput{Session: session, Entries: xs}, nil
}

// Clear drops the session's entries and emits history_cleared
func (s *Svc) Clear(ctx context.Context, session string) (domain.ClearOutput, error) {
	n, err := s.q.Clear(ctx, session)
	if err != nil {
		return domain.ClearOutput{}, err
	}
	if s.ev != nil {
		s.ev.Emit(ctx, evdom.Event{
			Kind:      evdom.HistoryCleared,
			Session:   session,
			InputSize: n,
			Success:   true,
		})
	}
	return domain.ClearOutput{Session: session, Cleared: n}, nil
}
