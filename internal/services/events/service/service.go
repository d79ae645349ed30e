// Package service fans events out to the configured sinks
package service

import (
	"context"
	"errors"
	"time"

	"langshift/internal/platform/logger"
	"langshift/internal/services/events/domain"

	"github.com/google/uuid"
)

// Service implements domain.EmitterPort over a list of sinks
type Service struct {
	sinks []domain.Sink
	log   logger.Logger
	now   func() time.Time
}

var _ domain.EmitterPort = (*Service)(nil)

// New constructs an emitter; with no sinks Emit is a no-op
func New(log logger.Logger, sinks ...domain.Sink) *Service {
	kept := make([]domain.Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			kept = append(kept, s)
		}
	}
	return &Service{
		sinks: kept,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Sinks reports how many sinks are active
func (s *Service) Sinks() int { return len(s.sinks) }

// Emit stamps e and hands it to every sink; sink errors are logged and dropped
func (s *Service) Emit(ctx context.Context, e domain.Event) {
	if s == nil || len(s.sinks) == 0 {
		return
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.At.IsZero() {
		e.At = s.now()
	}
	for _, sink := range s.sinks {
		if err := sink.Accept(ctx, e); err != nil {
			s.log.Warn().Err(err).Str("kind", string(e.Kind)).Msg("event sink rejected event")
		}
	}
}

// Close flushes and closes every sink
func (s *Service) Close(ctx context.Context) error {
	if s == nil {
		return nil
	}
	var errs []error
	for _, sink := range s.sinks {
		if err := sink.Close(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
