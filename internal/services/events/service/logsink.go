package service

import (
	"context"

	"langshift/internal/platform/logger"
	"langshift/internal/services/events/domain"
)

// LogSink writes each event as a structured log line
type LogSink struct {
	log logger.Logger
}

// NewLogSink constructs a log sink on top of log
func NewLogSink(log logger.Logger) *LogSink {
	return &LogSink{log: log.With().Str("component", "events").Logger()}
}

// Accept implements domain.Sink
func (s *LogSink) Accept(_ context.Context, e domain.Event) error {
	ev := s.log.Info()
	if !e.Success && (e.Kind == domain.ConversionFailed || e.Kind == domain.ErrorOccurred) {
		ev = s.log.Warn()
	}
	ev = ev.Str("event_id", e.ID.String()).
		Str("kind", string(e.Kind)).
		Time("at", e.At).
		Bool("success", e.Success)
	if e.Session != "" {
		ev = ev.Str("session", e.Session)
	}
	if e.From != "" {
		ev = ev.Str("from", e.From)
	}
	if e.To != "" {
		ev = ev.Str("to", e.To)
	}
	if e.InputSize > 0 {
		ev = ev.Int("input_size", e.InputSize)
	}
	if e.DurationMs > 0 {
		ev = ev.Int64("duration_ms", e.DurationMs)
	}
	if e.Message != "" {
		ev = ev.Str("message", e.Message)
	}
	ev.Msg("event")
	return nil
}

// Close implements domain.Sink
func (s *LogSink) Close(context.Context) error { return nil }
