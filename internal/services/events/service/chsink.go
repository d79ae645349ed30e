package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"langshift/internal/platform/logger"
	"langshift/internal/services/events/domain"
)

// BatchWriter persists a batch of events
type BatchWriter interface {
	WriteBatch(ctx context.Context, xs []domain.Event) error
}

// BatchConfig tunes the batching sink
type BatchConfig struct {
	// Size flushes when this many events are buffered; defaults to 256
	Size int
	// Interval flushes on a timer; defaults to 5s
	Interval time.Duration
	// MaxBuffer drops the oldest events beyond this size when writes keep failing; defaults to 8*Size
	MaxBuffer int
}

// BatchSink buffers events and writes them in batches from a background loop
type BatchSink struct {
	w   BatchWriter
	cfg BatchConfig
	log logger.Logger

	mu      sync.Mutex
	buf     []domain.Event
	dropped int
	closed  bool

	kick chan struct{}
	stop chan struct{}
	done chan struct{}
}

// ErrSinkClosed is returned by Accept after Close
var ErrSinkClosed = errors.New("events: sink closed")

// NewBatchSink starts the flush loop
func NewBatchSink(w BatchWriter, cfg BatchConfig, log logger.Logger) *BatchSink {
	if w == nil {
		panic("events: nil batch writer")
	}
	if cfg.Size <= 0 {
		cfg.Size = 256
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Second
	}
	if cfg.MaxBuffer < cfg.Size {
		cfg.MaxBuffer = 8 * cfg.Size
	}
	s := &BatchSink{
		w:    w,
		cfg:  cfg,
		log:  log.With().Str("component", "events.batch").Logger(),
		kick: make(chan struct{}, 1),
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go s.loop()
	return s
}

// Accept implements domain.Sink; it only buffers
func (s *BatchSink) Accept(_ context.Context, e domain.Event) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSinkClosed
	}
	s.buf = append(s.buf, e)
	if over := len(s.buf) - s.cfg.MaxBuffer; over > 0 {
		s.buf = append(s.buf[:0], s.buf[over:]...)
		s.dropped += over
	}
	full := len(s.buf) >= s.cfg.Size
	s.mu.Unlock()

	if full {
		select {
		case s.kick <- struct{}{}:
		default:
		}
	}
	return nil
}

// Pending returns the number of buffered events
func (s *BatchSink) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buf)
}

// Dropped returns how many events were discarded on overflow
func (s *BatchSink) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

func (s *BatchSink) loop() {
	defer close(s.done)
	t := time.NewTicker(s.cfg.Interval)
	defer t.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-t.C:
		case <-s.kick:
		}
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Interval)
		if err := s.Flush(ctx); err != nil {
			s.log.Warn().Err(err).Msg("event flush failed")
		}
		cancel()
	}
}

// Flush writes everything buffered; on failure the batch is put back for the next attempt
func (s *BatchSink) Flush(ctx context.Context) error {
	s.mu.Lock()
	batch := s.buf
	s.buf = nil
	s.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}
	if err := s.w.WriteBatch(ctx, batch); err != nil {
		s.mu.Lock()
		s.buf = append(batch, s.buf...)
		if over := len(s.buf) - s.cfg.MaxBuffer; over > 0 {
			s.buf = append(s.buf[:0], s.buf[over:]...)
			s.dropped += over
		}
		s.mu.Unlock()
		return err
	}
	return nil
}

// Close stops the loop and writes what is left
func (s *BatchSink) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	close(s.stop)
	<-s.done
	return s.Flush(ctx)
}
