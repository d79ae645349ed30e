// Package service implements the conversion history log
package service

import (
	"context"
	"strings"
	"time"

	perr "langshift/internal/platform/errors"
	"langshift/internal/services/history/domain"
	"langshift/internal/services/history/repo"

	"github.com/google/uuid"
)

// Config for the history service
type Config struct {
	// Capacity is the number of entries kept per session; defaults to domain.DefaultCapacity
	Capacity int
}

// Service implements domain.HistoryPort over a Storage backend
type Service struct {
	Storage repo.Storage
	Cfg     Config

	now   func() time.Time
	newID func() uuid.UUID
}

var _ domain.HistoryPort = (*Service)(nil)

// New constructs a history service
func New(storage repo.Storage, cfg Config) *Service {
	if storage == nil {
		panic("history: nil storage")
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = domain.DefaultCapacity
	}
	return &Service{
		Storage: storage,
		Cfg:     cfg,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.New,
	}
}

// Record implements domain.RecorderPort
func (s *Service) Record(ctx context.Context, in domain.RecordInput) (domain.Entry, error) {
	session, err := sessionKey(in.Session)
	if err != nil {
		return domain.Entry{}, err
	}
	e := domain.Entry{
		ID:        s.newID(),
		Label:     in.Label,
		Source:    in.Source,
		Result:    in.Result,
		CreatedAt: s.now(),
	}
	if err := s.Storage.Push(ctx, session, e, s.Cfg.Capacity); err != nil {
		return domain.Entry{}, storageErr(err, "record history")
	}
	return e, nil
}

// List implements domain.QueryPort, newest first
func (s *Service) List(ctx context.Context, session string) ([]domain.Entry, error) {
	key, err := sessionKey(session)
	if err != nil {
		return nil, err
	}
	out, err := s.Storage.List(ctx, key, s.Cfg.Capacity)
	if err != nil {
		return nil, storageErr(err, "list history")
	}
	return out, nil
}

// Clear implements domain.QueryPort and returns how many entries were dropped
func (s *Service) Clear(ctx context.Context, session string) (int, error) {
	key, err := sessionKey(session)
	if err != nil {
		return 0, err
	}
	n, err := s.Storage.Clear(ctx, key)
	if err != nil {
		return 0, storageErr(err, "clear history")
	}
	return n, nil
}

// storageErr keeps a code the backend already assigned and treats the rest as unavailable
func storageErr(err error, msg string) error {
	if _, ok := perr.As(err); ok {
		return perr.WithOp(err, msg)
	}
	return perr.Wrap(err, perr.ErrorCodeUnavailable, msg)
}

func sessionKey(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", perr.WithField(perr.Validationf("session is required"), "session")
	}
	if len(s) > 128 {
		return "", perr.WithField(perr.Validationf("session is too long"), "session")
	}
	return s, nil
}
