// Package service contains stats workflows
package service

import (
	"context"

	perr "langshift/internal/platform/errors"
	"langshift/internal/services/api/stats/domain"
	"langshift/internal/services/api/stats/repo"
)

// Service defines the stats service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the stats service
type Svc struct {
	Repo repo.Repo
}

var _ Service = (*Svc)(nil)

// New constructs a stats service; a nil repo answers every query with unavailable
func New(r repo.Repo) *Svc { return &Svc{Repo: r} }

// ByPair returns conversion counts per language pair
func (s *Svc) ByPair(ctx context.Context, in domain.ByPairInput) ([]domain.ByPairRow, error) {
	if s.Repo == nil {
		return nil, errNoStore()
	}
	rows, err := s.Repo.ByPair(ctx, days(in.Window), in.From)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "stats: query failed")
	}
	out := make([]domain.ByPairRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.ByPairRow{
			From:      r.From,
			To:        r.To,
			Completed: r.Completed,
			Failed:    r.Failed,
			AvgMs:     r.AvgMs,
		})
	}
	return out, nil
}

// Daily returns event counts per day and kind
func (s *Svc) Daily(ctx context.Context, in domain.DailyInput) ([]domain.DailyRow, error) {
	if s.Repo == nil {
		return nil, errNoStore()
	}
	rows, err := s.Repo.Daily(ctx, days(in.Window), in.Kind)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "stats: query failed")
	}
	out := make([]domain.DailyRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.DailyRow{Day: r.Day, Kind: r.Kind, Count: r.Count})
	}
	return out, nil
}

func days(w domain.Window) int {
	if w.Days <= 0 {
		return domain.DefaultDays
	}
	return w.Days
}

func errNoStore() error { return perr.Unavailablef("stats: clickhouse is not configured") }
