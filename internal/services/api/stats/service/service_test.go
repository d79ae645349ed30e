package service

import (
	"context"
	"errors"
	"testing"

	perr "langshift/internal/platform/errors"
	"langshift/internal/services/api/stats/domain"
	"langshift/internal/services/api/stats/repo"
)

type fakeRepo struct {
	days int
	err  error
}

func (f *fakeRepo) ByPair(_ context.Context, days int, from string) ([]repo.RowByPair, error) {
	f.days = days
	if f.err != nil {
		return nil, f.err
	}
	return []repo.RowByPair{{From: from, To: "yaml", Completed: 3}}, nil
}

func (f *fakeRepo) Daily(_ context.Context, days int, kind string) ([]repo.RowDaily, error) {
	f.days = days
	if f.err != nil {
		return nil, f.err
	}
	return []repo.RowDaily{{Day: "2026-10-01", Kind: kind, Count: 4}}, nil
}

func TestByPair_DefaultsWindow(t *testing.T) {
	t.Parallel()

	r := &fakeRepo{}
	out, err := New(r).ByPair(context.Background(), domain.ByPairInput{From: "json"})
	if err != nil {
		t.Fatalf("ByPair: %v", err)
	}
	if r.days != domain.DefaultDays {
		t.Fatalf("days = %d", r.days)
	}
	if len(out) != 1 || out[0].From != "json" || out[0].Completed != 3 {
		t.Fatalf("out = %+v", out)
	}
}

func TestDaily_PassesWindow(t *testing.T) {
	t.Parallel()

	r := &fakeRepo{}
	in := domain.DailyInput{Window: domain.Window{Days: 30}, Kind: "conversion_failed"}
	out, err := New(r).Daily(context.Background(), in)
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if r.days != 30 || len(out) != 1 || out[0].Kind != "conversion_failed" {
		t.Fatalf("days=%d out=%+v", r.days, out)
	}
}

func TestUnavailable(t *testing.T) {
	t.Parallel()

	if _, err := New(nil).ByPair(context.Background(), domain.ByPairInput{}); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("nil repo err = %v", err)
	}
	failing := New(&fakeRepo{err: errors.New("boom")})
	if _, err := failing.Daily(context.Background(), domain.DailyInput{}); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("failing repo err = %v", err)
	}
}
