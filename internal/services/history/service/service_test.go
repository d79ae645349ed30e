package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	perr "langshift/internal/platform/errors"
	"langshift/internal/services/history/domain"
	"langshift/internal/services/history/repo"
)

type failingStore struct{ repo.Storage }

func (failingStore) Push(context.Context, string, domain.Entry, int) error {
	return errors.New("disk full")
}

func TestRecordListClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := New(repo.NewMemory(), Config{})
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	e, err := svc.Record(ctx, domain.RecordInput{
		Session: " s1 ",
		Label:   "Convert to TypeScript",
		Source:  "let x = 1",
		Result:  "let x: any = 1",
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if e.CreatedAt != fixed || e.ID.String() == "" {
		t.Fatalf("entry = %+v", e)
	}

	got, err := svc.List(ctx, "s1")
	if err != nil || len(got) != 1 || got[0].ID != e.ID {
		t.Fatalf("List = %+v, %v", got, err)
	}

	n, err := svc.Clear(ctx, "s1")
	if err != nil || n != 1 {
		t.Fatalf("Clear = %d, %v", n, err)
	}
}

func TestCapacityDefaultsToTen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := New(repo.NewMemory(), Config{})
	if svc.Cfg.Capacity != domain.DefaultCapacity {
		t.Fatalf("capacity = %d", svc.Cfg.Capacity)
	}
	for i := 0; i < 15; i++ {
		if _, err := svc.Record(ctx, domain.RecordInput{Session: "s", Label: fmt.Sprint(i)}); err != nil {
			t.Fatalf("Record %d: %v", i, err)
		}
	}
	got, _ := svc.List(ctx, "s")
	if len(got) != 10 || got[0].Label != "14" || got[9].Label != "5" {
		t.Fatalf("log = %d, first=%s last=%s", len(got), got[0].Label, got[len(got)-1].Label)
	}
}

func TestSessionValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := New(repo.NewMemory(), Config{Capacity: 3})
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}
	for _, s := range []string{"", "   ", string(long)} {
		_, err := svc.List(ctx, s)
		if !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Fatalf("List(%q) err = %v", s, err)
		}
		if e, ok := perr.As(err); !ok || e.Field() != "session" {
			t.Fatalf("field not set: %v", err)
		}
	}
}

func TestStorageFailureIsUnavailable(t *testing.T) {
	t.Parallel()

	svc := New(failingStore{repo.NewMemory()}, Config{})
	_, err := svc.Record(context.Background(), domain.RecordInput{Session: "s"})
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("err = %v, want unavailable", err)
	}
}

type dbFailStore struct{ repo.Storage }

func (dbFailStore) List(context.Context, string, int) ([]domain.Entry, error) {
	return nil, perr.FromPG(errors.New("relation does not exist"), "history")
}

func TestStorageKeepsBackendCode(t *testing.T) {
	t.Parallel()

	svc := New(dbFailStore{repo.NewMemory()}, Config{})
	_, err := svc.List(context.Background(), "s")
	if !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("err = %v, want db", err)
	}
	if e, _ := perr.As(err); e.Op() != "list history" {
		t.Fatalf("op = %q", e.Op())
	}
}

func TestNew_PanicsOnNilStorage(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	New(nil, Config{})
}
