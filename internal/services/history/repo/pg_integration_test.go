//go:build integration_pg

package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"langshift/internal/platform/store"
	"langshift/internal/platform/testkit"
)

func TestPGStore_Integration(t *testing.T) {
	dsn := testkit.StartPostgres(t)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, err := store.Open(ctx, store.Config{PG: store.PGConfig{Enabled: true, URL: dsn, MaxConns: 2}})
	if err != nil {
		t.Fatalf("store open: %v", err)
	}
	defer func() { _ = st.Close(ctx) }()

	if err := EnsureSchema(ctx, st.PG); err != nil {
		t.Fatalf("schema: %v", err)
	}
	s := NewPGStore(st.PG)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		e := entry(fmt.Sprint(i))
		e.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := s.Push(ctx, "pg", e, 10); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
	}
	got, err := s.List(ctx, "pg", 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 10 || got[0].Label != "11" || got[9].Label != "2" {
		t.Fatalf("unexpected log: %d entries", len(got))
	}

	n, err := s.Clear(ctx, "pg")
	if err != nil || n != 10 {
		t.Fatalf("clear = %d, %v", n, err)
	}
}
