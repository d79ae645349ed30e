package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"langshift/internal/platform/store/ch"
)

func TestCHAdapter_InsertShape(t *testing.T) {
	t.Parallel()

	a := newCHAdapter(&ch.CH{})
	err := a.Insert(context.Background(), "conversion_events", map[string]any{})
	if err == nil || !strings.Contains(err.Error(), "want [][]any") {
		t.Fatalf("expected shape error, got %v", err)
	}
}

func TestCHAdapter_WithoutConnection(t *testing.T) {
	t.Parallel()

	a := newCHAdapter(&ch.CH{})
	ctx := context.Background()

	if err := a.Insert(ctx, "conversion_events", [][]any{{"x"}}); !errors.Is(err, ch.ErrClosed) {
		t.Fatalf("Insert err = %v", err)
	}
	if err := a.Exec(ctx, "SELECT 1"); !errors.Is(err, ch.ErrClosed) {
		t.Fatalf("Exec err = %v", err)
	}
	if _, err := a.Query(ctx, "SELECT 1"); !errors.Is(err, ch.ErrClosed) {
		t.Fatalf("Query err = %v", err)
	}
	if err := a.(Pinger).Ping(ctx); !errors.Is(err, ch.ErrClosed) {
		t.Fatalf("Ping err = %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
