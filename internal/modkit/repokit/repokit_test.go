package repokit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"langshift/internal/platform/store"
)

type nopQ struct{}

func (nopQ) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (nopQ) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, nil }
func (nopQ) QueryRow(context.Context, string, ...any) store.Row             { return nil }

type guardFunc func(context.Context) error

func (f guardFunc) Guard(ctx context.Context) error { return f(ctx) }

func panicMsg(fn func()) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = fmt.Sprint(r)
		}
	}()
	fn()
	return ""
}

func TestMustBind(t *testing.T) {
	var got Queryer
	b := BindFunc[string](func(q Queryer) string { got = q; return "history" })

	if v := MustBind[string](b, nopQ{}); v != "history" || got == nil {
		t.Fatalf("MustBind = %q, bound %v", v, got)
	}
	if msg := panicMsg(func() { MustBind[string](b, nil) }); !strings.Contains(msg, "nil Queryer") {
		t.Fatalf("panic = %q", msg)
	}
}

func TestMustGuard(t *testing.T) {
	if msg := panicMsg(func() { MustGuard(context.Background(), guardFunc(func(context.Context) error { return nil })) }); msg != "" {
		t.Fatalf("unexpected panic %q", msg)
	}
	down := guardFunc(func(context.Context) error { return errors.New("pg: connection refused") })
	if msg := panicMsg(func() { MustGuard(context.Background(), down) }); !strings.Contains(msg, "connection refused") {
		t.Fatalf("panic = %q", msg)
	}
}
