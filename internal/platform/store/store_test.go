package store

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type pingFake struct {
	TxRunner
	err    error
	closed bool
}

func (p *pingFake) Ping(context.Context) error { return p.err }
func (p *pingFake) Close() error               { p.closed = true; return nil }

type chFake struct {
	Clickhouse
	err      error
	closeErr error
}

func (c *chFake) Ping(context.Context) error { return c.err }
func (c *chFake) Close() error               { return c.closeErr }

func TestOpen_NoBackends(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s, err := Open(context.Background(), Config{}, WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.PG != nil || s.CH != nil {
		t.Fatalf("backends set without being enabled")
	}
	if !strings.Contains(buf.String(), `"component":"store"`) {
		t.Fatalf("logger not applied: %s", buf.String())
	}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("Guard: %v", err)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestOpen_OptionError(t *testing.T) {
	t.Parallel()

	bad := func(*Store) error { return errors.New("nope") }
	if _, err := Open(context.Background(), Config{}, bad); err == nil {
		t.Fatalf("expected option error")
	}
}

func TestOpen_BackendErrors(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), Config{PG: PGConfig{Enabled: true, URL: "://bad"}})
	if err == nil || !strings.Contains(err.Error(), "store: pg") {
		t.Fatalf("pg err = %v", err)
	}
	_, err = Open(context.Background(), Config{CH: CHConfig{Enabled: true}})
	if err == nil || !strings.Contains(err.Error(), "empty URL") {
		t.Fatalf("ch err = %v", err)
	}
}

func TestOpenPG_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := openPG(ctx, Config{PG: PGConfig{URL: "postgres://u:p@127.0.0.1:1/db?sslmode=disable"}}, zerolog.Nop())
	if err == nil {
		t.Fatalf("expected error for canceled context")
	}
}

func TestGuardAndClose(t *testing.T) {
	t.Parallel()

	pgf := &pingFake{err: errors.New("down")}
	chf := &chFake{}
	s := &Store{PG: pgf, CH: chf}

	err := s.Guard(context.Background())
	if err == nil || !strings.Contains(err.Error(), "pg: down") {
		t.Fatalf("Guard = %v", err)
	}
	pgf.err = nil
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("Guard healthy: %v", err)
	}

	chf.closeErr = errors.New("ch close")
	if err := s.Close(context.Background()); err == nil || !pgf.closed {
		t.Fatalf("Close err=%v pg closed=%v", err, pgf.closed)
	}

	var nilStore *Store
	if nilStore.Guard(context.Background()) == nil {
		t.Fatalf("nil store guard passed")
	}
	if err := nilStore.Close(context.Background()); err != nil {
		t.Fatalf("nil store close: %v", err)
	}
}

func TestPGConfigDefaults(t *testing.T) {
	t.Parallel()

	var c PGConfig
	if c.retries() != 20 || c.pingTimeout().Seconds() != 3 {
		t.Fatalf("defaults = %d %v", c.retries(), c.pingTimeout())
	}
	c.ConnectRetries = 2
	if c.retries() != 2 {
		t.Fatalf("override ignored")
	}
}

func TestRunInSession(t *testing.T) {
	t.Parallel()

	tx := &recTx{}
	err := RunInSession(context.Background(), tx, "s-1", func(ctx context.Context, q RowQuerier) error {
		if got, ok := SessionID(ctx); !ok || got != "s-1" {
			t.Fatalf("session = %q %v", got, ok)
		}
		if q != tx {
			t.Fatalf("querier not passed through")
		}
		return nil
	})
	if err != nil || tx.calls != 1 {
		t.Fatalf("err=%v calls=%d", err, tx.calls)
	}
	if _, ok := SessionID(context.Background()); ok {
		t.Fatalf("empty context reported a session")
	}
}

type recTx struct {
	TxRunner
	calls int
}

func (r *recTx) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	r.calls++
	return fn(r)
}
