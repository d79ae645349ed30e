package module

import (
	"context"
	"strings"
	"testing"
	"time"

	"langshift/internal/modkit"
	"langshift/internal/modkit/module"
	"langshift/internal/platform/config"
	"langshift/internal/platform/store"
	"langshift/internal/services/events/domain"
	"langshift/internal/services/events/repo"
)

type countingCH struct {
	inserts int
	ddl     []string
}

func (c *countingCH) Insert(context.Context, string, any) error                 { c.inserts++; return nil }
func (c *countingCH) Exec(_ context.Context, sql string, _ ...any) error        { c.ddl = append(c.ddl, sql); return nil }
func (c *countingCH) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (c *countingCH) Close() error                                              { return nil }

func TestFromConfig(t *testing.T) {
	t.Setenv("EVENTS_CH", "true")
	t.Setenv("EVENTS_BATCH", "10")
	t.Setenv("EVENTS_FLUSH", "250ms")
	o := FromConfig(config.New())
	if !o.Log || !o.CH || o.BatchSize != 10 || o.FlushEvery != 250*time.Millisecond || o.CHTable != repo.DefaultTable {
		t.Fatalf("opts = %+v", o)
	}
}

func TestNew_ClickhouseSinkFlushesOnClose(t *testing.T) {
	t.Setenv("EVENTS_LOG", "false")
	t.Setenv("EVENTS_CH", "true")

	ch := &countingCH{}
	m := New(modkit.Deps{Cfg: config.New(), CH: ch})
	p := module.MustPortsOf[Ports](m)
	p.Emitter.Emit(context.Background(), domain.Event{Kind: domain.LanguageDetected})

	if err := m.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if ch.inserts != 1 {
		t.Fatalf("inserts = %d, want 1", ch.inserts)
	}
	if len(ch.ddl) != 1 || !strings.Contains(ch.ddl[0], "CREATE TABLE IF NOT EXISTS conversion_events") {
		t.Fatalf("schema not applied: %v", ch.ddl)
	}
}

func TestNew_ClickhouseMissingIsSkipped(t *testing.T) {
	t.Setenv("EVENTS_CH", "true")

	m := New(modkit.Deps{Cfg: config.New()})
	if m.svc.Sinks() != 1 {
		t.Fatalf("sinks = %d, want log sink only", m.svc.Sinks())
	}
	if m.Name() != "events" {
		t.Fatalf("name = %s", m.Name())
	}
}
