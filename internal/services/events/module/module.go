// Package module wires the event sinks and exposes the emitter port
package module

import (
	"context"
	"time"

	"langshift/internal/modkit"
	"langshift/internal/modkit/httpkit"
	"langshift/internal/services/events/domain"
	"langshift/internal/services/events/repo"
	"langshift/internal/services/events/service"
)

// Module defines the events module
type Module struct {
	deps  modkit.Deps
	svc   *service.Service
	ports Ports
}

// New constructs the events module; EVENTS_CH without a clickhouse connection is ignored with a warning
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)
	log := deps.Logger("events")

	var sinks []domain.Sink
	if opts.Log {
		sinks = append(sinks, service.NewLogSink(deps.Log))
	}
	if opts.CH {
		if deps.CH == nil {
			log.Warn().Msg("EVENTS_CH=true but clickhouse is disabled; skipping clickhouse sink")
		} else {
			w := repo.NewCH(deps.CH, opts.CHTable)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := w.EnsureSchema(ctx); err != nil {
				log.Warn().Err(err).Str("table", w.Table()).Msg("events schema not applied")
			}
			cancel()
			sinks = append(sinks, service.NewBatchSink(
				w,
				service.BatchConfig{Size: opts.BatchSize, Interval: opts.FlushEvery},
				deps.Log,
			))
		}
	}

	svc := service.New(*log, sinks...)
	log.Debug().Int("sinks", svc.Sinks()).Msg("events ready")

	return &Module{
		deps:  deps,
		svc:   svc,
		ports: Ports{Emitter: svc},
	}
}

// Close flushes buffered events
func (m *Module) Close(ctx context.Context) error { return m.svc.Close(ctx) }

// Ports returns the module ports (Emitter)
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "events" }

// Prefix returns the module route prefix (none)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
