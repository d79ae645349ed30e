// Package module wires the history store and exposes its ports
package module

import (
	"context"
	"time"

	"langshift/internal/modkit"
	"langshift/internal/modkit/httpkit"
	"langshift/internal/services/history/repo"
	"langshift/internal/services/history/service"
)

// Module defines the history module
type Module struct {
	deps    modkit.Deps
	backend string
	ports   Ports
}

// New constructs the history module; the pg backend falls back to memory when postgres is not wired
func New(deps modkit.Deps, overrides Options) *Module {
	opts := FromConfig(deps.Cfg)
	if overrides.Backend != "" {
		opts.Backend = overrides.Backend
	}
	if overrides.Capacity != 0 {
		opts.Capacity = overrides.Capacity
	}

	log := deps.Logger("history")

	var storage repo.Storage
	backend := opts.Backend
	switch {
	case backend == BackendPG && deps.PG != nil:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := repo.EnsureSchema(ctx, deps.PG); err != nil {
			log.Warn().Err(err).Msg("history schema not applied")
		}
		cancel()
		storage = repo.NewPGStore(deps.PG)
	case backend == BackendPG:
		log.Warn().Msg("HISTORY_BACKEND=pg but postgres is disabled; using memory")
		backend = BackendMemory
		storage = repo.NewMemory()
	default:
		storage = repo.NewMemory()
	}
	log.Debug().Str("backend", backend).Int("capacity", opts.Capacity).Msg("history ready")

	svc := service.New(storage, service.Config{Capacity: opts.Capacity})

	m := &Module{deps: deps, backend: backend}
	m.ports = Ports{
		Recorder: svc,
		Query:    svc,
	}
	return m
}

// Backend reports which storage backend is active
func (m *Module) Backend() string { return m.backend }

// Ports returns the module ports (Recorder, Query)
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "history" }

// Prefix returns the module route prefix (none; routes live in the api history module)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
