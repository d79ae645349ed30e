// Package module wires the conversion quota limiter
package module

import (
	"time"

	"langshift/internal/modkit"
	"langshift/internal/modkit/httpkit"
	"langshift/internal/platform/config"
	dom "langshift/internal/services/quota/domain"
	"langshift/internal/services/quota/service"
)

// Options controls the limiter
type Options struct {
	Limit  int
	Window time.Duration
}

// FromConfig reads with QUOTA_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("QUOTA_")
	return Options{
		Limit:  c.MayInt("LIMIT", 100),
		Window: c.MayDuration("WINDOW", 60*time.Second),
	}
}

// Ports holds the ports exposed by the quota module
type Ports struct {
	Limiter dom.LimiterPort
}

// Module defines the quota module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the quota module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)
	svc := service.New(service.Config{Limit: opts.Limit, Window: opts.Window})
	return &Module{deps: deps, ports: Ports{Limiter: svc}}
}

// Ports returns the module ports (Limiter)
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "quota" }

// Prefix returns the module route prefix (none)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
