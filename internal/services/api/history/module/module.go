// Package module wires the history API using modkit
package module

import (
	modkit "langshift/internal/modkit"
	"langshift/internal/modkit/httpkit"
	hhttp "langshift/internal/services/api/history/http"
	hsvc "langshift/internal/services/api/history/service"
	evdom "langshift/internal/services/events/domain"
	histdom "langshift/internal/services/history/domain"
)

// Ports declares the collaborators injected with modkit.WithPorts; Query is required
type Ports struct {
	Query  histdom.QueryPort
	Events evdom.EmitterPort
}

// Module implements the history API module
type Module struct {
	modkit.Built
	svc hsvc.Service
}

// New constructs the history API module; it panics without an injected query port
func New(_ modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build([]modkit.Option{modkit.WithName("history-api"), modkit.WithPrefix("/history")}, opts...)

	p, ok := modkit.PortsAs[Ports](b)
	if !ok || p.Query == nil {
		panic("history-api: modkit.WithPorts(Ports{Query: ...}) is required")
	}
	return &Module{Built: b, svc: hsvc.New(p.Query, p.Events)}
}

// MountRoutes mounts GET and DELETE on the prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(r httpkit.Router) { hhttp.Register(r, m.svc) })
}

// Ports returns nothing; this module only consumes
func (m *Module) Ports() any { return nil }
