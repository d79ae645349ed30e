// Package module wires stats into the API using modkit
package module

import (
	modkit "langshift/internal/modkit"
	"langshift/internal/modkit/httpkit"
	convertmod "langshift/internal/services/api/convert/module"
	statshttp "langshift/internal/services/api/stats/http"
	statsrepo "langshift/internal/services/api/stats/repo"
	statssvc "langshift/internal/services/api/stats/service"
	eventsmod "langshift/internal/services/events/module"
)

// Module implements the stats module
type Module struct {
	modkit.Built
	svc statssvc.Service
}

// New constructs the stats module; without clickhouse every route answers 503
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build([]modkit.Option{modkit.WithName("stats"), modkit.WithPrefix("/stats")}, opts...)

	if err := convertmod.RegisterValidators(); err != nil {
		panic(err)
	}

	var repo statsrepo.Repo
	if deps.CH != nil {
		repo = statsrepo.NewCH(deps.CH, eventsmod.FromConfig(deps.Cfg).CHTable)
	}
	return &Module{Built: b, svc: statssvc.New(repo)}
}

// MountRoutes mounts /pairs and /daily
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(r httpkit.Router) { statshttp.Register(r, m.svc) })
}

// Ports returns the stats service port
func (m *Module) Ports() any { return m.svc }
