// Package module wires meta endpoints into the API
package module

import (
	"time"

	"langshift/internal/core/shift"
	"langshift/internal/core/version"
	modkit "langshift/internal/modkit"
	"langshift/internal/modkit/httpkit"
	"langshift/internal/modkit/module"
	metahttp "langshift/internal/services/api/meta/http"
)

// Ports are injected with modkit.WithPorts; all fields are optional
type Ports struct {
	Core        *shift.Shift
	CatalogPath string
}

type metaModule struct {
	modkit.Built
	deps metahttp.Deps
}

// New constructs the meta module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...)
	p, _ := modkit.PortsAs[Ports](b)

	d := metahttp.Deps{
		ServiceName: version.DefaultService,
		StartedAt:   time.Now(),
		Core:        p.Core,
		CatalogPath: p.CatalogPath,
		Modules:     module.Names,
		PG:          deps.PG,
		CH:          deps.CH,
	}
	return &metaModule{Built: b, deps: d}
}

func (m *metaModule) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(r httpkit.Router) { metahttp.Register(r, m.deps) })
}

func (m *metaModule) Ports() any { return nil }
