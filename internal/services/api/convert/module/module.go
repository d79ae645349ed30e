// Package module wires the converter into the API using modkit
package module

import (
	"langshift/internal/core/catalog"
	"langshift/internal/core/normalize"
	"langshift/internal/core/shift"
	modkit "langshift/internal/modkit"
	"langshift/internal/modkit/httpkit"
	chttp "langshift/internal/services/api/convert/http"
	csvc "langshift/internal/services/api/convert/service"
	evdom "langshift/internal/services/events/domain"
	histdom "langshift/internal/services/history/domain"
	quotadom "langshift/internal/services/quota/domain"
)

// Ports declares the optional collaborators injected with modkit.WithPorts
type Ports struct {
	History histdom.RecorderPort
	Events  evdom.EmitterPort
	Limiter quotadom.LimiterPort
}

// Exposed is what this module offers other modules
type Exposed struct {
	Core *shift.Shift
}

// Module implements the convert API module
type Module struct {
	modkit.Built
	ports Exposed
	svc   csvc.Service
}

// LoadCore builds the core from opts; an external catalog replaces the embedded one
func LoadCore(opts Options) (*shift.Shift, error) {
	var (
		cat *catalog.Catalog
		err error
	)
	if opts.CatalogPath != "" {
		cat, err = catalog.LoadFile(opts.CatalogPath)
	} else {
		cat, err = catalog.Load()
	}
	if err != nil {
		return nil, err
	}
	return shift.New(cat, shift.WithIndentUnit(opts.IndentUnit)), nil
}

// RegisterValidators adds the langtag DTO rule
func RegisterValidators() error {
	return httpkit.RegisterTag("langtag", "{0} must be a valid language identifier", normalize.ValidTag)
}

// New constructs the convert module; a bad catalog is a boot failure
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build([]modkit.Option{modkit.WithName("convert"), modkit.WithPrefix("/convert")}, opts...)

	cfg := FromConfig(deps.Cfg)
	core, err := LoadCore(cfg)
	if err != nil {
		panic("convert: " + err.Error())
	}
	if err := RegisterValidators(); err != nil {
		panic("convert: register validators: " + err.Error())
	}

	injected, _ := modkit.PortsAs[Ports](b)
	svc := csvc.New(core, csvc.Options{
		Sanitizer: normalize.New(normalize.WithMaxBytes(cfg.MaxBytes)),
		History:   injected.History,
		Events:    injected.Events,
		Limiter:   injected.Limiter,
	})

	deps.Logger("convert").Debug().
		Int("languages", len(core.Catalog().Languages)).
		Int("pairs", len(core.Pairs())).
		Str("catalog", cfg.CatalogPath).
		Msg("convert core ready")

	return &Module{Built: b, svc: svc, ports: Exposed{Core: core}}
}

// MountRoutes mounts /detect, /suggest, /run, /codec and /languages
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(r httpkit.Router) { chttp.Register(r, m.svc) })
}

// Ports exposes the loaded core
func (m *Module) Ports() any { return m.ports }
