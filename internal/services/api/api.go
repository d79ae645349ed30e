// Package api provides the HTTP API for the application
package api

import (
	"context"

	"langshift/internal/platform/config"
	"langshift/internal/platform/logger"
	phttp "langshift/internal/platform/net/http"
	"langshift/internal/platform/store"

	"langshift/internal/modkit"
	"langshift/internal/modkit/httpkit"
	"langshift/internal/modkit/module"
	"langshift/internal/modkit/swaggerkit"

	convertmod "langshift/internal/services/api/convert/module"
	apihistory "langshift/internal/services/api/history/module"
	metamod "langshift/internal/services/api/meta/module"
	statsmod "langshift/internal/services/api/stats/module"

	// Supporting modules (no routes, ports only)
	eventsmod "langshift/internal/services/events/module"
	historymod "langshift/internal/services/history/module"
	quotamod "langshift/internal/services/quota/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mounted is returned by Mount; Close flushes buffered events
type Mounted struct {
	events *eventsmod.Module
}

// Close drains the event sinks
func (m *Mounted) Close(ctx context.Context) error {
	if m == nil || m.events == nil {
		return nil
	}
	return m.events.Close(ctx)
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) *Mounted {
	// shared deps for modules
	deps := modkit.Deps{Cfg: opt.Config}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
		deps.CH = opt.Store.CH
	}

	// Supporting modules first, their ports feed the API modules
	history := historymod.New(deps, historymod.Options{})
	events := eventsmod.New(deps)
	quota := quotamod.New(deps)

	hp := module.MustPortsOf[historymod.Ports](history)
	ep := module.MustPortsOf[eventsmod.Ports](events)
	qp := module.MustPortsOf[quotamod.Ports](quota)

	convert := convertmod.New(
		deps,
		modkit.WithPorts(convertmod.Ports{
			History: hp.Recorder,
			Events:  ep.Emitter,
			Limiter: qp.Limiter,
		}),
	)
	core := module.MustPortsOf[convertmod.Exposed](convert).Core

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{
			Core:        core,
			CatalogPath: convertmod.FromConfig(deps.Cfg).CatalogPath,
		})),
		history,
		events,
		quota,
		convert,
		apihistory.New(deps, modkit.WithPorts(apihistory.Ports{
			Query:  hp.Query,
			Events: ep.Emitter,
		})),
		statsmod.New(deps),
	}

	// versioned API with a common middleware stack
	stack := httpkit.CommonStack(httpkit.StackFromConfig(opt.Config.Prefix("API_")))
	httpkit.MountAPI(r, "v1", stack, func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})

	return &Mounted{events: events}
}
