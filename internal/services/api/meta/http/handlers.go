// Package http provides meta endpoints
package http

import (
	"context"
	"net/http"
	"time"

	"langshift/internal/core/shift"
	"langshift/internal/core/version"
	"langshift/internal/modkit/httpkit"
)

// probeTimeout bounds each backend ping in /ready
const probeTimeout = 2 * time.Second

// Pinger is satisfied by store handles that can be probed
type Pinger interface {
	Ping(context.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time

	// PG and CH are probed by /ready when non-nil
	PG any
	CH any

	Core        *shift.Shift
	CatalogPath string // empty for the embedded catalog

	// Modules lists the registered module names for /service
	Modules func() []string
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{d}
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/catalog", h.catalog)
}

type handlers struct{ deps Deps }

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Started string `json:"started"`
	Now     string `json:"now"`
}

// ReadyCheck is the outcome of one backend probe: ok, fail, skipped or unknown
type ReadyCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ReadyResponse is ok, degraded (a backend cannot be probed) or fail
type ReadyResponse struct {
	Status string       `json:"status"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"`
}

// ServiceResponse describes the running process
type ServiceResponse struct {
	Name    string   `json:"name"`
	Started string   `json:"started"`
	Uptime  int64    `json:"uptime"`
	Modules []string `json:"modules,omitempty"`
}

// CatalogResponse summarizes the loaded language catalog
type CatalogResponse struct {
	CatalogVersion int               `json:"catalog_version"`
	Source         string            `json:"source"`
	Languages      int               `json:"languages"`
	Pairs          int               `json:"pairs"`
	Build          version.BuildInfo `json:"build"`
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: stamp(h.deps.StartedAt),
		Now:     stamp(time.Now()),
	}, nil
}

func probe(ctx context.Context, name string, backend any) ReadyCheck {
	if backend == nil {
		return ReadyCheck{Name: name, Status: "skipped"}
	}
	p, ok := backend.(Pinger)
	if !ok {
		return ReadyCheck{Name: name, Status: "unknown"}
	}
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if err := p.Ping(ctx); err != nil {
		return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
	}
	return ReadyCheck{Name: name, Status: "ok"}
}

// ready answers 503 when any configured backend fails its ping
func (h *handlers) ready(r *http.Request) (any, error) {
	out := ReadyResponse{
		Status: "ok",
		Checks: []ReadyCheck{
			probe(r.Context(), "pg", h.deps.PG),
			probe(r.Context(), "ch", h.deps.CH),
		},
		Now: stamp(time.Now()),
	}
	for _, c := range out.Checks {
		switch {
		case c.Status == "fail":
			out.Status = "fail"
		case c.Status == "unknown" && out.Status == "ok":
			out.Status = "degraded"
		}
	}
	if out.Status == "fail" {
		return httpkit.Response{Status: http.StatusServiceUnavailable, Body: out}, nil
	}
	return out, nil
}

func (h *handlers) version(_ *http.Request) (any, error) {
	return version.For(h.deps.ServiceName), nil
}

func (h *handlers) service(_ *http.Request) (any, error) {
	out := ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: stamp(h.deps.StartedAt),
		Uptime:  int64(time.Since(h.deps.StartedAt) / time.Second),
	}
	if h.deps.Modules != nil {
		out.Modules = h.deps.Modules()
	}
	return out, nil
}

func (h *handlers) catalog(_ *http.Request) (any, error) {
	out := CatalogResponse{Source: "embedded", Build: version.For(h.deps.ServiceName)}
	if h.deps.CatalogPath != "" {
		out.Source = h.deps.CatalogPath
	}
	if h.deps.Core != nil {
		out.CatalogVersion = h.deps.Core.Catalog().Version
		out.Languages = len(h.deps.Core.Catalog().Languages)
		out.Pairs = len(h.deps.Core.Pairs())
	}
	return out, nil
}
