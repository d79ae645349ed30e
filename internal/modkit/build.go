package modkit

import (
	"net/http"

	"langshift/internal/modkit/httpkit"
	str "langshift/internal/platform/strings"
)

// Router is the seam modules mount on
type Router = httpkit.Router

// Built carries the module identity and mount configuration; API modules embed it
// and get Name, Prefix, Middlewares and Mount for free
type Built struct {
	name     string
	prefix   string
	mw       []func(http.Handler) http.Handler
	injected any
	extra    []func(Router)
}

// Build applies defaults then opts in order, so callers can override defaults
func Build(defaults []Option, opts ...Option) Built {
	var b Built
	for _, o := range append(append([]Option(nil), defaults...), opts...) {
		o(&b)
	}
	return b
}

// Name returns the module name; an unnamed module panics
func (b Built) Name() string { return str.MustString(b.name, "module name") }

// Prefix returns the route prefix; an empty prefix panics
func (b Built) Prefix() string { return str.MustPrefix(b.prefix) }

// Middlewares returns a copy of the module middleware
func (b Built) Middlewares() []func(http.Handler) http.Handler {
	return append([]func(http.Handler) http.Handler(nil), b.mw...)
}

// Mount routes the prefix, applies middleware, then runs own and any WithRegister hooks
func (b Built) Mount(r Router, own func(Router)) {
	r.Route(b.Prefix(), func(rr Router) {
		rr.Use(b.mw...)
		if own != nil {
			own(rr)
		}
		for _, fn := range b.extra {
			fn(rr)
		}
	})
}

// PortsAs returns the injected ports when they are a T
func PortsAs[T any](b Built) (T, bool) {
	p, ok := b.injected.(T)
	return p, ok
}
