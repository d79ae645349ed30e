package modkit

import "net/http"

// Option configures Build
type Option func(*Built)

// WithName names the module in logs and the port registry
func WithName(name string) Option { return func(b *Built) { b.name = name } }

// WithPrefix sets the route prefix the module mounts under
func WithPrefix(prefix string) Option { return func(b *Built) { b.prefix = prefix } }

// WithMiddlewares appends module scoped middleware, applied in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.mw = append(b.mw, mw...) }
}

// WithPorts injects collaborators owned by other modules; the consuming module
// declares T and reads it back with PortsAs
func WithPorts[T any](p T) Option { return func(b *Built) { b.injected = p } }

// WithRegister adds routes after the module's own, mostly for tests and ad hoc debug endpoints
func WithRegister(fn func(Router)) Option {
	return func(b *Built) {
		if fn != nil {
			b.extra = append(b.extra, fn)
		}
	}
}
