// Package module holds the module contract and the bootstrap port registry.
// It sits below modkit so service modules can import it without a cycle
package module

import phttp "langshift/internal/platform/net/http"

// Module is anything api.Mount can compose
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
