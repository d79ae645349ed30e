package modkit

import "langshift/internal/modkit/module"

// Module is the surface api.Mount composes
type Module = module.Module
