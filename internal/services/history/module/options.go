package module

import (
	"strings"

	"langshift/internal/platform/config"
	"langshift/internal/services/history/domain"
)

// Backends understood by HISTORY_BACKEND
const (
	BackendMemory = "memory"
	BackendPG     = "pg"
)

// Options controls the history store
type Options struct {
	Backend  string
	Capacity int
}

// FromConfig reads with HISTORY_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("HISTORY_")
	return Options{
		Backend:  strings.ToLower(c.MayEnum("BACKEND", BackendMemory, BackendMemory, BackendPG)),
		Capacity: c.MayInt("CAPACITY", domain.DefaultCapacity),
	}
}
