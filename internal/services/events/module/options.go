package module

import (
	"time"

	"langshift/internal/platform/config"
	"langshift/internal/services/events/repo"
)

// Options controls which event sinks are active
type Options struct {
	Log        bool
	CH         bool
	CHTable    string
	BatchSize  int
	FlushEvery time.Duration
}

// FromConfig reads with EVENTS_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("EVENTS_")
	return Options{
		Log:        c.MayBool("LOG", true),
		CH:         c.MayBool("CH", false),
		CHTable:    c.MayString("CH_TABLE", repo.DefaultTable),
		BatchSize:  c.MayInt("BATCH", 256),
		FlushEvery: c.MayDuration("FLUSH", 5*time.Second),
	}
}
