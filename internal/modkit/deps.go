// Package modkit assembles API modules from shared dependencies and options
package modkit

import (
	"langshift/internal/modkit/repokit"
	"langshift/internal/platform/config"
	"langshift/internal/platform/logger"
	"langshift/internal/platform/store"
)

// Deps are handed to every module constructor; PG and CH are nil when the backend is not configured
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}

// Logger returns Log tagged with the module component
func (d Deps) Logger(component string) *logger.Logger {
	l := d.Log.With().Str("component", component).Logger()
	return &l
}
