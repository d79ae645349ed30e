package module

import (
	"langshift/internal/core/normalize"
	"langshift/internal/core/rewrite"
	"langshift/internal/platform/config"
)

// Options controls the converter core
type Options struct {
	CatalogPath string
	IndentUnit  int
	MaxBytes    int
}

// FromConfig reads CATALOG_PATH and the CORE_ prefixed knobs
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_")
	return Options{
		CatalogPath: cfg.MayString("CATALOG_PATH", ""),
		IndentUnit:  c.MayInt("REWRITE_INDENT_UNIT", rewrite.DefaultIndentUnit),
		MaxBytes:    c.MayInt("SANITIZE_MAX_BYTES", normalize.DefaultMaxBytes),
	}
}
