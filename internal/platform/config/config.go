// Package config reads service settings from prefixed environment variables.
// Malformed values fall back to the default with a warning; an out-of-set enum panics.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"langshift/internal/platform/logger"
)

// Conf is a prefixed view over the environment, e.g. New().Prefix("PG_")
type Conf struct{ prefix string }

// New returns an unprefixed Conf
func New() Conf { return Conf{} }

// Prefix returns a child Conf whose keys are namespaced by p
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) lookup(k string) string { return strings.TrimSpace(os.Getenv(c.key(k))) }

// parsed applies parse to the value under k; unset yields def, a parse failure logs and yields def
func parsed[T any](c Conf, k string, def T, kind string, parse func(string) (T, error)) T {
	s := c.lookup(k)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Named("config").Warn().
			Str("key", c.key(k)).
			Str("value", s).
			Interface("default", def).
			Msgf("invalid %s; using default", kind)
		return def
	}
	return v
}

// MayString returns the trimmed value or def
func (c Conf) MayString(k, def string) string {
	if v := c.lookup(k); v != "" {
		return v
	}
	return def
}

// MayInt returns the integer value or def
func (c Conf) MayInt(k string, def int) int {
	return parsed(c, k, def, "int", strconv.Atoi)
}

// MayBool returns the strconv.ParseBool value or def
func (c Conf) MayBool(k string, def bool) bool {
	return parsed(c, k, def, "bool", strconv.ParseBool)
}

// MayDuration returns a time.ParseDuration value or def
func (c Conf) MayDuration(k string, def time.Duration) time.Duration {
	return parsed(c, k, def, "duration", time.ParseDuration)
}

// MayCSV splits a comma separated value, dropping blanks; def when nothing remains
func (c Conf) MayCSV(k string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.lookup(k), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the value (or def) when it case-folds to one of allowed; anything else panics
func (c Conf) MayEnum(k, def string, allowed ...string) string {
	v := c.MayString(k, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return v
		}
	}
	logger.Get().Panic().Str("key", c.key(k)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
