package ch

import (
	"os"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"

	"langshift/internal/core/version"
)

// BuildClientInfo tags queries in system.query_log with the binary, role and build;
// role is "api" or "cli", tag the deployment label
func BuildClientInfo(role, tag string) clickhouse.ClientInfo {
	host, _ := os.Hostname()
	b := version.For("langshift")
	products := []struct{ Name, Version string }{
		{"langshift", orUnknown(tag)},
		{"role", orUnknown(role)},
		{"build", orUnknown(b.Version)},
		{"commit", orUnknown(b.Commit)},
		{"go", orUnknown(b.GoVersion)},
		{"host", orUnknown(host)},
	}
	return clickhouse.ClientInfo{Products: products}
}

func orUnknown(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "unknown"
	}
	return s
}
