// Package version reports the build of the running binary.
package version

import "runtime/debug"

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version,omitempty"`
}

// DefaultService names the API binary
const DefaultService = "langshift-api"

// Info returns the build information for the API.
func Info() BuildInfo { return For(DefaultService) }

// For returns the build information labelled with service.
// version, commit and date are set with -ldflags, e.g.
// -X 'langshift/internal/core/version.version=v0.1.0' -X 'langshift/internal/core/version.commit=abcd'
func For(service string) BuildInfo {
	bi := BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		bi.GoVersion = info.GoVersion
	}
	return bi
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
