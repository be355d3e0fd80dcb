// Package version reports build metadata stamped in with -ldflags
package version

import (
	"runtime"
	"runtime/debug"
)

// BuildInfo describes the running binary
type BuildInfo struct {
	Service   string `json:"service"    example:"almanac-api"`
	Version   string `json:"version"    example:"v0.3.0"`
	Commit    string `json:"commit"     example:"1a2b3c4"`
	Date      string `json:"date"       example:"2026-10-01"`
	GoVersion string `json:"go_version" example:"go1.25.0"`
}

// set with
// -ldflags "-X 'almanac/internal/core/version.version=v0.3.0' -X 'almanac/internal/core/version.commit=1a2b3c4'"
var (
	version = "dev"
	commit  = ""
	date    = "unknown"
)

// Info returns build metadata for service
// commit falls back to the vcs stamp the go tool embeds
func Info(service string) BuildInfo {
	c := commit
	if c == "" {
		c = vcsRevision()
	}
	return BuildInfo{
		Service:   service,
		Version:   version,
		Commit:    c,
		Date:      date,
		GoVersion: runtime.Version(),
	}
}

func vcsRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "none"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return "none"
}
