// Package build provides version and build information for chlog.
// This package intentionally has no dependencies on other internal packages
// to avoid import cycles.
package build

import "fmt"

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}

// Info returns a one-line summary of the build.
func Info() string {
	return fmt.Sprintf("chlog %s (commit %s, built %s)", Version, Commit, BuildDate)
}
