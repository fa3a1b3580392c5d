// Package version holds build information injected at link time.
package version

// Set with -ldflags "-X github.com/arthur-debert/twmerge/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
