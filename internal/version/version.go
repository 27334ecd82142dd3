// Package version holds build metadata injected via ldflags.
package version

//nolint:revive // Overridden by -ldflags at release build time.
var (
	Version = "dev"
	Commit  = "unknown"
)
