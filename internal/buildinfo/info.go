// Package buildinfo holds version metadata injected at build time via
// -ldflags.
package buildinfo

// Set by the linker.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
