// Package dexdb holds application-wide metadata.
package dexdb

var (
	// Version is set by the build via ldflags.
	Version = "v0.1.0"

	// Build is the timestamp or commit of the build.
	Build = "n/a"
)
