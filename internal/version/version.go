// Package version holds the build version, overridden at release time via
// -ldflags "-X prezicap/internal/version.Version=...".
package version

var Version = "0.1.0"
