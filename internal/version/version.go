// Package version exposes build metadata for the application.
// The variables are populated at build time via -ldflags, for example:
//
//	go build -ldflags "-X github.com/ogaidukov/gauth/internal/version.Version=1.2.3"
package version

// Build information. Overridden by the linker at release time.
//
//nolint:gochecknoglobals // These are set via -ldflags and must be package-level variables.
var (
	// Version is the semantic version of the binary.
	Version = "1.0.0"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// BuildTime is the timestamp of the build.
	BuildTime = "unknown"
)

// Short returns the bare semantic version.
func Short() string {
	return Version
}

// Full returns the version together with the commit and build timestamp.
func Full() string {
	return Version + " (commit " + Commit + ", built " + BuildTime + ")"
}
