// Package version provides build-time version information, set via ldflags.
package version

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Full returns the version line printed by `paywallui version`.
func Full() string {
	if Version == "dev" {
		return "paywallui version dev (built from source)"
	}
	return "paywallui version " + Version + " (" + Commit + ", " + Date + ")"
}
