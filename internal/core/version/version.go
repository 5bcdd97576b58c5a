// Package version provides information about the build of the binary.
package version

// BuildInfo holds version information about the build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information. The version, commit, and date variables
// are set at build time using -ldflags.
func Info() BuildInfo {
	// -ldflags "-X 'peoplestats/internal/core/version.version=v0.1.0'
	// -X 'peoplestats/internal/core/version.commit=abcd' -X 'peoplestats/internal/core/version.date=2026-10-19'"
	return BuildInfo{
		Service: "peoplestats",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// Fields flattens the build info into static log fields
func (b BuildInfo) Fields() map[string]string {
	return map[string]string{"version": b.Version, "commit": b.Commit}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
