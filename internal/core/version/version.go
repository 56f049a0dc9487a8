// Package version provides information about the build version of the service.
package version

// Classifier is the version stamped onto every classification and audit
// event. Bump when lexicons or scoring semantics change so persisted
// priorities can be distinguished by the rules that produced them
const Classifier = 1

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'incommand/internal/core/version.version=v0.0.1'
	// -X 'incommand/internal/core/version.commit=abcd' -X 'incommand/internal/core/version.date=2026-09-01'"
	return BuildInfo{
		Service: "incommand-api",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
