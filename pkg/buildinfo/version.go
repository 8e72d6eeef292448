// Package buildinfo reports the version of the lanparty binary.
//
// Release builds stamp the variables with ldflags:
//
//	go build -ldflags "-X github.com/nbourre/lanparty/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/nbourre/lanparty/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/nbourre/lanparty/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Unstamped builds installed with "go install" fall back to the module
// version and VCS settings recorded by the Go toolchain.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Resolve fills unstamped fields from the embedded build info.
func Resolve() (version, commit, date string) {
	version, commit, date = Version, Commit, Date
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && commit == "none" && s.Value != "":
			commit = s.Value
			if len(commit) > 12 {
				commit = commit[:12]
			}
		case s.Key == "vcs.time" && date == "unknown" && s.Value != "":
			date = s.Value
		}
	}
	return
}

// String returns the formatted build information.
func String() string {
	v, c, d := Resolve()
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", v, c, d)
}

// Template returns the version template string for cobra.
func Template() string {
	v, c, d := Resolve()
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", v, c, d)
}
