package app

import (
	"fmt"
	"runtime/debug"
)

// Overridden with -ldflags "-X github.com/safetyplan/actionplan/internal/app.Version=...".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion reports the version used in startup logs and /health.
// Commit and build time fall back to the VCS stamp recorded by the toolchain.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "" || built == "" {
		vcsCommit, vcsTime := vcsInfo()
		if commit == "" {
			commit = vcsCommit
		}
		if built == "" {
			built = vcsTime
		}
	}
	return formatVersion(Version, commit, built)
}

func formatVersion(version, commit, built string) string {
	if commit == "" {
		commit = "unknown"
	}
	if built == "" {
		built = "unknown"
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}

func vcsInfo() (commit, built string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
		case "vcs.time":
			built = s.Value
		}
	}
	return commit, built
}
