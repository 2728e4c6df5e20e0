package version

import "runtime/debug"

var (
	// Version is set via ldflags during build
	Version = "dev"

	// Commit is set via ldflags during build
	Commit = ""
)

// Short returns the version string
func Short() string {
	return Version
}

// Long returns the version with the commit, falling back to the VCS
// revision embedded by the go toolchain.
func Long() string {
	commit := Commit
	if commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" {
					commit = s.Value
					break
				}
			}
		}
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if commit == "" {
		return Version
	}
	return Version + " (" + commit + ")"
}
