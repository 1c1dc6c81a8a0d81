package tui

import "runtime/debug"

// Version is the version string shown by --version and the settings
// view. Release builds override it via -ldflags; otherwise it is derived
// from the VCS stamp of the build.
var Version = "dev"

func init() {
	if Version != "dev" {
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var revision, modified string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		}
	}
	if len(revision) < 7 {
		return
	}

	suffix := ""
	if modified == "true" {
		suffix = "-dirty"
	}
	Version = "dev (" + revision[:7] + suffix + ")"
}
