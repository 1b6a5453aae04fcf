// Package buildinfo reports the pvlocate version from Go build metadata.
package buildinfo

import (
	"runtime"
	"runtime/debug"
)

// Info describes the running pvlocate binary.
type Info struct {
	Version   string // "v0.2.0", "dev-<hash>[-dirty]", "dev" or "unknown"
	GoVersion string // toolchain that built the binary
	Target    string // GOOS/GOARCH the binary was built for
}

// Read collects Info for the running binary.
func Read() Info {
	return Info{
		Version:   Version(),
		GoVersion: runtime.Version(),
		Target:    runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String formats i as "v0.2.0 (go1.25.8, linux/arm)".
func (i Info) String() string {
	return i.Version + " (" + i.GoVersion + ", " + i.Target + ")"
}

// Version returns the module version of a tagged build, or a pseudo-version
// built from the VCS stamps of a source build.
func Version() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	return versionFrom(bi)
}

// Full is Read().String(), the text printed by --version.
func Full() string {
	return Read().String()
}

func versionFrom(bi *debug.BuildInfo) string {
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	revision, dirty := vcsStamp(bi.Settings)
	switch {
	case revision == "":
		return "dev"
	case dirty:
		return "dev-" + revision + "-dirty"
	default:
		return "dev-" + revision
	}
}

// vcsStamp returns the short commit hash and whether the tree was modified.
func vcsStamp(settings []debug.BuildSetting) (revision string, dirty bool) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	return revision, dirty
}
