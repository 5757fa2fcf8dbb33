// Package version provides version information for the chunkpaste CLI tool.
package version

import (
	"fmt"
	"runtime"
)

// AppName is the name reported in logs and version output.
const AppName = "chunkpaste"

// These variables are populated at build time using -ldflags.
// Example:
// go build -ldflags "-X 'chunkpaste/pkg/version.Version=1.2.3' -X 'chunkpaste/pkg/version.Commit=abcdefg' -X 'chunkpaste/pkg/version.BuildTime=2026-10-19T15:04:05Z'"
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info contains comprehensive version information.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string // OS and architecture
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns the version information on a single line, e.g.
// chunkpaste version 1.2.3 (commit: abcdefg) built at 2026-10-19T15:04:05Z with go1.23.1 on linux/amd64
func (i Info) String() string {
	return fmt.Sprintf(
		"%s version %s (commit: %s) built at %s with %s on %s",
		AppName,
		i.Version,
		i.GitCommit,
		i.BuildTime,
		i.GoVersion,
		i.Platform,
	)
}
