// Package version reports swatch build metadata.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set with -ldflags "-X github.com/jmylchreest/swatch/internal/version.<Name>=<value>".
// Empty values fall back to the VCS stamp the Go toolchain embeds.
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// Info describes a swatch build.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Date      string `json:"date,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the running binary's build metadata.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "" {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String formats the build as "swatch version v (commit: c, built: d, go, os/arch)".
// Commit and date are omitted when unknown.
func (i Info) String() string {
	details := make([]string, 0, 4)
	if i.Commit != "" {
		commit := shortCommit(i.Commit)
		if i.Modified {
			commit += "-dirty"
		}
		details = append(details, "commit: "+commit)
	}
	if i.Date != "" {
		details = append(details, "built: "+i.Date)
	}
	details = append(details, i.GoVersion, i.Platform)
	return fmt.Sprintf("swatch version %s (%s)", i.Version, strings.Join(details, ", "))
}

// String returns the running build's version line.
func String() string {
	return Get().String()
}

// Short returns just the version number.
func Short() string {
	return Get().Version
}

func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
