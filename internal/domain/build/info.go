// Package build provides domain entities for build information.
package build

import "fmt"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String formats the info on one line.
func (i Info) String() string {
	version := i.Version
	if version == "" {
		version = "dev"
	}
	s := "dockpane " + version
	if i.Commit != "" && i.Commit != "unknown" {
		s += fmt.Sprintf(" (%s)", shortCommit(i.Commit))
	}
	if i.BuildDate != "" && i.BuildDate != "unknown" {
		s += " built " + i.BuildDate
	}
	if i.GoVersion != "" {
		s += " " + i.GoVersion
	}
	return s
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/dockpane"
}
