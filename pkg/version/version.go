// Package version carries the ldflags-injectable build identity that
// trimerge3's --version flag prints, trimmed from the teacher's
// pkg/version (which also carries telemetry user-agent strings this
// single-purpose tool has no use for).
package version

import (
	"fmt"
	"os"
	"path/filepath"
)

var (
	version     = "dev"
	buildCommit = "unknown"
	buildTime   = "unknown"
)

// GetVersionString returns the standard "name version (commit), built time" header.
func GetVersionString() string {
	return fmt.Sprintf("%s %s (%s), built %s", filepath.Base(os.Args[0]), version, buildCommit, buildTime)
}

func GetVersion() string { return version }

func GetBuildCommit() string { return buildCommit }

func GetBuildTime() string { return buildTime }
