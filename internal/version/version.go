// Where: cli/internal/version/version.go
// What: Version information retrieval.
// Why: Report the build's VCS revision (or module version) from build info.
package version

import (
	"fmt"
	"runtime/debug"

	"github.com/poruru/county-data/cli/internal/meta"
)

var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the short VCS revision, suffixed with "(dirty)" when the
// tree was modified. Tagged module builds report the module version instead,
// and "dev" is returned when neither is available.
func GetVersion() string {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return "dev"
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision == "" {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
		return "dev"
	}
	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}

// String returns the application name followed by its version.
func String() string {
	return meta.AppName + " " + GetVersion()
}
