// Where: cli/internal/command/counties.go
// What: Settings and county list resolution shared by seed and list.
// Why: Both commands read config and manifests the same way.
package command

import (
	"github.com/poruru/county-data/cli/internal/config"
	"github.com/poruru/county-data/cli/internal/domain/county"
	"github.com/poruru/county-data/cli/internal/manifest"
)

const builtInSource = "built-in"

// runInputs is what a command needs before touching the output directory.
type runInputs struct {
	Settings config.Settings
	Counties []county.Record
	// Source is the manifest path, or "built-in".
	Source string
}

func resolveInputs(cli CLI, outDir, countiesFile string) (runInputs, error) {
	settings, err := config.Resolve(config.Overrides{
		ConfigPath:   cli.Config,
		OutDir:       outDir,
		CountiesFile: countiesFile,
	})
	if err != nil {
		return runInputs{}, err
	}

	if settings.CountiesFile == "" {
		return runInputs{Settings: settings, Counties: county.Defaults(), Source: builtInSource}, nil
	}
	records, err := manifest.Load(settings.CountiesFile)
	if err != nil {
		return runInputs{}, err
	}
	return runInputs{Settings: settings, Counties: records, Source: settings.CountiesFile}, nil
}
