// Where: cli/internal/command/seed.go
// What: seed command handler.
// Why: Wire settings, county list, and output into the template seeder.
package command

import (
	"io"

	"github.com/poruru/county-data/cli/internal/logging"
	"github.com/poruru/county-data/cli/internal/presenters"
	"github.com/poruru/county-data/cli/internal/seeder"
)

func runSeed(cli CLI, deps Dependencies, out io.Writer) int {
	logger := logging.New(deps.ErrOut, cli.Verbose)

	inputs, err := resolveInputs(cli, cli.Seed.Out, cli.Seed.Counties)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	logger.Debug("settings resolved",
		"config", inputs.Settings.ConfigPath,
		"out_dir", inputs.Settings.OutDir,
		"counties", inputs.Source,
		"dry_run", cli.Seed.DryRun,
	)

	ui := deps.NewUI(out)
	if cli.Verbose {
		presenters.PrintSettings(ui, inputs.Settings.ConfigPath, inputs.Settings.OutDir, inputs.Source, len(inputs.Counties))
	}

	report, err := seeder.Seeder{
		Dir:     inputs.Settings.OutDir,
		Records: inputs.Counties,
		DryRun:  cli.Seed.DryRun,
		UI:      ui,
		Logger:  logger,
	}.Run()
	if err != nil {
		logger.Error("seed failed", "created", len(report.Created), "existing", len(report.Existing), "error", err)
		return exitWithError(deps.ErrOut, err)
	}

	presenters.PrintSeedSummary(ui, report)
	return 0
}
