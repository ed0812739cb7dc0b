// Where: cli/internal/command/list.go
// What: list command handler.
// Why: Show the county list and which templates are already on disk.
package command

import (
	"fmt"
	"io"

	"github.com/poruru/county-data/cli/internal/infra/fileops"
	"github.com/poruru/county-data/cli/internal/logging"
	"github.com/poruru/county-data/cli/internal/presenters"
	"github.com/poruru/county-data/cli/internal/seeder"
)

func runList(cli CLI, deps Dependencies, out io.Writer) int {
	logger := logging.New(deps.ErrOut, cli.Verbose)

	tmpl, err := presenters.ParseListFormat(cli.List.Format)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	inputs, err := resolveInputs(cli, cli.List.Out, cli.List.Counties)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	logger.Debug("listing counties", "out_dir", inputs.Settings.OutDir, "counties", inputs.Source)

	rows := make([]presenters.CountyRow, 0, len(inputs.Counties))
	for _, rec := range inputs.Counties {
		path := seeder.Path(inputs.Settings.OutDir, rec)
		present, err := fileops.PathExists(path)
		if err != nil {
			return exitWithError(deps.ErrOut, fmt.Errorf("inspect %s: %w", path, err))
		}
		rows = append(rows, presenters.CountyRow{
			Name:    rec.Name,
			Slug:    rec.Slug,
			File:    path,
			Present: present,
		})
	}

	if err := presenters.RenderCountyList(out, tmpl, rows); err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	return 0
}
