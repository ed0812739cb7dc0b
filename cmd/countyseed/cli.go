// Where: cli/cmd/countyseed/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"io"
	"os"

	"github.com/poruru/county-data/cli/internal/command"
	"github.com/poruru/county-data/cli/internal/infra/ui"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// buildDependencies constructs the runtime dependencies required by the CLI.
func buildDependencies() command.Dependencies {
	return command.Dependencies{
		Out:    stdout,
		ErrOut: stderr,
		NewUI:  ui.NewAuto,
	}
}
