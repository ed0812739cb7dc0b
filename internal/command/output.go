// Where: cli/internal/command/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface usage for diagnostics and raw lines.
package command

import (
	"io"

	"github.com/poruru/county-data/cli/internal/infra/ui"
)

func legacyUI(out io.Writer) ui.UserInterface {
	return ui.NewPlainUI(out)
}
