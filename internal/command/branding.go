// Where: cli/internal/command/branding.go
// What: Brand-aware CLI naming.
// Why: Keep user-facing command names consistent with the installed binary name.
package command

import (
	"os"
	"strings"

	"github.com/poruru/county-data/cli/internal/constants"
	"github.com/poruru/county-data/cli/internal/meta"
)

func cliName() string {
	name := strings.TrimSpace(os.Getenv(constants.EnvCLICmd))
	if name == "" {
		name = strings.TrimSpace(meta.Slug)
	}
	return name
}
