// Where: cli/cmd/countyseed/main.go
// What: CLI entrypoint.
// Why: Execute countyseed commands with configured dependencies.
package main

import (
	"os"

	"github.com/poruru/county-data/cli/internal/command"
)

func main() {
	os.Exit(command.Run(os.Args[1:], buildDependencies()))
}
