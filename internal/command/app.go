// Where: cli/internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/poruru/county-data/cli/internal/infra/ui"
	"github.com/poruru/county-data/cli/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
type Dependencies struct {
	Out    io.Writer
	ErrOut io.Writer
	// NewUI builds the stdout interface; defaults to ui.NewAuto.
	NewUI func(io.Writer) ui.UserInterface
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	Config  string     `name:"config" help:"Path to countyseed.yaml (default: ./countyseed.yaml when present)"`
	EnvFile string     `name:"env-file" help:"Path to .env file"`
	Verbose bool       `short:"v" help:"Log diagnostics to stderr"`
	Seed    SeedCmd    `cmd:"" default:"withargs" help:"Create missing county location templates (default)"`
	List    ListCmd    `cmd:"" help:"List counties and whether their template exists"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type (
	// SeedCmd defines the seed command flags.
	SeedCmd struct {
		Out      string `short:"o" name:"out" help:"Output directory (default: data/locations)"`
		Counties string `short:"c" name:"counties" help:"County manifest (YAML or JSON) replacing the built-in list"`
		DryRun   bool   `name:"dry-run" help:"Report what would be created without writing"`
	}

	// ListCmd defines the list command flags.
	ListCmd struct {
		Out      string `short:"o" name:"out" help:"Output directory to inspect (default: data/locations)"`
		Counties string `short:"c" name:"counties" help:"County manifest (YAML or JSON) replacing the built-in list"`
		Format   string `short:"f" name:"format" help:"Go template per county (fields: Name, Slug, File, Present; sprig functions available)"`
	}

	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.NewUI == nil {
		deps.NewUI = ui.NewAuto
	}

	// Bare invocation seeds with defaults.
	if len(args) == 0 {
		args = []string{"seed"}
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(cliName()),
		kong.Description("Create placeholder JSON templates for county location data."),
		kong.Writers(out, deps.ErrOut),
	)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(err, deps)
	}

	// Load environment file if provided or if .env exists in current directory
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			legacyUI(deps.ErrOut).Warn(fmt.Sprintf("Warning: failed to load env file %s: %v", cli.EnvFile, err))
		}
	} else {
		if _, err := os.Stat(".env"); err == nil {
			if err := godotenv.Load(); err != nil {
				legacyUI(deps.ErrOut).Warn(fmt.Sprintf("Warning: failed to load .env: %v", err))
			}
		}
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	legacyUI(deps.ErrOut).Warn("unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"seed":    runSeed,
		"list":    runList,
		"version": func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}
	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	legacyUI(out).Info(version.String())
	return 0
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(err error, deps Dependencies) int {
	msg := err.Error()
	if strings.Contains(msg, "expected string value") {
		ui := legacyUI(deps.ErrOut)
		cmd := cliName()
		switch {
		case strings.Contains(msg, "--out"):
			ui.Warn("`-o/--out` expects a directory path.")
			ui.Info(fmt.Sprintf("Example: %s seed --out data/locations", cmd))
			return 1
		case strings.Contains(msg, "--counties"):
			ui.Warn("`-c/--counties` expects a manifest path.")
			ui.Info(fmt.Sprintf("Example: %s seed --counties counties.yaml", cmd))
			return 1
		case strings.Contains(msg, "--format"):
			ui.Warn("`-f/--format` expects a Go template.")
			ui.Info(fmt.Sprintf("Example: %s list --format '{{ .Slug }}'", cmd))
			return 1
		case strings.Contains(msg, "--env-file"):
			ui.Warn("`--env-file` expects a value. Provide a file path.")
			ui.Info(fmt.Sprintf("Example: %s --env-file .env.local", cmd))
			return 1
		case strings.Contains(msg, "--config"):
			ui.Warn("`--config` expects a value. Provide a file path.")
			ui.Info(fmt.Sprintf("Example: %s --config countyseed.yaml", cmd))
			return 1
		}
	}
	return exitWithError(deps.ErrOut, err)
}
