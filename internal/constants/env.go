// Where: cli/internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

const (
	// Host-level suffixes, resolved with envutil.HostEnvKey.
	HostSuffixConfigPath   = "CONFIG_PATH"
	HostSuffixOutDir       = "OUT_DIR"
	HostSuffixCountiesFile = "COUNTIES_FILE"

	// EnvPrefixOverride replaces the default COUNTYSEED prefix when set.
	EnvPrefixOverride = "ENV_PREFIX"

	// EnvCLICmd overrides the command name shown in usage hints.
	EnvCLICmd = "CLI_CMD"
)
