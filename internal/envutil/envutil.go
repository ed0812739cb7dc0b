// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"
	"strings"

	"github.com/poruru/county-data/cli/internal/constants"
	"github.com/poruru/county-data/cli/internal/meta"
)

// HostEnvKey constructs a host-level environment variable name
// by combining ENV_PREFIX with the given suffix.
// Example: HostEnvKey("OUT_DIR") returns "COUNTYSEED_OUT_DIR" when ENV_PREFIX is unset.
func HostEnvKey(suffix string) string {
	prefix := strings.TrimSpace(os.Getenv(constants.EnvPrefixOverride))
	if prefix == "" {
		prefix = meta.EnvPrefix
	}
	return prefix + "_" + suffix
}

// GetHostEnv retrieves a host-level environment variable, trimmed.
func GetHostEnv(suffix string) string {
	return strings.TrimSpace(os.Getenv(HostEnvKey(suffix)))
}

// LookupHostEnv reports the trimmed value and whether it is non-empty.
func LookupHostEnv(suffix string) (string, bool) {
	value := GetHostEnv(suffix)
	return value, value != ""
}
