// Where: cli/internal/config/project.go
// What: Project config load helpers and settings resolution.
// Why: Merge countyseed.yaml, environment, and flags with one precedence rule.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru/county-data/cli/internal/constants"
	"github.com/poruru/county-data/cli/internal/envutil"
	"github.com/poruru/county-data/cli/internal/meta"
	"gopkg.in/yaml.v3"
)

// ProjectConfig represents countyseed.yaml.
// Relative paths are resolved against the directory holding the file.
type ProjectConfig struct {
	OutDir       string `yaml:"out_dir,omitempty"`
	CountiesFile string `yaml:"counties_file,omitempty"`
}

// Overrides carries values supplied on the command line.
type Overrides struct {
	ConfigPath   string
	OutDir       string
	CountiesFile string
}

// Settings is the resolved configuration for a run.
type Settings struct {
	// ConfigPath is the config file that was read, or empty when none was.
	ConfigPath string
	OutDir     string
	// CountiesFile is empty when the built-in county list applies.
	CountiesFile string
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{OutDir: meta.LocationsDir}
}

// ProjectConfigPath returns the config file to read and whether it must exist.
// Priority: explicit flag, brand-prefixed CONFIG_PATH, ./countyseed.yaml.
func ProjectConfigPath(explicit string) (string, bool) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit, true
	}
	if override, ok := envutil.LookupHostEnv(constants.HostSuffixConfigPath); ok {
		return override, true
	}
	return meta.ConfigFileName, false
}

// LoadProjectConfig reads and parses a project configuration file.
func LoadProjectConfig(path string) (ProjectConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return ProjectConfig{}, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return ProjectConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve merges defaults, the project config file, environment variables,
// and flag overrides, in increasing order of precedence.
func Resolve(flags Overrides) (Settings, error) {
	settings := Defaults()

	path, required := ProjectConfigPath(flags.ConfigPath)
	cfg, err := LoadProjectConfig(path)
	switch {
	case err == nil:
		settings.ConfigPath = path
		base := filepath.Dir(path)
		if v := strings.TrimSpace(cfg.OutDir); v != "" {
			settings.OutDir = resolveRelative(base, v)
		}
		if v := strings.TrimSpace(cfg.CountiesFile); v != "" {
			settings.CountiesFile = resolveRelative(base, v)
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
		// No project config; keep defaults.
	default:
		return Settings{}, fmt.Errorf("load config: %w", err)
	}

	if v, ok := envutil.LookupHostEnv(constants.HostSuffixOutDir); ok {
		settings.OutDir = v
	}
	if v, ok := envutil.LookupHostEnv(constants.HostSuffixCountiesFile); ok {
		settings.CountiesFile = v
	}

	if v := strings.TrimSpace(flags.OutDir); v != "" {
		settings.OutDir = v
	}
	if v := strings.TrimSpace(flags.CountiesFile); v != "" {
		settings.CountiesFile = v
	}
	return settings, nil
}

func resolveRelative(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
