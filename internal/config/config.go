// Package config provides configuration management for the qlcdict CLI.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Default configuration values.
const (
	DefaultOutput = "auto" // Auto-detect: TTY=table, non-TTY=markdown
)

// maxUpwardSearchLevels limits how far up the directory tree to search for
// config files.
const maxUpwardSearchLevels = 10

// ProjectionConfig holds column projection policy.
type ProjectionConfig struct {
	// Strict makes projections fail on unknown column names instead of
	// silently skipping them.
	Strict bool `koanf:"strict"`
}

// Config holds all CLI configuration options.
type Config struct {
	// Conf is the path to an alias configuration file (YAML); empty uses the
	// built-in alias table.
	Conf string `koanf:"conf"`
	// ProfilesDir is where named orthography profiles are looked up.
	ProfilesDir string `koanf:"profiles_dir"`
	// OutputFormat selects rendering: auto, table, csv, json, markdown.
	OutputFormat string           `koanf:"output"`
	Verbose      bool             `koanf:"verbose"`
	Projection   ProjectionConfig `koanf:"projection"`
}

var configFileUsed string

// findConfigFile finds the config file to use.
// Priority: explicit path > qlcdict.yaml > qlcdict.yml, searching upward.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}

	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for i := 0; i < maxUpwardSearchLevels; i++ {
		for _, name := range []string{"qlcdict.yaml", "qlcdict.yml"} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// Load loads configuration from file, environment variables, and flags.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"conf":              "",
		"profiles_dir":      "profiles",
		"output":            DefaultOutput,
		"verbose":           false,
		"projection.strict": false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file (optional)
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Environment variables (QLCDICT_ prefix)
	// Transform: QLCDICT_PROFILES_DIR -> profiles_dir
	if err := k.Load(env.Provider("QLCDICT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "QLCDICT_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags (highest priority)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			// Kebab-case flag names map to snake_case config keys; the
			// --strict flag maps into the projection section.
			key := strings.ReplaceAll(f.Name, "-", "_")
			if key == "strict" {
				return "projection.strict", posflag.FlagVal(flags, f)
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}
