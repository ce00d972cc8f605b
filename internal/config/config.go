// Package config loads pacwrap's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
)

// Config represents the complete pacwrap configuration.
type Config struct {
	General  GeneralConfig            `toml:"general"`
	Output   OutputConfig             `toml:"output"`
	Managers map[string]ManagerConfig `toml:"managers"`
	Aliases  map[string]string        `toml:"aliases"`
}

// GeneralConfig contains general pacwrap settings.
type GeneralConfig struct {
	// DryRun prints the composed commands instead of running them.
	DryRun bool `toml:"dry_run"`

	// NoConfirm passes the package manager's non-interactive flag (like --noconfirm).
	NoConfirm bool `toml:"no_confirm"`

	// DefaultPM names the backend to use instead of detecting one (like --using).
	DefaultPM string `toml:"default_pm"`

	// Sudo runs privileged commands through sudo or doas when not root.
	Sudo bool `toml:"sudo"`

	// History records every executed operation.
	History bool `toml:"history"`

	// HistoryDays drops history entries older than this many days. 0 keeps everything.
	HistoryDays int `toml:"history_days"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	// Color enables colored output (respects NO_COLOR env var).
	Color bool `toml:"color"`

	// Unicode enables unicode symbols in output.
	Unicode bool `toml:"unicode"`

	// Verbose logs every composed command before it runs.
	Verbose bool `toml:"verbose"`
}

// ManagerConfig contains per-manager settings.
type ManagerConfig struct {
	// UseNala uses nala instead of apt if available. APT only.
	UseNala bool `toml:"use_nala"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			History:     true,
			HistoryDays: 90,
		},
		Output: OutputConfig{
			Color:   true,
			Unicode: true,
		},
		Managers: map[string]ManagerConfig{
			"apt": {UseNala: false},
		},
		Aliases: map[string]string{},
	}
}

// Load loads the configuration from the default path.
// If the config file doesn't exist, it returns the default configuration.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom loads the configuration from a specific path.
// If the config file doesn't exist, it returns the default configuration.
// Keys that pacwrap does not know are rejected.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse config %s: unknown key %q", path, undecoded[0].String())
	}

	return cfg, nil
}

// ResolveAlias returns the package name an alias stands for, or pkg itself.
func (c *Config) ResolveAlias(pkg string) string {
	if alias, ok := c.Aliases[pkg]; ok {
		return alias
	}
	return pkg
}

// ResolveAliases resolves every keyword, keeping order and duplicates.
func (c *Config) ResolveAliases(packages []string) []string {
	if len(packages) == 0 {
		return packages
	}
	resolved := make([]string, len(packages))
	for i, pkg := range packages {
		resolved[i] = c.ResolveAlias(pkg)
	}
	return resolved
}

// GetManagerConfig returns the configuration for a specific manager.
// Returns an empty config if no configuration exists for the manager.
func (c *Config) GetManagerConfig(name string) ManagerConfig {
	if cfg, ok := c.Managers[name]; ok {
		return cfg
	}
	return ManagerConfig{}
}

// AliasNames returns the configured alias names, sorted.
func (c *Config) AliasNames() []string {
	names := make([]string, 0, len(c.Aliases))
	for name := range c.Aliases {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ShouldUseColor returns true if colored output should be used.
// Respects the NO_COLOR environment variable.
func (c *Config) ShouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return c.Output.Color
}
