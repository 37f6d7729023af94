package config

import (
	"strings"

	"github.com/sshaaf/scribe/pkg/operations"
)

// Config is the effective scribe configuration
type Config struct {
	Commands CommandsConfig `koanf:"commands" toml:"commands"`
	Output   OutputConfig   `koanf:"output" toml:"output"`
	Log      LogConfig      `koanf:"log" toml:"log"`
}

// CommandsConfig controls which operations are available
type CommandsConfig struct {
	Enabled            []string `koanf:"enabled" toml:"enabled"`
	Disabled           []string `koanf:"disabled" toml:"disabled"`
	EnableAllByDefault bool     `koanf:"enable_all_by_default" toml:"enable_all_by_default"`
	LogOnStartup       bool     `koanf:"log_on_startup" toml:"log_on_startup"`
}

// OutputConfig controls CLI rendering
type OutputConfig struct {
	Format    string `koanf:"format" toml:"format"`
	HelpStyle string `koanf:"help_style" toml:"help_style"`
}

// LogConfig controls the log file
type LogConfig struct {
	File string `koanf:"file" toml:"file"`
}

// Policy converts the commands section into an operations policy
func (c *Config) Policy() operations.Policy {
	return operations.Policy{
		Enabled:            nonEmpty(c.Commands.Enabled),
		Disabled:           nonEmpty(c.Commands.Disabled),
		EnableAllByDefault: c.Commands.EnableAllByDefault,
		LogOnStartup:       c.Commands.LogOnStartup,
	}
}

// nonEmpty drops blank names, which an env value like "a," produces
func nonEmpty(names []string) []string {
	var out []string
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}
