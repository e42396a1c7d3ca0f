// Package config provides configuration management for the scafflint CLI.
//
// Configuration is layered: built-in defaults, then the project's
// scafflint.yaml, then SCAFFLINT_ environment variables, then CLI flags.
// The loaded Config also knows how to translate its rule settings into
// the engine's lint.Config.
package config

import (
	"strings"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
)

// ServeConfig holds configuration for the check HTTP server.
type ServeConfig struct {
	Addr string `koanf:"addr"`
}

// Config holds all CLI configuration options.
type Config struct {
	ProjectRoot       string                    `koanf:"project_root"`
	Verbose           bool                      `koanf:"verbose"`
	OutputFormat      string                    `koanf:"output"`
	LogPath           string                    `koanf:"log_path"`
	DisabledRules     []string                  `koanf:"disabled_rules"`
	SeverityOverrides map[string]string         `koanf:"severity"`
	RuleOptions       map[string]map[string]any `koanf:"rules"`
	Serve             *ServeConfig              `koanf:"serve"`
}

// Default configuration values.
const (
	DefaultLogFile   = ".scafflint/checks.jsonl"
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultServeAddr = "127.0.0.1:8424"
)

// GetServeConfig returns the serve config with defaults applied for any
// unset values.
func (c *Config) GetServeConfig() *ServeConfig {
	if c.Serve == nil {
		return &ServeConfig{Addr: DefaultServeAddr}
	}
	s := c.Serve
	if s.Addr == "" {
		s.Addr = DefaultServeAddr
	}
	return s
}

// LintConfig translates the CLI configuration into the engine's rule
// configuration. Unknown severity strings are skipped; Validate reports
// them before this point.
func (c *Config) LintConfig() *lint.Config {
	lc := lint.NewConfig()
	for _, id := range c.DisabledRules {
		lc.Disable(strings.TrimSpace(id))
	}
	for id, sev := range c.SeverityOverrides {
		if s, ok := core.ParseSeverity(sev); ok {
			lc.SetSeverity(id, s)
		}
	}
	for id, opts := range c.RuleOptions {
		lc.SetRuleOptions(id, opts)
	}
	return lc
}
