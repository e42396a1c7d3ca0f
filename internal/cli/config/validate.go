package config

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/scafflint/pkg/core"
)

// validOutputFormats are the accepted values for the output setting.
var validOutputFormats = map[string]bool{
	"":         true,
	"auto":     true,
	"text":     true,
	"markdown": true,
	"json":     true,
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !validOutputFormats[c.OutputFormat] {
		return fmt.Errorf("invalid output format %q (valid: auto, text, markdown, json)", c.OutputFormat)
	}
	for id, sev := range c.SeverityOverrides {
		if _, ok := core.ParseSeverity(sev); !ok {
			return fmt.Errorf("invalid severity %q for rule %s (valid: error, warning, info, hint)", sev, id)
		}
	}
	return nil
}

// ValidateProjectRoot checks if the project root directory exists.
// Split from Validate so that help commands work without a valid directory.
func (c *Config) ValidateProjectRoot() error {
	info, err := os.Stat(c.ProjectRoot)
	if os.IsNotExist(err) {
		return fmt.Errorf("project directory does not exist: %s\nHint: Create the directory or use --project-dir to specify a different path", c.ProjectRoot)
	}
	if err != nil {
		return fmt.Errorf("cannot access project directory %s: %w", c.ProjectRoot, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("project root is not a directory: %s", c.ProjectRoot)
	}
	return nil
}
