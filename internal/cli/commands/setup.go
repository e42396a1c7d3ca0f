package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/scafflint/internal/checklog"
	"github.com/leapstack-labs/scafflint/internal/cli/config"
	"github.com/leapstack-labs/scafflint/internal/cli/output"
	"github.com/leapstack-labs/scafflint/internal/dbscan"
	"github.com/leapstack-labs/scafflint/pkg/lint"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Runner   *lint.Runner
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with a fully wired check
// runner and renderer.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Runner:   newCheckRunner(cfg, cfg.LintConfig(), logger),
		Renderer: r,
	}
}

// newCheckRunner wires the check engine with database discovery and the
// audit log from configuration.
func newCheckRunner(cfg *config.Config, lintCfg *lint.Config, logger *slog.Logger) *lint.Runner {
	runner := lint.NewRunner(lintCfg).
		WithScanner(dbscan.New().WithLogger(logger)).
		WithLogger(logger)
	if cfg.LogPath != "" {
		runner = runner.WithRecorder(checklog.Open(cfg.LogPath))
	}
	return runner
}

// getConfig returns the loaded config, falling back to environment
// variables with defaults when no config has been loaded (e.g. a command
// constructed directly in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	root := os.Getenv("SCAFFLINT_PROJECT_ROOT")
	if root == "" {
		root, _ = os.Getwd()
	}
	return &config.Config{
		ProjectRoot:  root,
		OutputFormat: getEnvOrDefault("SCAFFLINT_OUTPUT", config.DefaultOutput),
		LogPath:      getEnvOrDefault("SCAFFLINT_LOG_PATH", config.DefaultLogFile),
		Verbose:      os.Getenv("SCAFFLINT_VERBOSE") == "true",
	}
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ExitCodeError carries an explicit process exit code out of a command.
// main inspects it so the hook protocol's exit codes survive cobra.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}
