package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/scafflint/internal/hook"
	_ "github.com/leapstack-labs/scafflint/pkg/lint/rules" // register rules
)

// NewHookCommand creates the hook command.
func NewHookCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hook",
		Short: "Run as an agent tool-lifecycle hook",
		Long: `Run one check from an agent tool-lifecycle event on stdin.

The event payload selects the check phase: PreToolUse maps to the
before phases (path-only checks), PostToolUse to the after phases
(full content checks). Exit code 2 blocks the triggering tool call;
exit code 0 lets it proceed. Infrastructure failures never block.`,
		Example: `  # Wire into the agent settings as both hooks:
  #   PreToolUse:  scafflint hook
  #   PostToolUse: scafflint hook
  echo "$EVENT_JSON" | scafflint hook`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)

			runner := hook.NewRunner(cmdCtx.Runner, cmdCtx.Cfg.ProjectRoot,
				cmd.OutOrStdout(), cmd.ErrOrStderr()).
				WithLogger(cmdCtx.Logger)

			if code := runner.Run(cmd.InOrStdin()); code != 0 {
				return &ExitCodeError{Code: code}
			}
			return nil
		},
	}
}
