package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/scafflint/internal/cli/output"
	"github.com/leapstack-labs/scafflint/internal/dbscan"
)

// NewScanCommand creates the scan command.
func NewScanCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List discovered database handles",
		Long: `Scan the project's database layer and list the exported handles.

These are the names the dependency typing checks validate portal
properties against.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer
			if format != "" {
				r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(format))
			}

			scanner := dbscan.New().WithLogger(cmdCtx.Logger)
			names, err := scanner.DatabaseNames(cmdCtx.Cfg.ProjectRoot)
			if err != nil {
				return fmt.Errorf("scan databases: %w", err)
			}

			if r.EffectiveMode() == output.ModeJSON {
				enc := json.NewEncoder(r.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{"databases": names})
			}

			if len(names) == 0 {
				r.Info("no database handles found")
				return nil
			}
			for _, name := range names {
				r.Println(name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, json, markdown")
	return cmd
}
