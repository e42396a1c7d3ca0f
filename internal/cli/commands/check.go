package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/scafflint/internal/cli/config"
	"github.com/leapstack-labs/scafflint/internal/cli/output"
	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	_ "github.com/leapstack-labs/scafflint/pkg/lint/rules" // register rules
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Phase   string   // Check phase to run
	Rules   []string // Only run these rules
	Disable []string // Additionally disabled rules
	Format  string   // Output format
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Check files against scaffolding conventions",
		Long: `Check TypeScript files against the scaffolding conventions.

With no arguments the whole project tree is checked. Arguments may be
individual files or directories; directories are walked for .ts and
.tsx sources.

Exits non-zero when any error-severity finding is reported.`,
		Example: `  # Check the whole project
  scafflint check

  # Check a single file
  scafflint check src/controllers/ctrl.listUsers.ts

  # Check only naming rules
  scafflint check --rule CT01 --rule FN01

  # Path-only checks, as run before a write
  scafflint check --phase before-write`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Phase, "phase", "after-write", "Check phase: before-write, before-edit, after-write, after-edit")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Only run the given rule IDs")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Disable the given rule IDs")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

// fileResult pairs a checked file with its outcome.
type fileResult struct {
	Path     string   `json:"path"`
	Category string   `json:"category"`
	Errors   []string `json:"errors,omitempty"`
	Messages []string `json:"messages,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	phase, ok := core.ParsePhase(opts.Phase)
	if !ok {
		return fmt.Errorf("invalid phase %q (valid: before-write, before-edit, after-write, after-edit)", opts.Phase)
	}

	if err := cfg.ValidateProjectRoot(); err != nil {
		return err
	}

	files, err := collectFiles(cfg.ProjectRoot, args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		r.Info("no TypeScript files to check")
		return nil
	}

	runner := newCheckRunner(cfg, buildCheckConfig(cfg, opts), cmdCtx.Logger)
	results, err := checkFiles(cmd.Context(), runner, cfg.ProjectRoot, phase, files)
	if err != nil {
		return err
	}

	errorCount := 0
	for _, res := range results {
		errorCount += len(res.Errors)
	}

	if r.EffectiveMode() == output.ModeJSON {
		if err := renderCheckJSON(r, results, errorCount); err != nil {
			return err
		}
	} else {
		renderCheckText(r, results, len(files), errorCount)
	}

	if errorCount > 0 {
		return fmt.Errorf("%d convention violations found", errorCount)
	}
	return nil
}

// collectFiles resolves the command arguments to the list of files to
// check. With no arguments the project source tree is walked.
func collectFiles(projectRoot string, args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{projectRoot}
	}

	var files []string
	for _, arg := range args {
		path := arg
		if !filepath.IsAbs(path) {
			abs, err := filepath.Abs(path)
			if err != nil {
				return nil, fmt.Errorf("resolve path %s: %w", arg, err)
			}
			path = abs
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				name := d.Name()
				if name == "node_modules" || (strings.HasPrefix(name, ".") && p != path) {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(p, ".ts") || strings.HasSuffix(p, ".tsx") {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// checkFiles runs the checker over files with bounded concurrency.
func checkFiles(ctx context.Context, runner *lint.Runner, projectRoot string, phase core.Phase, files []string) ([]fileResult, error) {
	var mu sync.Mutex
	results := make([]fileResult, 0, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var content []byte
			if !phase.Before() {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read %s: %w", file, err)
				}
				content = data
			}

			res, err := runner.Check(lint.Request{
				ProjectRoot: projectRoot,
				FilePath:    file,
				Content:     content,
				Phase:       phase,
			})
			if err != nil {
				return fmt.Errorf("check %s: %w", file, err)
			}

			mu.Lock()
			results = append(results, fileResult{
				Path:     res.Target.RelPath,
				Category: res.Target.Category.String(),
				Errors:   res.Errors,
				Messages: res.Messages,
			})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}

// buildCheckConfig layers the command's rule flags over the project
// configuration.
func buildCheckConfig(cfg *config.Config, opts *CheckOptions) *lint.Config {
	lintCfg := cfg.LintConfig()

	for _, id := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}

	// If --rule specified, disable all others
	if len(opts.Rules) > 0 {
		enabled := make(map[string]bool)
		for _, id := range opts.Rules {
			enabled[strings.TrimSpace(id)] = true
		}
		for _, rule := range lint.GetAll() {
			if !enabled[rule.ID] {
				lintCfg.Disable(rule.ID)
			}
		}
	}

	return lintCfg
}

func renderCheckText(r *output.Renderer, results []fileResult, fileCount, errorCount int) {
	styles := r.Styles()
	text := r.EffectiveMode() == output.ModeText

	for _, res := range results {
		if len(res.Errors) == 0 && len(res.Messages) == 0 {
			continue
		}
		if text {
			r.Println(styles.Bold.Render(res.Path))
		} else {
			r.Println("## " + res.Path)
		}
		for _, e := range res.Errors {
			r.Error("  " + e)
		}
		for _, m := range res.Messages {
			r.Println("  " + m)
		}
		r.Println("")
	}

	summary := fmt.Sprintf("%d files checked, %d violations", fileCount, errorCount)
	if errorCount == 0 {
		r.Success(summary)
	} else {
		r.Error(summary)
	}
}

// checkJSONOutput is the JSON output structure for the check command.
type checkJSONOutput struct {
	Results []fileResult `json:"results"`
	Count   struct {
		Files  int `json:"files"`
		Errors int `json:"errors"`
	} `json:"count"`
}

func renderCheckJSON(r *output.Renderer, results []fileResult, errorCount int) error {
	out := checkJSONOutput{Results: results}
	out.Count.Files = len(results)
	out.Count.Errors = errorCount

	enc := json.NewEncoder(r.Writer())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
