package commands

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/scafflint/internal/cli/output"
	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	_ "github.com/leapstack-labs/scafflint/pkg/lint/rules" // register rules
)

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-check files as they change",
		Long: `Watch the project tree and re-check TypeScript files on change.

Useful alongside an editor when the agent hook is not wired in. Stops
on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			if err := cmdCtx.Cfg.ValidateProjectRoot(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return watchProject(ctx, cmdCtx)
		},
	}
}

func watchProject(ctx context.Context, cmdCtx *CommandContext) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	root := cmdCtx.Cfg.ProjectRoot
	if err := addWatchTree(watcher, root); err != nil {
		return err
	}

	r := cmdCtx.Renderer
	r.Info(fmt.Sprintf("watching %s", root))

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmdCtx.Logger.Warn("watch error", "error", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			handleWatchEvent(cmdCtx, watcher, event)
		}
	}
}

// addWatchTree registers the directory and all its subdirectories.
func addWatchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if name == "node_modules" || (strings.HasPrefix(name, ".") && path != root) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

func handleWatchEvent(cmdCtx *CommandContext, watcher *fsnotify.Watcher, event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return
	}

	// New directories need their own watch.
	if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
		if event.Op.Has(fsnotify.Create) {
			_ = addWatchTree(watcher, event.Name)
		}
		return
	}

	if !strings.HasSuffix(event.Name, ".ts") && !strings.HasSuffix(event.Name, ".tsx") {
		return
	}

	content, err := os.ReadFile(event.Name)
	if err != nil {
		cmdCtx.Logger.Warn("cannot read changed file", "file", event.Name, "error", err)
		return
	}

	result, err := cmdCtx.Runner.Check(lint.Request{
		ProjectRoot: cmdCtx.Cfg.ProjectRoot,
		FilePath:    event.Name,
		Content:     content,
		Phase:       core.PhaseAfterEdit,
	})
	if err != nil {
		cmdCtx.Logger.Debug("skipping changed file", "file", event.Name, "error", err)
		return
	}

	r := cmdCtx.Renderer
	if len(result.Errors) == 0 && len(result.Messages) == 0 {
		r.Success(fmt.Sprintf("%s ok", result.Target.RelPath))
		return
	}
	if r.EffectiveMode() == output.ModeText {
		r.Println(r.Styles().Bold.Render(result.Target.RelPath))
	} else {
		r.Println("## " + result.Target.RelPath)
	}
	for _, e := range result.Errors {
		r.Error("  " + e)
	}
	for _, m := range result.Messages {
		r.Println("  " + m)
	}
}
