// Package hook adapts the check engine to the agent runtime's tool
// lifecycle. It reads one event from stdin, runs the applicable rule set,
// and reports a decision: exit code 2 blocks the triggering tool call,
// exit code 0 lets it proceed.
package hook

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
)

// Exit codes of the hook protocol.
const (
	ExitAllow = 0
	ExitBlock = 2
)

// decision is the JSON verdict written to stdout when a check blocks.
type decision struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason"`
}

// Runner executes one hook invocation.
type Runner struct {
	checker     *lint.Runner
	projectRoot string
	logger      *slog.Logger

	stdout io.Writer
	stderr io.Writer
}

// NewRunner wires a hook runner over the check engine.
func NewRunner(checker *lint.Runner, projectRoot string, stdout, stderr io.Writer) *Runner {
	return &Runner{
		checker:     checker,
		projectRoot: projectRoot,
		logger:      slog.New(slog.DiscardHandler),
		stdout:      stdout,
		stderr:      stderr,
	}
}

// WithLogger sets the structured logger.
func (r *Runner) WithLogger(logger *slog.Logger) *Runner {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// Run processes one lifecycle event from input and returns the process
// exit code. Infrastructure failures never block the agent: when in doubt
// the hook allows the operation and logs why.
func (r *Runner) Run(input io.Reader) int {
	ev, err := ParseEvent(input)
	if err != nil {
		r.logger.Warn("hook event unreadable", "error", err)
		return ExitAllow
	}

	phase, ok := ev.Phase()
	if !ok || ev.ToolInput.FilePath == "" {
		return ExitAllow
	}

	content, ok := r.contentFor(ev, phase)
	if !ok {
		return ExitAllow
	}

	result, err := r.checker.Check(lint.Request{
		ProjectRoot: r.projectRoot,
		FilePath:    ev.ToolInput.FilePath,
		Content:     content,
		Phase:       phase,
	})
	if err != nil {
		// Files outside the project are not ours to police.
		r.logger.Debug("hook skipping file", "file", ev.ToolInput.FilePath, "error", err)
		return ExitAllow
	}

	for _, msg := range result.Messages {
		fmt.Fprintln(r.stdout, msg)
	}
	if !result.Blocked() {
		return ExitAllow
	}

	reason := ""
	for _, e := range result.Errors {
		fmt.Fprintln(r.stderr, e)
		if reason != "" {
			reason += "\n"
		}
		reason += e
	}
	verdict, err := json.Marshal(decision{Decision: "block", Reason: reason})
	if err == nil {
		fmt.Fprintln(r.stdout, string(verdict))
	}
	return ExitBlock
}

// contentFor resolves the bytes to check for an event. Before-phases are
// path-only and need none. After-write can trust the payload; after-edit
// must re-read the file because the payload only carries fragments.
func (r *Runner) contentFor(ev Event, phase core.Phase) ([]byte, bool) {
	if phase.Before() {
		return nil, true
	}
	if phase == core.PhaseAfterWrite && ev.ToolInput.Content != "" {
		return []byte(ev.ToolInput.Content), true
	}
	content, err := os.ReadFile(ev.ToolInput.FilePath)
	if err != nil {
		r.logger.Warn("hook cannot read checked file", "file", ev.ToolInput.FilePath, "error", err)
		return nil, false
	}
	return content, true
}
