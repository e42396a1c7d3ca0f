package lint

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

// DatabaseScanner discovers database constant names under the project's
// database folder. Implemented by dbscan.Scanner. The Runner re-scans on
// every check call; results are never cached across calls.
type DatabaseScanner interface {
	DatabaseNames(projectRoot string) ([]string, error)
}

// CheckRecord summarizes one completed check call for the audit log.
type CheckRecord struct {
	FilePath     string
	RelPath      string
	Phase        core.Phase
	Category     core.FileCategory
	RuleCount    int
	ErrorCount   int
	MessageCount int
	Duration     time.Duration
}

// Recorder appends check records to an audit log. Implemented by
// checklog.Log. Recording failures are logged and swallowed; they never
// affect the check result.
type Recorder interface {
	Record(rec CheckRecord) error
}

// Request is one check invocation: a single file at a single phase.
// Content may be nil for before-phases, where only path-eligible rules run.
type Request struct {
	ProjectRoot string
	FilePath    string
	Content     []byte
	Phase       core.Phase
}

// Result is the aggregate outcome of one check call.
type Result struct {
	Target      Target
	Diagnostics []Diagnostic

	// Errors holds the rendered error-severity findings. A non-empty slice
	// blocks the triggering operation.
	Errors []string

	// Messages holds the rendered advisory findings (warning, info, hint).
	Messages []string
}

// Blocked reports whether the triggering operation must be rejected.
func (r Result) Blocked() bool {
	return len(r.Errors) > 0
}

// Runner evaluates the applicable rule set against one file per call.
type Runner struct {
	config   *Config
	scanner  DatabaseScanner
	recorder Recorder
	logger   *slog.Logger
}

// NewRunner creates a runner with optional configuration.
func NewRunner(config *Config) *Runner {
	if config == nil {
		config = NewConfig()
	}
	return &Runner{
		config: config,
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithScanner sets the database name scanner.
func (r *Runner) WithScanner(scanner DatabaseScanner) *Runner {
	r.scanner = scanner
	return r
}

// WithRecorder sets the audit log recorder.
func (r *Runner) WithRecorder(recorder Recorder) *Runner {
	r.recorder = recorder
	return r
}

// WithLogger sets the structured logger.
func (r *Runner) WithLogger(logger *slog.Logger) *Runner {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// Check classifies the file and runs every applicable rule, accumulating
// all findings. It never stops at the first violation. The only errors it
// returns are calling-contract violations; rule findings arrive in the
// Result.
func (r *Runner) Check(req Request) (Result, error) {
	start := time.Now()

	if req.ProjectRoot == "" {
		return Result{}, fmt.Errorf("check: project root is required")
	}
	if req.FilePath == "" {
		return Result{}, fmt.Errorf("check: file path is required")
	}

	target := Classify(req.ProjectRoot, req.FilePath)
	if target.Category == core.CategoryUnclassified {
		return Result{}, fmt.Errorf("check: %s is outside the project root %s", req.FilePath, req.ProjectRoot)
	}

	result := Result{Target: target}
	env := &Env{ProjectRoot: req.ProjectRoot}

	pathOnly := req.Phase.Before()
	if !pathOnly {
		env.DatabaseNames = r.scanDatabases(req.ProjectRoot)
	}

	var unit *source.Unit
	if !pathOnly && req.Content != nil {
		unit = source.NewUnit(req.FilePath, req.Content)
		defer unit.Close()
	}

	rules := GetApplicable(target)
	ran := 0
	for _, rule := range rules {
		if r.config.IsDisabled(rule.ID) {
			continue
		}
		if pathOnly && !rule.PathOnly {
			continue
		}
		if !rule.PathOnly && unit == nil {
			continue
		}
		ran++

		opts := r.config.GetRuleOptions(rule.ID)
		diags := rule.Check(unit, target, env, opts)
		for i := range diags {
			diags[i].Severity = r.config.GetSeverity(rule.ID, diags[i].Severity)
		}
		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	for _, d := range result.Diagnostics {
		line := fmt.Sprintf("[%s] %s", d.RuleID, d.Message)
		if d.Severity == core.SeverityError {
			result.Errors = append(result.Errors, line)
		} else {
			result.Messages = append(result.Messages, line)
		}
	}

	r.record(CheckRecord{
		FilePath:     req.FilePath,
		RelPath:      target.RelPath,
		Phase:        req.Phase,
		Category:     target.Category,
		RuleCount:    ran,
		ErrorCount:   len(result.Errors),
		MessageCount: len(result.Messages),
		Duration:     time.Since(start),
	})

	return result, nil
}

// scanDatabases runs the scanner, degrading to an empty name set on any
// failure so dependent rules skip instead of blocking.
func (r *Runner) scanDatabases(projectRoot string) []string {
	if r.scanner == nil {
		return nil
	}
	names, err := r.scanner.DatabaseNames(projectRoot)
	if err != nil {
		r.logger.Warn("database scan failed", "root", projectRoot, "error", err)
	}
	return names
}

// record appends to the audit log; failures never abort the check.
func (r *Runner) record(rec CheckRecord) {
	if r.recorder == nil {
		return
	}
	if err := r.recorder.Record(rec); err != nil {
		r.logger.Warn("check log append failed", "file", rec.FilePath, "error", err)
	}
}
