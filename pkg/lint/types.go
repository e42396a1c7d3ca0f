package lint

import (
	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

// =============================================================================
// Rule Definitions
// =============================================================================

// Scope restricts a rule to production files, test files, or both.
type Scope int

const (
	// ScopeProduction rules run only on non-test files. This is the zero
	// value so rule definitions can omit the field.
	ScopeProduction Scope = iota
	// ScopeTest rules run only on *.test.ts / *.test.tsx files.
	ScopeTest
	// ScopeAll rules run on every file of their category.
	ScopeAll
)

// String returns the string representation of the scope.
func (s Scope) String() string {
	switch s {
	case ScopeProduction:
		return "production"
	case ScopeTest:
		return "test"
	case ScopeAll:
		return "all"
	default:
		return "unknown"
	}
}

// Applies reports whether the scope covers a file with the given test flag.
func (s Scope) Applies(isTest bool) bool {
	switch s {
	case ScopeTest:
		return isTest
	case ScopeProduction:
		return !isTest
	default:
		return true
	}
}

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Check function parameters.
type RuleDef struct {
	ID          string            // Unique identifier, e.g., "AP04" or "GN01"
	Name        string            // Human-readable name, e.g., "api.route_prefix"
	Category    core.FileCategory // File category the rule applies to; CategoryGeneral means every file
	Description string            // Human-readable description
	Severity    core.Severity     // Default severity
	PathOnly    bool              // True when the rule needs only the file path, making it eligible for before-phases
	Scope       Scope             // Production, test, or both
	Check       CheckFunc         // The check function
	ConfigKeys  []string          // Configuration keys this rule accepts (for rule-specific options)

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc analyzes one file and returns diagnostics.
// unit is nil for path-only invocations (before-phases); rules with
// PathOnly set must not touch it. The opts parameter contains rule-specific
// options from configuration.
type CheckFunc func(unit *source.Unit, target Target, env *Env, opts map[string]any) []Diagnostic

// Info converts the definition to its metadata view for documentation and
// tooling output.
func (r RuleDef) Info() core.RuleInfo {
	return core.RuleInfo{
		ID:              r.ID,
		Name:            r.Name,
		Category:        r.Category.String(),
		Description:     r.Description,
		DefaultSeverity: r.Severity,
		PathOnly:        r.PathOnly,
		Scope:           r.Scope.String(),
		ConfigKeys:      r.ConfigKeys,
		Rationale:       r.Rationale,
		BadExample:      r.BadExample,
		GoodExample:     r.GoodExample,
		Fix:             r.Fix,
	}
}

// =============================================================================
// Check Targets
// =============================================================================

// Target is the classified identity of the checked file. Rules receive it
// instead of re-deriving category or naming facts from the raw path.
type Target struct {
	// RelPath is the file path relative to the project root, always
	// slash-separated regardless of host OS.
	RelPath string

	// Base is the file name without directories.
	Base string

	// Category is the file category derived from RelPath.
	Category core.FileCategory

	// Kind is the function kind for CategoryFunction files, FunctionNone
	// otherwise.
	Kind core.FunctionKind

	// IsTest is true for *.test.ts and *.test.tsx files.
	IsTest bool
}

// Env carries per-invocation project context that rules cannot derive from
// the file itself.
type Env struct {
	// ProjectRoot is the absolute project root path.
	ProjectRoot string

	// DatabaseNames holds the database names discovered by scanning the
	// database folder for this invocation. Empty when the scan failed or
	// found nothing; rules that depend on it degrade to skipping.
	DatabaseNames []string
}

// HasDatabase reports whether name is among the discovered database names.
func (e *Env) HasDatabase(name string) bool {
	if e == nil {
		return false
	}
	for _, n := range e.DatabaseNames {
		if n == name {
			return true
		}
	}
	return false
}

// =============================================================================
// Diagnostics
// =============================================================================

// Diagnostic represents a single rule finding.
type Diagnostic struct {
	RuleID   string
	Severity core.Severity
	Message  string
}
