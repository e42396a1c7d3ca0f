package general

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(NoShellScripts)
}

// NoShellScripts bans shell scripts anywhere in the project.
var NoShellScripts = lint.RuleDef{
	ID:          "GN02",
	Name:        "general.no_shell_scripts",
	Category:    core.CategoryGeneral,
	Description: "Shell scripts are not allowed anywhere in the project.",
	Severity:    lint.SeverityError,
	PathOnly:    true,
	Scope:       lint.ScopeAll,
	Check:       checkNoShellScriptsGN02,

	Rationale:   "Automation belongs in the scaffold tooling, not ad-hoc scripts the agent cannot reason about.",
	BadExample:  "scripts/deploy.sh",
}

func checkNoShellScriptsGN02(_ *source.Unit, target lint.Target, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	if !strings.HasSuffix(target.Base, ".sh") {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "GN02",
		Severity: lint.SeverityError,
		Message:  fmt.Sprintf("shell script '%s' is not allowed", target.RelPath),
	}}
}
