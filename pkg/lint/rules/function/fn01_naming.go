package function

import (
	"fmt"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(Naming)
}

// Naming requires function files to declare their kind in the file name.
var Naming = lint.RuleDef{
	ID:          "FN01",
	Name:        "function.naming",
	Category:    core.CategoryFunction,
	Description: "Function file names must start with 'fn.', 'fx.' or 'tx.'.",
	Severity:    lint.SeverityError,
	PathOnly:    true,
	Check:       checkNamingFN01,

	Rationale:   "The prefix states the effect contract before the file is even opened: fn. is pure, fx. touches the world, tx. runs in a transaction.",
	BadExample:  "src/functions/sendEmail.ts",
	GoodExample: "src/functions/fx.sendEmail.ts",
}

func checkNamingFN01(_ *source.Unit, target lint.Target, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	if lint.IsModelFile(target.Base) {
		return nil
	}
	if target.Kind != core.FunctionNone {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "FN01",
		Severity: lint.SeverityError,
		Message:  fmt.Sprintf("function file '%s' must start with 'fn.', 'fx.' or 'tx.'", target.Base),
	}}
}
