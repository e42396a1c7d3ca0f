package controller

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(Naming)
}

// Naming requires controller files to carry the ctrl. prefix.
var Naming = lint.RuleDef{
	ID:          "CT01",
	Name:        "controller.naming",
	Category:    core.CategoryController,
	Description: "Controller file names must start with 'ctrl.'.",
	Severity:    lint.SeverityError,
	PathOnly:    true,
	Check:       checkNamingCT01,

	BadExample:  "src/controllers/listUsers.ts",
	GoodExample: "src/controllers/ctrl.listUsers.ts",
	Fix:         "Rename the file to ctrl.<name>.ts.",
}

func checkNamingCT01(_ *source.Unit, target lint.Target, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	if lint.IsModelFile(target.Base) {
		return nil
	}
	if strings.HasPrefix(target.Base, "ctrl.") {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "CT01",
		Severity: lint.SeverityError,
		Message:  fmt.Sprintf("controller file '%s' must start with 'ctrl.'", target.Base),
	}}
}
