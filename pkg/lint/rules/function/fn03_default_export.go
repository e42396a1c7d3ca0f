package function

import (
	"fmt"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(DefaultExport)
}

// DefaultExport requires a single default-exported function per module.
var DefaultExport = lint.RuleDef{
	ID:          "FN03",
	Name:        "function.default_export",
	Category:    core.CategoryFunction,
	Description: "Function modules must have exactly one default export, and it must be a function.",
	Severity:    lint.SeverityError,
	Check:       checkDefaultExportFN03,
}

func checkDefaultExportFN03(unit *source.Unit, target lint.Target, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	if lint.IsModelFile(target.Base) {
		return nil
	}
	count := unit.DefaultExportCount()
	if count != 1 {
		return []lint.Diagnostic{{
			RuleID:   "FN03",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("function module '%s' must have exactly one default export, found %d", target.Base, count),
		}}
	}
	if !unit.DefaultExport().IsFunction() {
		return []lint.Diagnostic{{
			RuleID:   "FN03",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("function module '%s' default export must be a function", target.Base),
		}}
	}
	return nil
}
