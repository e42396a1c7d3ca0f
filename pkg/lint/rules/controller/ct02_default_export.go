package controller

import (
	"fmt"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(DefaultExport)
}

// DefaultExport requires a single default-exported function per controller.
var DefaultExport = lint.RuleDef{
	ID:          "CT02",
	Name:        "controller.default_export",
	Category:    core.CategoryController,
	Description: "Controllers must have exactly one default export, and it must be a function.",
	Severity:    lint.SeverityError,
	Check:       checkDefaultExportCT02,

	Rationale:   "Route modules bind controllers by their default export; a missing or non-callable default fails only at request time.",
	BadExample:  "export const listUsers = async () => {}",
	GoodExample: "export default async function listUsers(portal: TPortal, args: TArgs): Promise<TErrTuple<TUser[]>> {}",
}

func checkDefaultExportCT02(unit *source.Unit, target lint.Target, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	if lint.IsModelFile(target.Base) {
		return nil
	}
	count := unit.DefaultExportCount()
	if count != 1 {
		return []lint.Diagnostic{{
			RuleID:   "CT02",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("controller '%s' must have exactly one default export, found %d", target.Base, count),
		}}
	}
	if !unit.DefaultExport().IsFunction() {
		return []lint.Diagnostic{{
			RuleID:   "CT02",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("controller '%s' default export must be a function", target.Base),
		}}
	}
	return nil
}
