package controller

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(Signature)
}

// Signature requires the (portal, args) parameter shape.
var Signature = lint.RuleDef{
	ID:          "CT03",
	Name:        "controller.signature",
	Category:    core.CategoryController,
	Description: "Controllers take exactly two parameters: a portal and an args object.",
	Severity:    lint.SeverityError,
	Check:       checkSignatureCT03,

	Rationale:   "Controllers receive every capability through the portal and every input through args; extra parameters bypass the discipline.",
	GoodExample: "export default async function listUsers(portal: TListUsersPortal, args: TListUsersArgs)",
}

func checkSignatureCT03(unit *source.Unit, target lint.Target, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	if lint.IsModelFile(target.Base) {
		return nil
	}
	export := unit.DefaultExport()
	if !export.IsFunction() {
		// CT02 reports the missing function.
		return nil
	}

	params := unit.DefaultExportParameters()
	if len(params) != 2 {
		return []lint.Diagnostic{{
			RuleID:   "CT03",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("controller '%s' must take exactly 2 parameters (portal, args), found %d", target.Base, len(params)),
		}}
	}

	var diags []lint.Diagnostic
	if !strings.Contains(params[0].Type, "Portal") {
		diags = append(diags, lint.Diagnostic{
			RuleID:   "CT03",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("controller '%s' first parameter must be portal-typed, got '%s'", target.Base, params[0].Type),
		})
	}
	if !strings.Contains(params[1].Type, "Args") {
		diags = append(diags, lint.Diagnostic{
			RuleID:   "CT03",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("controller '%s' second parameter must be args-typed, got '%s'", target.Base, params[1].Type),
		})
	}
	return diags
}
