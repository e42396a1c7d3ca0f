package controller

import (
	"fmt"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(PortalPurity)
}

// PortalPurity forbids re-exposing imported functions through the portal.
var PortalPurity = lint.RuleDef{
	ID:          "CT05",
	Name:        "controller.portal_purity",
	Category:    core.CategoryController,
	Description: "Imported function modules must not appear as portal capabilities.",
	Severity:    lint.SeverityError,
	Check:       checkPortalPurityCT05,

	Rationale:   "A controller that stuffs imported functions into its own portal type hides the dependency from the caller that must inject it.",
	BadExample:  "import sendEmail from '../functions/fx.sendEmail'\ntype TPortal = { sendEmail: typeof sendEmail }",
}

func checkPortalPurityCT05(unit *source.Unit, target lint.Target, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	if lint.IsModelFile(target.Base) {
		return nil
	}
	params := unit.DefaultExportParameters()
	if len(params) == 0 {
		return nil
	}

	props, ok := unit.TypeLiteralPropertyNames(params[0].Type)
	if !ok {
		// Portal type is not a local object-shape alias; nothing to inspect.
		return nil
	}
	imported := unit.ImportedFunctionNames("functions/")
	if len(imported) == 0 {
		return nil
	}

	importedSet := make(map[string]bool, len(imported))
	for _, name := range imported {
		importedSet[name] = true
	}

	var diags []lint.Diagnostic
	for _, prop := range props {
		if importedSet[prop] {
			diags = append(diags, lint.Diagnostic{
				RuleID:   "CT05",
				Severity: lint.SeverityError,
				Message:  fmt.Sprintf("controller '%s' portal property '%s' duplicates an imported function; inject it through the portal instead", target.Base, prop),
			})
		}
	}
	return diags
}
