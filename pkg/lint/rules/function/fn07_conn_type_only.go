package function

import (
	"fmt"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(ConnTypeOnly)
}

// ConnTypeOnly forbids runtime imports of database connection modules.
var ConnTypeOnly = lint.RuleDef{
	ID:          "FN07",
	Name:        "function.conn_type_only",
	Category:    core.CategoryFunction,
	Description: "Imports of conn.<db> modules must be type-only.",
	Severity:    lint.SeverityError,
	Check:       checkConnTypeOnlyFN07,

	Rationale:   "Functions receive database handles through the portal; a runtime conn import creates a hidden connection the caller cannot mock.",
	BadExample:  "import { ordersDb } from '../databases/orders/conn.orders'",
	GoodExample: "import type { ordersDb } from '../databases/orders/conn.orders'",
}

func checkConnTypeOnlyFN07(unit *source.Unit, target lint.Target, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, rec := range unit.DatabaseConnectionImports() {
		if rec.TypeOnly() {
			continue
		}
		diags = append(diags, lint.Diagnostic{
			RuleID:   "FN07",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("function module '%s' imports connection module '%s' at runtime; the import must be type-only", target.Base, rec.Module),
		})
	}
	return diags
}
