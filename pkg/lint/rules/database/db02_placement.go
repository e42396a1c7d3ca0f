package database

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(Placement)
}

// Placement requires exactly one database directory level.
var Placement = lint.RuleDef{
	ID:          "DB02",
	Name:        "database.placement",
	Category:    core.CategoryDatabase,
	Description: "Database files live in exactly one <dbname> directory below src/databases.",
	Severity:    lint.SeverityError,
	PathOnly:    true,
	Check:       checkPlacementDB02,

	BadExample:  "src/databases/conn.orders.ts",
	GoodExample: "src/databases/orders/conn.orders.ts",
}

func checkPlacementDB02(_ *source.Unit, target lint.Target, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	// "src/databases/<dbname>/file" has exactly three separators.
	depth := strings.Count(target.RelPath, "/")
	if depth == 3 {
		return nil
	}
	msg := fmt.Sprintf("database file '%s' must live directly in a database directory, e.g. %s/<dbname>/%s", target.RelPath, lint.DatabaseDir, target.Base)
	if depth > 3 {
		msg = fmt.Sprintf("database file '%s' is nested too deeply; use %s/<dbname>/%s", target.RelPath, lint.DatabaseDir, target.Base)
	}
	return []lint.Diagnostic{{
		RuleID:   "DB02",
		Severity: lint.SeverityError,
		Message:  msg,
	}}
}
