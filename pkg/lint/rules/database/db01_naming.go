package database

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

// dbFilePrefixes are the allowed database module kinds.
var dbFilePrefixes = []string{"conn.", "schema.", "auth."}

// Naming requires database files to declare their kind in the file name.
var Naming = lint.RuleDef{
	ID:          "DB01",
	Name:        "database.naming",
	Category:    core.CategoryDatabase,
	Description: "Database file names must start with 'conn.', 'schema.' or 'auth.'.",
	Severity:    lint.SeverityError,
	PathOnly:    true,
	Check:       checkNamingDB01,

	BadExample:  "src/databases/orders/orders.ts",
	GoodExample: "src/databases/orders/conn.orders.ts",
}

func checkNamingDB01(_ *source.Unit, target lint.Target, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	for _, prefix := range dbFilePrefixes {
		if strings.HasPrefix(target.Base, prefix) {
			return nil
		}
	}
	return []lint.Diagnostic{{
		RuleID:   "DB01",
		Severity: lint.SeverityError,
		Message:  fmt.Sprintf("database file '%s' must start with 'conn.', 'schema.' or 'auth.'", target.Base),
	}}
}
