package database

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(Correspondence)
}

// Correspondence ties a database file's name to its directory.
var Correspondence = lint.RuleDef{
	ID:          "DB03",
	Name:        "database.correspondence",
	Category:    core.CategoryDatabase,
	Description: "The <dbname> in a database file name must match its directory.",
	Severity:    lint.SeverityError,
	PathOnly:    true,
	Check:       checkCorrespondenceDB03,

	Rationale:   "The scanner derives handle names from directories; a file named for a different database silently detaches from its handle.",
	BadExample:  "src/databases/orders/conn.items.ts",
	GoodExample: "src/databases/orders/conn.orders.ts",
}

func checkCorrespondenceDB03(_ *source.Unit, target lint.Target, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	segments := strings.Split(target.RelPath, "/")
	if len(segments) != 4 {
		// DB02 reports wrong placement.
		return nil
	}
	dir := segments[2]

	fileDB := databaseNameOf(target.Base)
	if fileDB == "" || fileDB == dir {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "DB03",
		Severity: lint.SeverityError,
		Message:  fmt.Sprintf("file '%s' names database '%s' but lives in directory '%s'", target.Base, fileDB, dir),
	}}
}

// databaseNameOf extracts the <dbname> between a known prefix and the
// extension, e.g. conn.orders.ts yields orders. Returns "" when the base
// does not follow the naming convention.
func databaseNameOf(base string) string {
	rest := ""
	for _, prefix := range dbFilePrefixes {
		if strings.HasPrefix(base, prefix) {
			rest = strings.TrimPrefix(base, prefix)
			break
		}
	}
	if rest == "" {
		return ""
	}
	// Drop everything from the first dot: extension and any .mock/.test parts.
	if i := strings.Index(rest, "."); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
