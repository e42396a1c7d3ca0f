package general

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(APIImports)
}

// APIImports reserves route module imports for the router.
var APIImports = lint.RuleDef{
	ID:          "GN05",
	Name:        "general.api_imports",
	Category:    core.CategoryGeneral,
	Description: "Only src/apis/router.ts may import from src/apis.",
	Severity:    lint.SeverityError,
	Check:       checkAPIImportsGN05,

	Rationale:   "Route modules are leaves of the dependency graph; anything else importing them inverts the layering.",
	BadExample:  "// in a controller\nimport users from '../apis/api.users'",
}

func checkAPIImportsGN05(unit *source.Unit, target lint.Target, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	if target.RelPath == lint.RouterFile {
		return nil
	}
	var diags []lint.Diagnostic
	for _, rec := range unit.Imports() {
		if !referencesAPIDir(rec.Module) {
			continue
		}
		diags = append(diags, lint.Diagnostic{
			RuleID:   "GN05",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("'%s' imports route module '%s'; only %s may import from %s", target.RelPath, rec.Module, lint.RouterFile, lint.APIDir),
		})
	}
	return diags
}

// referencesAPIDir reports whether a module specifier resolves into the
// route handler directory.
func referencesAPIDir(module string) bool {
	for _, segment := range strings.Split(module, "/") {
		if segment == "apis" {
			return true
		}
	}
	return false
}
