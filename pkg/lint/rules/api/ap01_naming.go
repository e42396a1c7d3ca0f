package api

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

// Naming requires route handler files to carry the api. prefix.
var Naming = lint.RuleDef{
	ID:          "AP01",
	Name:        "api.naming",
	Category:    core.CategoryAPI,
	Description: "Route handler file names must start with 'api.'.",
	Severity:    lint.SeverityError,
	PathOnly:    true,
	Check:       checkNamingAP01,

	Rationale:   "The api. prefix makes route handlers discoverable by name alone and keeps the directory scannable.",
	BadExample:  "src/apis/users.ts",
	GoodExample: "src/apis/api.users.ts",
	Fix:         "Rename the file to api.<name>.ts.",
}

func checkNamingAP01(_ *source.Unit, target lint.Target, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	if lint.IsModelFile(target.Base) || target.RelPath == lint.RouterFile {
		return nil
	}
	if strings.HasPrefix(target.Base, "api.") {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "AP01",
		Severity: lint.SeverityError,
		Message:  fmt.Sprintf("route handler file '%s' must start with 'api.'", target.Base),
	}}
}
