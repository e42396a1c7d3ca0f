package api

import (
	"fmt"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(DefaultExport)
}

// DefaultExport requires exactly one default export per route module.
var DefaultExport = lint.RuleDef{
	ID:          "AP02",
	Name:        "api.default_export",
	Category:    core.CategoryAPI,
	Description: "Route handler modules must have exactly one default export.",
	Severity:    lint.SeverityError,
	Check:       checkDefaultExportAP02,

	Rationale:   "The router mounts each route module through its default export; zero or multiple defaults break composition.",
	BadExample:  "export const app = new Elysia({ prefix: '/api/users' })",
	GoodExample: "export default new Elysia({ prefix: '/api/users' })",
}

func checkDefaultExportAP02(unit *source.Unit, target lint.Target, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	if lint.IsModelFile(target.Base) {
		return nil
	}
	count := unit.DefaultExportCount()
	if count == 1 {
		return nil
	}
	msg := fmt.Sprintf("route handler '%s' must have exactly one default export, found %d", target.Base, count)
	return []lint.Diagnostic{{
		RuleID:   "AP02",
		Severity: lint.SeverityError,
		Message:  msg,
	}}
}
