package api

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(Imports)
}

// Imports requires the framework import and at least one controller.
var Imports = lint.RuleDef{
	ID:          "AP05",
	Name:        "api.imports",
	Category:    core.CategoryAPI,
	Description: "Route handlers must import Elysia and at least one controller module.",
	Severity:    lint.SeverityError,
	Check:       checkImportsAP05,

	Rationale:   "A route module without a controller import is either dead or inlining business logic where it does not belong.",
	GoodExample: "import { Elysia } from 'elysia'\nimport listUsers from '../controllers/ctrl.listUsers'",
}

func checkImportsAP05(unit *source.Unit, target lint.Target, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	if lint.IsModelFile(target.Base) || target.RelPath == lint.RouterFile {
		return nil
	}

	hasFramework := false
	hasController := false
	for _, rec := range unit.Imports() {
		for _, name := range rec.Bindings() {
			if name == routeFramework {
				hasFramework = true
			}
		}
		if isControllerModule(rec.Module) {
			hasController = true
		}
	}

	var diags []lint.Diagnostic
	if !hasFramework {
		diags = append(diags, lint.Diagnostic{
			RuleID:   "AP05",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("route handler '%s' must import '%s' from the routing framework", target.Base, routeFramework),
		})
	}
	if !hasController {
		diags = append(diags, lint.Diagnostic{
			RuleID:   "AP05",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("route handler '%s' must import at least one controller module", target.Base),
		})
	}
	return diags
}

// isControllerModule matches module specifiers that resolve into the
// controllers directory or follow the ctrl. naming convention.
func isControllerModule(module string) bool {
	if strings.Contains(module, "controllers/") {
		return true
	}
	base := module
	if i := strings.LastIndex(module, "/"); i >= 0 {
		base = module[i+1:]
	}
	return strings.HasPrefix(base, "ctrl.")
}
