package api

import (
	"fmt"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(ExportShape)
}

// routeFramework is the constructor every route module must instantiate.
const routeFramework = "Elysia"

// ExportShape requires the default export to be a framework instantiation.
var ExportShape = lint.RuleDef{
	ID:          "AP03",
	Name:        "api.export_shape",
	Category:    core.CategoryAPI,
	Description: "The default export must be a 'new Elysia({...})' instantiation.",
	Severity:    lint.SeverityError,
	Check:       checkExportShapeAP03,

	Rationale:   "Route modules are mounted as framework instances; exporting anything else fails at composition time instead of scaffold time.",
	BadExample:  "export default function users() {}",
	GoodExample: "export default new Elysia({ prefix: '/api/users' }).get('/', list)",
}

func checkExportShapeAP03(unit *source.Unit, target lint.Target, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	if lint.IsModelFile(target.Base) || target.RelPath == lint.RouterFile {
		return nil
	}
	if !unit.HasDefaultExport() {
		// AP02 reports the missing export.
		return nil
	}
	inst, ok := unit.DefaultExportInstantiation()
	if ok && inst.Constructor == routeFramework {
		return nil
	}
	msg := fmt.Sprintf("route handler '%s' must default-export a 'new %s({...})' instantiation", target.Base, routeFramework)
	if ok {
		msg = fmt.Sprintf("route handler '%s' default-exports 'new %s' but must instantiate '%s'", target.Base, inst.Constructor, routeFramework)
	}
	return []lint.Diagnostic{{
		RuleID:   "AP03",
		Severity: lint.SeverityError,
		Message:  msg,
	}}
}
