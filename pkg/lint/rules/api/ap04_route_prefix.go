package api

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(RoutePrefix)
}

// RoutePrefix requires every route module to mount under /api/.
var RoutePrefix = lint.RuleDef{
	ID:          "AP04",
	Name:        "api.route_prefix",
	Category:    core.CategoryAPI,
	Description: "The instantiation's 'prefix' option must start with '/api/'.",
	Severity:    lint.SeverityError,
	Check:       checkRoutePrefixAP04,
	ConfigKeys:  []string{"prefix"},

	Rationale:   "A single mandatory mount point keeps generated routes from colliding with static assets and UI paths.",
	BadExample:  "new Elysia({ prefix: '/users' })",
	GoodExample: "new Elysia({ prefix: '/api/users' })",
	Fix:         "Prepend '/api' to the prefix option.",
}

func checkRoutePrefixAP04(unit *source.Unit, target lint.Target, _ *lint.Env, opts map[string]any) []lint.Diagnostic {
	if lint.IsModelFile(target.Base) || target.RelPath == lint.RouterFile {
		return nil
	}
	inst, ok := unit.DefaultExportInstantiation()
	if !ok || inst.Constructor != routeFramework {
		// AP03 reports the wrong shape.
		return nil
	}

	required := lint.GetStringOption(opts, "prefix", lint.APIRoutePrefix)

	prefix, found := unit.ObjectStringProperty(inst.Options, "prefix")
	if !found {
		return []lint.Diagnostic{{
			RuleID:   "AP04",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("route handler '%s' must declare a 'prefix' option starting with '%s'", target.Base, required),
		}}
	}
	if strings.HasPrefix(prefix, required) {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "AP04",
		Severity: lint.SeverityError,
		Message:  fmt.Sprintf("route prefix '%s' must start with '%s'", prefix, required),
	}}
}
