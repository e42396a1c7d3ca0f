package function

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(DependencyTyping)
}

// DependencyTyping requires portal database handles to name real databases.
var DependencyTyping = lint.RuleDef{
	ID:          "FN08",
	Name:        "function.dependency_typing",
	Category:    core.CategoryFunction,
	Description: "Portal properties typed 'typeof <name>Db' must name a discovered database handle.",
	Severity:    lint.SeverityError,
	Check:       checkDependencyTypingFN08,

	Rationale:   "A portal that references a handle the database folder does not export can never be satisfied at wiring time.",
	BadExample:  "type TPortal = { db: typeof customerDb } // no customerDb exists",
	GoodExample: "type TPortal = { db: typeof ordersDb }",
}

// dbHandleRefRe matches a `typeof fooDb` property type.
var dbHandleRefRe = regexp.MustCompile(`^typeof\s+(\w+Db)$`)

func checkDependencyTypingFN08(unit *source.Unit, target lint.Target, env *lint.Env, _ map[string]any) []lint.Diagnostic {
	if target.Kind != core.FunctionEffectful && target.Kind != core.FunctionTransactional {
		return nil
	}
	if env == nil || len(env.DatabaseNames) == 0 {
		// Scanner found nothing or failed; degrade instead of guessing.
		return nil
	}
	params := unit.DefaultExportParameters()
	if len(params) == 0 {
		return nil
	}
	props, ok := unit.TypeLiteralProperties(params[0].Type)
	if !ok {
		return nil
	}

	var diags []lint.Diagnostic
	for _, prop := range props {
		m := dbHandleRefRe.FindStringSubmatch(strings.TrimSpace(prop.Type))
		if m == nil {
			continue
		}
		name := m[1]
		if env.HasDatabase(name) {
			continue
		}
		diags = append(diags, lint.Diagnostic{
			RuleID:   "FN08",
			Severity: lint.SeverityError,
			Message: fmt.Sprintf("portal property '%s' references unknown database handle '%s'; valid handles: %s",
				prop.Name, name, strings.Join(env.DatabaseNames, ", ")),
		})
	}
	return diags
}
