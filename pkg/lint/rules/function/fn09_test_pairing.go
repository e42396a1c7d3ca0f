package function

import (
	"bytes"
	"fmt"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(TestPairing)
}

// TestPairing requires tests of database-dependent functions to import the
// matching mock factory.
var TestPairing = lint.RuleDef{
	ID:          "FN09",
	Name:        "function.test_pairing",
	Category:    core.CategoryFunction,
	Description: "Tests that exercise a database handle must import its createMock<Name>Db factory.",
	Severity:    lint.SeverityError,
	Scope:       lint.ScopeTest,
	Check:       checkTestPairingFN09,

	Rationale:   "Tests that reach for the real handle instead of the generated mock factory hit live connections in CI.",
	GoodExample: "import { createMockOrdersDb } from '../databases/orders/conn.orders.mock'",
}

func checkTestPairingFN09(unit *source.Unit, target lint.Target, env *lint.Env, _ map[string]any) []lint.Diagnostic {
	if env == nil || len(env.DatabaseNames) == 0 {
		return nil
	}

	bindings := make(map[string]bool)
	for _, rec := range unit.Imports() {
		for _, name := range rec.Bindings() {
			bindings[name] = true
		}
	}

	var diags []lint.Diagnostic
	for _, db := range env.DatabaseNames {
		// The test depends on the handle when it references its type.
		if !bytes.Contains(unit.Content, []byte("typeof "+db)) {
			continue
		}
		factory := lint.MockFactoryName(db)
		if factory == "" || bindings[factory] {
			continue
		}
		diags = append(diags, lint.Diagnostic{
			RuleID:   "FN09",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("test '%s' uses database handle '%s' but does not import '%s'", target.Base, db, factory),
		})
	}
	return diags
}
