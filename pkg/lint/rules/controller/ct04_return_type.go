package controller

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(ReturnType)
}

// ReturnType requires an explicit result-tuple return annotation.
var ReturnType = lint.RuleDef{
	ID:          "CT04",
	Name:        "controller.return_type",
	Category:    core.CategoryController,
	Description: "Controllers must annotate their return type with the result tuple.",
	Severity:    lint.SeverityError,
	Check:       checkReturnTypeCT04,

	Rationale:   "Inferred return types drift silently; the explicit tuple keeps error handling visible at every call site.",
	BadExample:  "export default async function listUsers(portal: TPortal, args: TArgs) {}",
	GoodExample: "export default async function listUsers(portal: TPortal, args: TArgs): Promise<TErrTuple<TUser[]>> {}",
}

func checkReturnTypeCT04(unit *source.Unit, target lint.Target, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	if lint.IsModelFile(target.Base) {
		return nil
	}
	if !unit.DefaultExport().IsFunction() {
		return nil
	}

	ret, ok := unit.DefaultExportReturnType()
	if !ok {
		return []lint.Diagnostic{{
			RuleID:   "CT04",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("controller '%s' must have an explicit return type containing %s", target.Base, lint.ErrTupleMarker),
		}}
	}
	if strings.Contains(ret, lint.ErrTupleMarker) {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "CT04",
		Severity: lint.SeverityError,
		Message:  fmt.Sprintf("controller '%s' return type '%s' must contain %s", target.Base, ret, lint.ErrTupleMarker),
	}}
}
