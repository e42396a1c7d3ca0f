package function

import (
	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(PureSignature)
}

// PureSignature validates fn. modules: one input, result tuple out.
var PureSignature = lint.RuleDef{
	ID:          "FN04",
	Name:        "function.pure_signature",
	Category:    core.CategoryFunction,
	Description: "Pure functions take exactly one args parameter and return the result tuple.",
	Severity:    lint.SeverityError,
	Check:       checkPureSignatureFN04,

	GoodExample: "export default function formatName(args: TFormatNameArgs): TErrTuple<string>",
}

func checkPureSignatureFN04(unit *source.Unit, target lint.Target, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	if target.Kind != core.FunctionPure {
		return nil
	}
	return checkKindSignature(unit, target, "FN04", 1, false, lint.ErrTupleMarker)
}
