package function

import (
	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(EffectfulSignature)
}

// EffectfulSignature validates fx. modules: portal plus args, result tuple out.
var EffectfulSignature = lint.RuleDef{
	ID:          "FN05",
	Name:        "function.effectful_signature",
	Category:    core.CategoryFunction,
	Description: "Effectful functions take a portal and an args parameter and return the result tuple.",
	Severity:    lint.SeverityError,
	Check:       checkEffectfulSignatureFN05,

	BadExample:  "export default function sendEmail(args: TSendEmailArgs): TErrTuple<void>",
	GoodExample: "export default function sendEmail(portal: TSendEmailPortal, args: TSendEmailArgs): Promise<TErrTuple<void>>",
}

func checkEffectfulSignatureFN05(unit *source.Unit, target lint.Target, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	if target.Kind != core.FunctionEffectful {
		return nil
	}
	return checkKindSignature(unit, target, "FN05", 2, true, lint.ErrTupleMarker)
}
