package function

import (
	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(TransactionalSignature)
}

// TransactionalSignature validates tx. modules: portal plus args, transaction
// tuple out.
var TransactionalSignature = lint.RuleDef{
	ID:          "FN06",
	Name:        "function.transactional_signature",
	Category:    core.CategoryFunction,
	Description: "Transactional functions take a portal and an args parameter and return the transaction tuple.",
	Severity:    lint.SeverityError,
	Check:       checkTransactionalSignatureFN06,

	GoodExample: "export default function transferFunds(portal: TTransferPortal, args: TTransferArgs): Promise<TTxTuple<TReceipt>>",
}

func checkTransactionalSignatureFN06(unit *source.Unit, target lint.Target, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	if target.Kind != core.FunctionTransactional {
		return nil
	}
	return checkKindSignature(unit, target, "FN06", 2, true, lint.TxTupleMarker)
}
