package function

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

// checkKindSignature validates the shared shape of a function-module
// signature: the parameter count, an optional portal-typed first parameter,
// and the result-tuple marker in the return annotation. Used by the three
// kind-specific rules.
func checkKindSignature(unit *source.Unit, target lint.Target, ruleID string, wantParams int, wantPortal bool, tupleMarker string) []lint.Diagnostic {
	if lint.IsModelFile(target.Base) {
		return nil
	}
	export := unit.DefaultExport()
	if !export.IsFunction() {
		// FN03 reports the missing function.
		return nil
	}

	var diags []lint.Diagnostic

	params := unit.DefaultExportParameters()
	if len(params) != wantParams {
		diags = append(diags, lint.Diagnostic{
			RuleID:   ruleID,
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("%s module '%s' must take exactly %d parameter(s), found %d", target.Kind, target.Base, wantParams, len(params)),
		})
	} else if wantPortal && !strings.Contains(params[0].Type, "Portal") {
		diags = append(diags, lint.Diagnostic{
			RuleID:   ruleID,
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("%s module '%s' first parameter must be portal-typed, got '%s'", target.Kind, target.Base, params[0].Type),
		})
	}

	ret, ok := unit.DefaultExportReturnType()
	if !ok {
		diags = append(diags, lint.Diagnostic{
			RuleID:   ruleID,
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("%s module '%s' must have an explicit return type containing %s", target.Kind, target.Base, tupleMarker),
		})
	} else if !strings.Contains(ret, tupleMarker) {
		diags = append(diags, lint.Diagnostic{
			RuleID:   ruleID,
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("%s module '%s' return type '%s' must contain %s", target.Kind, target.Base, ret, tupleMarker),
		})
	}

	return diags
}
