package component

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(Extension)
}

// Extension requires components to be .tsx files.
var Extension = lint.RuleDef{
	ID:          "CM01",
	Name:        "component.extension",
	Category:    core.CategoryComponent,
	Description: "Component files use the .tsx extension; .ts is reserved for model and barrel files.",
	Severity:    lint.SeverityError,
	PathOnly:    true,
	Check:       checkExtensionCM01,

	BadExample:  "src/components/UserCard.ts",
	GoodExample: "src/components/UserCard.tsx",
}

func checkExtensionCM01(_ *source.Unit, target lint.Target, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	if strings.HasSuffix(target.Base, ".tsx") {
		return nil
	}
	if strings.HasSuffix(target.Base, ".ts") {
		// Model modules and barrel files legitimately carry .ts.
		if lint.IsModelFile(target.Base) || target.Base == "index.ts" {
			return nil
		}
	}
	return []lint.Diagnostic{{
		RuleID:   "CM01",
		Severity: lint.SeverityError,
		Message:  fmt.Sprintf("component file '%s' must use the .tsx extension", target.Base),
	}}
}
