package function

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(PathDepth)
}

// PathDepth bounds nesting under src/functions to one grouping directory.
var PathDepth = lint.RuleDef{
	ID:          "FN02",
	Name:        "function.path_depth",
	Category:    core.CategoryFunction,
	Description: "Function modules may nest at most one directory below src/functions.",
	Severity:    lint.SeverityError,
	PathOnly:    true,
	Check:       checkPathDepthFN02,
	ConfigKeys:  []string{"max_depth"},

	BadExample:  "src/functions/mail/outbound/fx.send.ts",
	GoodExample: "src/functions/mail/fx.send.ts",
}

func checkPathDepthFN02(_ *source.Unit, target lint.Target, _ *lint.Env, opts map[string]any) []lint.Diagnostic {
	maxExtra := lint.GetIntOption(opts, "max_depth", 1)

	// "src/functions/file" has two separators; each grouping directory adds one.
	extra := strings.Count(target.RelPath, "/") - 2
	if extra <= maxExtra {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "FN02",
		Severity: lint.SeverityError,
		Message:  fmt.Sprintf("'%s' nests %d directories below %s, at most %d allowed", target.RelPath, extra, lint.FunctionDir, maxExtra),
	}}
}
