package general

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(RootHygiene)
}

// RootHygiene bans source files at the project root.
var RootHygiene = lint.RuleDef{
	ID:          "GN01",
	Name:        "general.root_hygiene",
	Category:    core.CategoryGeneral,
	Description: "No .ts, .tsx or .js files directly at the project root.",
	Severity:    lint.SeverityError,
	PathOnly:    true,
	Scope:       lint.ScopeAll,
	Check:       checkRootHygieneGN01,

	BadExample:  "helper.ts",
	GoodExample: "src/functions/fn.helper.ts",
}

var rootBannedExtensions = []string{".ts", ".tsx", ".js"}

func checkRootHygieneGN01(_ *source.Unit, target lint.Target, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	if strings.Contains(target.RelPath, "/") {
		return nil
	}
	for _, ext := range rootBannedExtensions {
		if strings.HasSuffix(target.Base, ext) {
			return []lint.Diagnostic{{
				RuleID:   "GN01",
				Severity: lint.SeverityError,
				Message:  fmt.Sprintf("source file '%s' must not live at the project root; move it under %s", target.Base, lint.SourceRoot),
			}}
		}
	}
	return nil
}
