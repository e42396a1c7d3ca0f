package general

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(DocsPlacement)
}

// DocsPlacement confines markdown to the docs tree and known root files.
var DocsPlacement = lint.RuleDef{
	ID:          "GN03",
	Name:        "general.docs_placement",
	Category:    core.CategoryGeneral,
	Description: "Markdown files belong under docs/ or among the whitelisted root files.",
	Severity:    lint.SeverityError,
	PathOnly:    true,
	Scope:       lint.ScopeAll,
	Check:       checkDocsPlacementGN03,

	BadExample:  "src/functions/NOTES.md",
	GoodExample: "docs/functions.md",
}

// rootMarkdownWhitelist names the markdown files allowed at the project root.
var rootMarkdownWhitelist = map[string]bool{
	"README.md":       true,
	"CHANGELOG.md":    true,
	"CONTRIBUTING.md": true,
	"LICENSE.md":      true,
	"AGENTS.md":       true,
	"CLAUDE.md":       true,
}

func checkDocsPlacementGN03(_ *source.Unit, target lint.Target, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	if !strings.HasSuffix(target.Base, ".md") {
		return nil
	}
	if target.RelPath == target.Base && rootMarkdownWhitelist[target.Base] {
		return nil
	}
	if strings.HasPrefix(target.RelPath, lint.DocsDir+"/") {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "GN03",
		Severity: lint.SeverityError,
		Message:  fmt.Sprintf("markdown file '%s' belongs under %s/", target.RelPath, lint.DocsDir),
	}}
}
