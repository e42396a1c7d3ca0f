package general

import (
	"bytes"
	"fmt"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	"github.com/leapstack-labs/scafflint/pkg/source"
)

func init() {
	lint.Register(SingleDescribe)
}

// SingleDescribe requires one top-level describe block per test file.
var SingleDescribe = lint.RuleDef{
	ID:          "GN04",
	Name:        "general.single_describe",
	Category:    core.CategoryGeneral,
	Description: "Test files group all cases under exactly one top-level describe block.",
	Severity:    lint.SeverityError,
	Scope:       lint.ScopeTest,
	Check:       checkSingleDescribeGN04,

	BadExample:  "describe('a', ...)\ndescribe('b', ...)",
	GoodExample: "describe('fx.sendEmail', () => { it(...); it(...) })",
}

func checkSingleDescribeGN04(unit *source.Unit, target lint.Target, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	count := countTopLevelDescribes(unit.Content)
	if count == 1 {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "GN04",
		Severity: lint.SeverityError,
		Message:  fmt.Sprintf("test file '%s' must group all cases under exactly one top-level describe block, found %d", target.Base, count),
	}}
}

// countTopLevelDescribes counts describe( call sites at brace depth zero in
// comment/string-stripped text. A heuristic, but describe blocks in
// generated tests are syntactically regular enough for it to hold.
func countTopLevelDescribes(src []byte) int {
	stripped := stripCommentsAndStrings(src)
	needle := []byte("describe")

	count := 0
	depth := 0
	for i := 0; i < len(stripped); i++ {
		switch stripped[i] {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case 'd':
			if depth != 0 || !bytes.HasPrefix(stripped[i:], needle) {
				continue
			}
			if i > 0 && isIdentByte(stripped[i-1]) {
				continue
			}
			j := i + len(needle)
			for j < len(stripped) && (stripped[j] == ' ' || stripped[j] == '\t') {
				j++
			}
			if j < len(stripped) && stripped[j] == '(' {
				count++
			}
			i = j - 1
		}
	}
	return count
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
