package general_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	_ "github.com/leapstack-labs/scafflint/pkg/lint/rules" // register rules
)

func runRule(t *testing.T, relPath, content, ruleID string, phase core.Phase) []lint.Diagnostic {
	t.Helper()
	runner := lint.NewRunner(lint.NewConfig())
	result, err := runner.Check(lint.Request{
		ProjectRoot: "/proj",
		FilePath:    "/proj/" + relPath,
		Content:     []byte(content),
		Phase:       phase,
	})
	require.NoError(t, err)

	var filtered []lint.Diagnostic
	for _, d := range result.Diagnostics {
		if d.RuleID == ruleID {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func TestGN01_RootHygiene(t *testing.T) {
	tests := []struct {
		name     string
		relPath  string
		wantDiag bool
	}{
		{name: "root ts file", relPath: "helper.ts", wantDiag: true},
		{name: "root js file", relPath: "index.js", wantDiag: true},
		{name: "nested ts file", relPath: "src/functions/fn.helper.ts", wantDiag: false},
		{name: "root config is fine", relPath: "package.json", wantDiag: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.relPath, "", "GN01", core.PhaseBeforeWrite)
			if tt.wantDiag {
				assert.NotEmpty(t, diags, "expected GN01 diagnostic")
			} else {
				assert.Empty(t, diags, "unexpected GN01 diagnostic")
			}
		})
	}
}

func TestGN02_NoShellScripts(t *testing.T) {
	tests := []struct {
		name     string
		relPath  string
		wantDiag bool
	}{
		{name: "root shell script", relPath: "deploy.sh", wantDiag: true},
		{name: "nested shell script", relPath: "scripts/deploy.sh", wantDiag: true},
		{name: "typescript file", relPath: "src/functions/fn.deploy.ts", wantDiag: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.relPath, "", "GN02", core.PhaseBeforeWrite)
			if tt.wantDiag {
				assert.NotEmpty(t, diags, "expected GN02 diagnostic")
			} else {
				assert.Empty(t, diags, "unexpected GN02 diagnostic")
			}
		})
	}
}

func TestGN03_DocsPlacement(t *testing.T) {
	tests := []struct {
		name     string
		relPath  string
		wantDiag bool
	}{
		{name: "docs folder", relPath: "docs/functions.md", wantDiag: false},
		{name: "nested docs folder", relPath: "docs/guides/setup.md", wantDiag: false},
		{name: "root readme", relPath: "README.md", wantDiag: false},
		{name: "stray markdown in src", relPath: "src/functions/NOTES.md", wantDiag: true},
		{name: "unlisted root markdown", relPath: "TODO.md", wantDiag: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.relPath, "", "GN03", core.PhaseBeforeWrite)
			if tt.wantDiag {
				assert.NotEmpty(t, diags, "expected GN03 diagnostic")
			} else {
				assert.Empty(t, diags, "unexpected GN03 diagnostic")
			}
		})
	}
}

func TestGN04_SingleDescribe(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantDiag bool
	}{
		{
			name: "one describe grouping all cases",
			content: `
describe('fx.sendEmail', () => {
  it('sends', () => {})
  it('fails', () => {})
})
`,
			wantDiag: false,
		},
		{
			name: "two top-level describes",
			content: `
describe('a', () => {})
describe('b', () => {})
`,
			wantDiag: true,
		},
		{
			name:     "no describe",
			content:  `it('sends', () => {})`,
			wantDiag: true,
		},
		{
			name: "describe in comment and string does not count",
			content: `
// describe('not real', () => {})
const s = "describe('also not real')"
describe('fx.sendEmail', () => {
  it('sends', () => {})
})
`,
			wantDiag: false,
		},
		{
			name: "nested describe does not count twice",
			content: `
describe('fx.sendEmail', () => {
  describe('when offline', () => {
    it('fails', () => {})
  })
})
`,
			wantDiag: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, "src/functions/fx.sendEmail.test.ts", tt.content, "GN04", core.PhaseAfterWrite)
			if tt.wantDiag {
				assert.NotEmpty(t, diags, "expected GN04 diagnostic")
			} else {
				assert.Empty(t, diags, "unexpected GN04 diagnostic")
			}
		})
	}
}

func TestGN04_SkipsProductionFiles(t *testing.T) {
	diags := runRule(t, "src/functions/fx.sendEmail.ts",
		`export default function sendEmail(portal: TPortal, args: TArgs): TErrTuple<void> { return [null, undefined] }`,
		"GN04", core.PhaseAfterWrite)
	assert.Empty(t, diags)
}

func TestGN05_APIImports(t *testing.T) {
	tests := []struct {
		name     string
		relPath  string
		content  string
		wantDiag bool
	}{
		{
			name:     "router may import routes",
			relPath:  "src/apis/router.ts",
			content:  `import users from './api.users'` + "\n" + `import orders from '../apis/api.orders'`,
			wantDiag: false,
		},
		{
			name:     "controller importing a route",
			relPath:  "src/controllers/ctrl.listUsers.ts",
			content:  `import users from '../apis/api.users'`,
			wantDiag: true,
		},
		{
			name:     "controller importing functions",
			relPath:  "src/controllers/ctrl.listUsers.ts",
			content:  `import sendEmail from '../functions/fx.sendEmail'`,
			wantDiag: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.relPath, tt.content, "GN05", core.PhaseAfterWrite)
			if tt.wantDiag {
				assert.NotEmpty(t, diags, "expected GN05 diagnostic")
			} else {
				assert.Empty(t, diags, "unexpected GN05 diagnostic")
			}
		})
	}
}
