package function_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	_ "github.com/leapstack-labs/scafflint/pkg/lint/rules" // register rules
)

// fakeScanner returns a fixed database handle set.
type fakeScanner struct {
	names []string
}

func (f fakeScanner) DatabaseNames(string) ([]string, error) {
	return f.names, nil
}

func runRule(t *testing.T, relPath, content, ruleID string, phase core.Phase, dbNames ...string) []lint.Diagnostic {
	t.Helper()
	runner := lint.NewRunner(lint.NewConfig()).WithScanner(fakeScanner{names: dbNames})
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

func TestFN01_Naming(t *testing.T) {
	tests := []struct {
		name     string
		relPath  string
		wantDiag bool
	}{
		{name: "pure prefix", relPath: "src/functions/fn.formatName.ts", wantDiag: false},
		{name: "effectful prefix", relPath: "src/functions/fx.sendEmail.ts", wantDiag: false},
		{name: "transactional prefix", relPath: "src/functions/tx.transfer.ts", wantDiag: false},
		{name: "model file is exempt", relPath: "src/functions/mail.model.ts", wantDiag: false},
		{name: "missing prefix", relPath: "src/functions/sendEmail.ts", wantDiag: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.relPath, "", "FN01", core.PhaseBeforeWrite)
			if tt.wantDiag {
				assert.NotEmpty(t, diags, "expected FN01 diagnostic")
			} else {
				assert.Empty(t, diags, "unexpected FN01 diagnostic")
			}
		})
	}
}

func TestFN02_PathDepth(t *testing.T) {
	tests := []struct {
		name     string
		relPath  string
		wantDiag bool
	}{
		{name: "directly under functions", relPath: "src/functions/fx.send.ts", wantDiag: false},
		{name: "one grouping directory", relPath: "src/functions/mail/fx.send.ts", wantDiag: false},
		{name: "two grouping directories", relPath: "src/functions/mail/outbound/fx.send.ts", wantDiag: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.relPath, "", "FN02", core.PhaseBeforeWrite)
			if tt.wantDiag {
				assert.NotEmpty(t, diags, "expected FN02 diagnostic")
			} else {
				assert.Empty(t, diags, "unexpected FN02 diagnostic")
			}
		})
	}
}

func TestFN03_DefaultExport(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantDiag bool
	}{
		{
			name:     "default function",
			content:  `export default function formatName(args: TArgs): TErrTuple<string> { return [null, ''] }`,
			wantDiag: false,
		},
		{
			name: "aliased default export spelling",
			content: `
const formatName = (args: TArgs): TErrTuple<string> => [null, '']
export { formatName as default }
`,
			wantDiag: false,
		},
		{name: "no default export", content: `export const formatName = 1`, wantDiag: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, "src/functions/fn.formatName.ts", tt.content, "FN03", core.PhaseAfterWrite)
			if tt.wantDiag {
				assert.NotEmpty(t, diags, "expected FN03 diagnostic")
			} else {
				assert.Empty(t, diags, "unexpected FN03 diagnostic")
			}
		})
	}
}

func TestFN04_PureSignature(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantDiag bool
	}{
		{
			name:     "single args parameter with tuple",
			content:  `export default function formatName(args: TFormatNameArgs): TErrTuple<string> { return [null, ''] }`,
			wantDiag: false,
		},
		{
			name:     "two parameters",
			content:  `export default function formatName(portal: TPortal, args: TArgs): TErrTuple<string> { return [null, ''] }`,
			wantDiag: true,
		},
		{
			name:     "wrong return type",
			content:  `export default function formatName(args: TArgs): string { return '' }`,
			wantDiag: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, "src/functions/fn.formatName.ts", tt.content, "FN04", core.PhaseAfterWrite)
			if tt.wantDiag {
				assert.NotEmpty(t, diags, "expected FN04 diagnostic")
			} else {
				assert.Empty(t, diags, "unexpected FN04 diagnostic")
			}
		})
	}
}

func TestFN05_EffectfulSignature(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantDiag bool
	}{
		{
			name:     "portal and args with promise tuple",
			content:  `export default async function sendEmail(portal: TSendEmailPortal, args: TSendEmailArgs): Promise<TErrTuple<void>> { return [null, undefined] }`,
			wantDiag: false,
		},
		{
			name:     "missing portal parameter",
			content:  `export default function sendEmail(args: TArgs): TErrTuple<void> { return [null, undefined] }`,
			wantDiag: true,
		},
		{
			name:     "missing return annotation",
			content:  `export default function sendEmail(portal: TPortal, args: TArgs) { return [null, undefined] }`,
			wantDiag: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, "src/functions/fx.sendEmail.ts", tt.content, "FN05", core.PhaseAfterWrite)
			if tt.wantDiag {
				assert.NotEmpty(t, diags, "expected FN05 diagnostic")
			} else {
				assert.Empty(t, diags, "unexpected FN05 diagnostic")
			}
		})
	}
}

// A test module that happens to look like an effectful function must not be
// held to the production signature contract.
func TestFN05_TestFilesAreExempt(t *testing.T) {
	content := `export default function fxTest(portal: TPortal, args: TArgs): TErrTuple<string> { return [null, ''] }`
	for _, ruleID := range []string{"FN03", "FN04", "FN05", "FN06"} {
		diags := runRule(t, "src/functions/fx.test.ts", content, ruleID, core.PhaseAfterWrite)
		assert.Empty(t, diags, "test file must not trigger %s", ruleID)
	}
}

func TestFN06_TransactionalSignature(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantDiag bool
	}{
		{
			name:     "portal and args with tx tuple",
			content:  `export default async function transfer(portal: TTransferPortal, args: TTransferArgs): Promise<TTxTuple<TReceipt>> { return [null, receipt] }`,
			wantDiag: false,
		},
		{
			name:     "err tuple instead of tx tuple",
			content:  `export default async function transfer(portal: TTransferPortal, args: TTransferArgs): Promise<TErrTuple<TReceipt>> { return [null, receipt] }`,
			wantDiag: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, "src/functions/tx.transfer.ts", tt.content, "FN06", core.PhaseAfterWrite)
			if tt.wantDiag {
				assert.NotEmpty(t, diags, "expected FN06 diagnostic")
			} else {
				assert.Empty(t, diags, "unexpected FN06 diagnostic")
			}
		})
	}
}

func TestFN07_ConnTypeOnly(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantDiag bool
	}{
		{
			name: "type-only statement",
			content: `
import type { ordersDb } from '../databases/orders/conn.orders'
export default function listOrders(args: TArgs): TErrTuple<TOrder[]> { return [null, []] }
`,
			wantDiag: false,
		},
		{
			name: "all bindings inline type-only",
			content: `
import { type ordersDb } from '../databases/orders/conn.orders'
export default function listOrders(args: TArgs): TErrTuple<TOrder[]> { return [null, []] }
`,
			wantDiag: false,
		},
		{
			name: "runtime import",
			content: `
import { ordersDb } from '../databases/orders/conn.orders'
export default function listOrders(args: TArgs): TErrTuple<TOrder[]> { return [null, []] }
`,
			wantDiag: true,
		},
		{
			name: "unrelated runtime import",
			content: `
import { z } from 'zod'
export default function listOrders(args: TArgs): TErrTuple<TOrder[]> { return [null, []] }
`,
			wantDiag: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, "src/functions/fn.listOrders.ts", tt.content, "FN07", core.PhaseAfterWrite)
			if tt.wantDiag {
				assert.NotEmpty(t, diags, "expected FN07 diagnostic")
			} else {
				assert.Empty(t, diags, "unexpected FN07 diagnostic")
			}
		})
	}
}

func TestFN08_DependencyTyping(t *testing.T) {
	const content = `
type TSavePortal = { db: typeof ordersDb }

export default async function save(portal: TSavePortal, args: TSaveArgs): Promise<TErrTuple<void>> {
  return [null, undefined]
}
`

	t.Run("known handle", func(t *testing.T) {
		diags := runRule(t, "src/functions/fx.save.ts", content, "FN08", core.PhaseAfterWrite, "ordersDb")
		assert.Empty(t, diags)
	})

	t.Run("unknown handle lists the valid set", func(t *testing.T) {
		diags := runRule(t, "src/functions/fx.save.ts", content, "FN08", core.PhaseAfterWrite, "usersDb")
		require.Len(t, diags, 1)
		assert.Contains(t, diags[0].Message, "ordersDb")
		assert.Contains(t, diags[0].Message, "usersDb")
	})

	t.Run("no discovered handles degrades silently", func(t *testing.T) {
		diags := runRule(t, "src/functions/fx.save.ts", content, "FN08", core.PhaseAfterWrite)
		assert.Empty(t, diags)
	})
}

func TestFN09_TestPairing(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantDiag bool
	}{
		{
			name: "mock factory imported",
			content: `
import { createMockOrdersDb } from '../databases/orders/conn.orders.mock'
const db: typeof ordersDb = createMockOrdersDb()
describe('fx.save', () => {})
`,
			wantDiag: false,
		},
		{
			name: "handle used without mock factory",
			content: `
import save from './fx.save'
const db = {} as typeof ordersDb
describe('fx.save', () => {})
`,
			wantDiag: true,
		},
		{
			name: "no handle reference",
			content: `
import save from './fx.save'
describe('fx.save', () => {})
`,
			wantDiag: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, "src/functions/fx.save.test.ts", tt.content, "FN09", core.PhaseAfterWrite, "ordersDb")
			if tt.wantDiag {
				assert.NotEmpty(t, diags, "expected FN09 diagnostic")
			} else {
				assert.Empty(t, diags, "unexpected FN09 diagnostic")
			}
		})
	}
}
