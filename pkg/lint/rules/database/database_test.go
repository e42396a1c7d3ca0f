package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	_ "github.com/leapstack-labs/scafflint/pkg/lint/rules" // register rules
)

func runRule(t *testing.T, relPath, ruleID string) []lint.Diagnostic {
	t.Helper()
	runner := lint.NewRunner(lint.NewConfig())
	result, err := runner.Check(lint.Request{
		ProjectRoot: "/proj",
		FilePath:    "/proj/" + relPath,
		Phase:       core.PhaseBeforeWrite,
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

func TestDB01_Naming(t *testing.T) {
	tests := []struct {
		name     string
		relPath  string
		wantDiag bool
	}{
		{name: "connection file", relPath: "src/databases/orders/conn.orders.ts", wantDiag: false},
		{name: "schema file", relPath: "src/databases/orders/schema.orders.ts", wantDiag: false},
		{name: "auth file", relPath: "src/databases/orders/auth.orders.ts", wantDiag: false},
		{name: "unprefixed file", relPath: "src/databases/orders/orders.ts", wantDiag: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.relPath, "DB01")
			if tt.wantDiag {
				assert.NotEmpty(t, diags, "expected DB01 diagnostic")
			} else {
				assert.Empty(t, diags, "unexpected DB01 diagnostic")
			}
		})
	}
}

func TestDB02_Placement(t *testing.T) {
	tests := []struct {
		name     string
		relPath  string
		wantDiag bool
	}{
		{name: "one database directory", relPath: "src/databases/orders/conn.orders.ts", wantDiag: false},
		{name: "directly under databases", relPath: "src/databases/conn.orders.ts", wantDiag: true},
		{name: "nested too deeply", relPath: "src/databases/orders/sub/conn.orders.ts", wantDiag: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.relPath, "DB02")
			if tt.wantDiag {
				assert.NotEmpty(t, diags, "expected DB02 diagnostic")
			} else {
				assert.Empty(t, diags, "unexpected DB02 diagnostic")
			}
		})
	}
}

func TestDB03_Correspondence(t *testing.T) {
	tests := []struct {
		name     string
		relPath  string
		wantDiag bool
	}{
		{name: "matching directory", relPath: "src/databases/orders/conn.orders.ts", wantDiag: false},
		{name: "mismatched directory", relPath: "src/databases/orders/conn.items.ts", wantDiag: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.relPath, "DB03")
			if tt.wantDiag {
				assert.NotEmpty(t, diags, "expected DB03 diagnostic")
			} else {
				assert.Empty(t, diags, "unexpected DB03 diagnostic")
			}
		})
	}
}

func TestDB03_MessageNamesBothSides(t *testing.T) {
	diags := runRule(t, "src/databases/orders/conn.items.ts", "DB03")
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "'items'")
	assert.Contains(t, diags[0].Message, "'orders'")
}
