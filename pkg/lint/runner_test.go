package lint_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/scafflint/pkg/core"
	"github.com/leapstack-labs/scafflint/pkg/lint"
	_ "github.com/leapstack-labs/scafflint/pkg/lint/rules" // register rules
)

type stubScanner struct {
	names []string
	err   error
	calls int
}

func (s *stubScanner) DatabaseNames(string) ([]string, error) {
	s.calls++
	return s.names, s.err
}

type stubRecorder struct {
	records []lint.CheckRecord
	err     error
}

func (s *stubRecorder) Record(rec lint.CheckRecord) error {
	s.records = append(s.records, rec)
	return s.err
}

func TestRunnerAccumulatesAllFindings(t *testing.T) {
	// A controller that violates naming, signature and return-type rules at
	// once; every violation must surface in a single call.
	runner := lint.NewRunner(lint.NewConfig())
	result, err := runner.Check(lint.Request{
		ProjectRoot: "/proj",
		FilePath:    "/proj/src/controllers/listUsers.ts",
		Content:     []byte(`export default function listUsers(portal) { return [null, []] }`),
		Phase:       core.PhaseAfterWrite,
	})
	require.NoError(t, err)

	ids := make(map[string]bool)
	for _, d := range result.Diagnostics {
		ids[d.RuleID] = true
	}
	assert.True(t, ids["CT01"], "naming violation expected")
	assert.True(t, ids["CT03"], "signature violation expected")
	assert.True(t, ids["CT04"], "return type violation expected")
	assert.True(t, result.Blocked())
}

func TestRunnerBeforePhaseRunsPathRulesOnly(t *testing.T) {
	// Content would fail CT04, but before-phases never parse it.
	runner := lint.NewRunner(lint.NewConfig())
	result, err := runner.Check(lint.Request{
		ProjectRoot: "/proj",
		FilePath:    "/proj/src/controllers/ctrl.listUsers.ts",
		Content:     []byte(`export default function listUsers(portal, args) {}`),
		Phase:       core.PhaseBeforeWrite,
	})
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Messages)
}

func TestRunnerResultsAreStable(t *testing.T) {
	runner := lint.NewRunner(lint.NewConfig())
	req := lint.Request{
		ProjectRoot: "/proj",
		FilePath:    "/proj/src/controllers/listUsers.ts",
		Content:     []byte(`export default function listUsers(portal) {}`),
		Phase:       core.PhaseAfterWrite,
	}

	first, err := runner.Check(req)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := runner.Check(req)
		require.NoError(t, err)
		assert.Equal(t, first.Errors, again.Errors)
		assert.Equal(t, first.Messages, again.Messages)
	}
}

func TestRunnerDisabledRulesAreSkipped(t *testing.T) {
	cfg := lint.NewConfig().Disable("CT01")
	runner := lint.NewRunner(cfg)
	result, err := runner.Check(lint.Request{
		ProjectRoot: "/proj",
		FilePath:    "/proj/src/controllers/listUsers.ts",
		Phase:       core.PhaseBeforeWrite,
	})
	require.NoError(t, err)
	for _, d := range result.Diagnostics {
		assert.NotEqual(t, "CT01", d.RuleID)
	}
}

func TestRunnerSeverityOverrideDemotesToAdvisory(t *testing.T) {
	cfg := lint.NewConfig().SetSeverity("CT01", core.SeverityWarning)
	runner := lint.NewRunner(cfg)
	result, err := runner.Check(lint.Request{
		ProjectRoot: "/proj",
		FilePath:    "/proj/src/controllers/listUsers.ts",
		Phase:       core.PhaseBeforeWrite,
	})
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
	require.NotEmpty(t, result.Messages)
	assert.Contains(t, result.Messages[0], "CT01")
	assert.False(t, result.Blocked())
}

func TestRunnerRescansDatabasesPerCall(t *testing.T) {
	scanner := &stubScanner{names: []string{"ordersDb"}}
	runner := lint.NewRunner(lint.NewConfig()).WithScanner(scanner)

	req := lint.Request{
		ProjectRoot: "/proj",
		FilePath:    "/proj/src/functions/fx.save.ts",
		Content:     []byte(`export default function save(portal: TPortal, args: TArgs): TErrTuple<void> { return [null, undefined] }`),
		Phase:       core.PhaseAfterWrite,
	}
	_, err := runner.Check(req)
	require.NoError(t, err)
	_, err = runner.Check(req)
	require.NoError(t, err)
	assert.Equal(t, 2, scanner.calls)
}

func TestRunnerScannerFailureDegrades(t *testing.T) {
	scanner := &stubScanner{err: errors.New("permission denied")}
	runner := lint.NewRunner(lint.NewConfig()).WithScanner(scanner)

	result, err := runner.Check(lint.Request{
		ProjectRoot: "/proj",
		FilePath:    "/proj/src/functions/fx.save.ts",
		Content:     []byte(`export default function save(portal: TSavePortal, args: TArgs): TErrTuple<void> { return [null, undefined] }`),
		Phase:       core.PhaseAfterWrite,
	})
	require.NoError(t, err)
	for _, d := range result.Diagnostics {
		assert.NotEqual(t, "FN08", d.RuleID, "FN08 must skip when the scan fails")
	}
}

func TestRunnerRecorderFailureNeverAborts(t *testing.T) {
	recorder := &stubRecorder{err: errors.New("disk full")}
	runner := lint.NewRunner(lint.NewConfig()).WithRecorder(recorder)

	result, err := runner.Check(lint.Request{
		ProjectRoot: "/proj",
		FilePath:    "/proj/src/controllers/ctrl.listUsers.ts",
		Phase:       core.PhaseBeforeWrite,
	})
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
	require.Len(t, recorder.records, 1)
	assert.Equal(t, core.PhaseBeforeWrite, recorder.records[0].Phase)
	assert.Equal(t, core.CategoryController, recorder.records[0].Category)
}

func TestRunnerRejectsFilesOutsideRoot(t *testing.T) {
	runner := lint.NewRunner(lint.NewConfig())
	_, err := runner.Check(lint.Request{
		ProjectRoot: "/proj",
		FilePath:    "/elsewhere/file.ts",
		Phase:       core.PhaseBeforeWrite,
	})
	assert.Error(t, err)
}
