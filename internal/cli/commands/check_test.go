package commands

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCleanProjectPasses(t *testing.T) {
	root := setupProject(t)
	writeProjectFile(t, root, "src/controllers/ctrl.listUsers.ts", validController)

	out, _, err := execute(t, NewCheckCommand(), "--format", "json")
	require.NoError(t, err)

	var result checkJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 1, result.Count.Files)
	assert.Equal(t, 0, result.Count.Errors)
}

func TestCheckReportsViolations(t *testing.T) {
	root := setupProject(t)
	writeProjectFile(t, root, "src/controllers/listUsers.ts", "export default 1\n")

	out, _, err := execute(t, NewCheckCommand(), "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "violations found")

	var result checkJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Results, 1)
	assert.Contains(t, result.Results[0].Errors[0], "CT01")
}

func TestCheckSingleFileArgument(t *testing.T) {
	root := setupProject(t)
	writeProjectFile(t, root, "src/controllers/ctrl.listUsers.ts", validController)
	writeProjectFile(t, root, "src/controllers/broken.ts", "export default 1\n")

	_, _, err := execute(t, NewCheckCommand(), "--format", "json",
		filepath.Join(root, "src/controllers/ctrl.listUsers.ts"))
	assert.NoError(t, err, "only the named file is checked")
}

func TestCheckRuleFilter(t *testing.T) {
	root := setupProject(t)
	// Violates both CT01 (name) and, as content, CT02.
	writeProjectFile(t, root, "src/controllers/listUsers.ts", "const x = 1\n")

	out, _, err := execute(t, NewCheckCommand(), "--format", "json", "--rule", "CT02")
	require.Error(t, err)

	var result checkJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Results, 1)
	for _, e := range result.Results[0].Errors {
		assert.Contains(t, e, "CT02")
	}
}

func TestCheckBeforePhaseSkipsContentRules(t *testing.T) {
	root := setupProject(t)
	// Correct name, content that would fail after-write checks.
	writeProjectFile(t, root, "src/controllers/ctrl.listUsers.ts", "const x = 1\n")

	_, _, err := execute(t, NewCheckCommand(), "--phase", "before-write", "--format", "json")
	assert.NoError(t, err)
}

func TestCheckRejectsInvalidPhase(t *testing.T) {
	setupProject(t)
	_, _, err := execute(t, NewCheckCommand(), "--phase", "sometime")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid phase")
}

func TestCheckIgnoresNodeModules(t *testing.T) {
	root := setupProject(t)
	writeProjectFile(t, root, "src/controllers/ctrl.listUsers.ts", validController)
	writeProjectFile(t, root, "node_modules/pkg/index.ts", "export default 1\n")

	files, err := collectFiles(root, nil)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Contains(t, files[0], "ctrl.listUsers.ts")
}

func TestCheckDisableFlag(t *testing.T) {
	root := setupProject(t)
	writeProjectFile(t, root, "src/controllers/listUsers.ts", "export default 1\n")

	_, _, err := execute(t, NewCheckCommand(), "--format", "json",
		"--disable", "CT01,CT02,CT03,CT04")
	assert.NoError(t, err)
}
