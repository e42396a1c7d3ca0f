package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/scafflint/internal/cli/config"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	root := NewRootCmd()

	names := make(map[string]bool)
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"check", "hook", "scan", "rules", "watch", "serve", "version", "completion"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRootVersionFlag(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "scafflint")
}

func TestRootWiresConfigIntoCheck(t *testing.T) {
	t.Cleanup(config.ResetConfig)

	projectRoot := t.TempDir()
	file := filepath.Join(projectRoot, "src/controllers/ctrl.listUsers.ts")
	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0o755))
	require.NoError(t, os.WriteFile(file, []byte(
		"export default function listUsers(portal: TPortal, args: TArgs): Promise<TErrTuple<TUser[]>> { return [null, []] }\n"), 0o644))

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"check", "--project-dir", projectRoot, "--format", "json"})

	require.NoError(t, root.Execute(), errOut.String())
	assert.Contains(t, out.String(), "ctrl.listUsers.ts")
}
