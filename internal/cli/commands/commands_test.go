package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// setupProject points the fallback config at a fresh project tree and
// returns its root.
func setupProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("SCAFFLINT_PROJECT_ROOT", root)
	t.Setenv("SCAFFLINT_LOG_PATH", filepath.Join(t.TempDir(), "checks.jsonl"))
	return root
}

func writeProjectFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// execute runs a command with captured output. Usage and error printing
// are silenced as the root command does in production.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

const validController = `export default function listUsers(portal: TPortal, args: TArgs): Promise<TErrTuple<TUser[]>> {
  return [null, []]
}
`
