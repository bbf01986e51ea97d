package commands_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extlint/extlint/cmd/extlint/commands"
	"github.com/extlint/extlint/internal/lint"
)

// writeProject creates a small JS project with one missing-extension import.
func writeProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "util.js"), []byte("export const x = 1;\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.js"),
		[]byte("import { x } from \"./util\";\nconsole.log(x);\n"), 0o644))

	return dir
}

func TestLintCommand_ReportsIssues(t *testing.T) {
	t.Parallel()

	dir := writeProject(t)
	out := filepath.Join(t.TempDir(), "report.json")

	cmd := commands.NewLintCommand()
	cmd.SetArgs([]string{dir, "--format", "json", "--output", out})

	err := cmd.Execute()
	require.ErrorIs(t, err, commands.ErrIssuesFound)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var result lint.Result
	require.NoError(t, json.Unmarshal(data, &result))

	assert.Equal(t, 2, result.FilesScanned)
	require.Len(t, result.Files, 1)
	require.Len(t, result.Files[0].Diagnostics, 1)
	assert.Equal(t, "requireExt", result.Files[0].Diagnostics[0].MessageID)
	assert.Equal(t, ".js", result.Files[0].Diagnostics[0].Ext)
}

func TestLintCommand_NeverStyleClean(t *testing.T) {
	t.Parallel()

	dir := writeProject(t)
	out := filepath.Join(t.TempDir(), "report.json")

	cmd := commands.NewLintCommand()
	cmd.SetArgs([]string{dir, "--style", "never", "--format", "json", "--output", out})

	require.NoError(t, cmd.Execute())
}

func TestLintCommand_FixRewritesFiles(t *testing.T) {
	t.Parallel()

	dir := writeProject(t)
	out := filepath.Join(t.TempDir(), "report.json")

	cmd := commands.NewLintCommand()
	cmd.SetArgs([]string{dir, "--fix", "--format", "json", "--output", out})

	require.NoError(t, cmd.Execute())

	fixed, err := os.ReadFile(filepath.Join(dir, "main.js"))
	require.NoError(t, err)
	assert.Contains(t, string(fixed), "\"./util.js\"")
}

func TestLintCommand_InvalidStyle(t *testing.T) {
	t.Parallel()

	cmd := commands.NewLintCommand()
	cmd.SetArgs([]string{t.TempDir(), "--style", "sometimes"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.NotErrorIs(t, err, commands.ErrIssuesFound)
}

func TestLintCommand_RequiresArgs(t *testing.T) {
	t.Parallel()

	cmd := commands.NewLintCommand()
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
}
