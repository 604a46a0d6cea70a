package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goweave/internal/cli"
	"github.com/yaklabco/goweave/pkg/reporter"
)

// strayClosingMarkdown has a closing tag with no opener on line 3.
const strayClosingMarkdown = "# Title\n\nstray </p> here\n"

const cleanMarkdown = "# Title\n\nJust prose.\n"

func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testBuildInfo())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if stdin != "" {
		cmd.SetIn(bytes.NewBufferString(stdin))
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIntegration_LintCleanFile(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "clean.md", cleanMarkdown)

	out, err := executeCommand(t, "", "--color", "never", "lint", path)
	require.NoError(t, err)
	assert.Contains(t, out, "No issues found")
}

func TestIntegration_LintFindsIssues(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "bad.md", strayClosingMarkdown)

	out, err := executeCommand(t, "", "--color", "never", "lint", path)
	require.ErrorIs(t, err, cli.ErrIssuesFound)
	assert.Contains(t, out, "redundant-closing-tag")
	assert.Contains(t, out, "3:7")
}

func TestIntegration_LintJSON(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "bad.md", strayClosingMarkdown)

	out, err := executeCommand(t, "", "lint", "--format", "json", path)
	require.ErrorIs(t, err, cli.ErrIssuesFound)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &output))
	require.Len(t, output.Files, 1)
	require.NotEmpty(t, output.Files[0].Findings)
	assert.Equal(t, "redundant-closing-tag", output.Files[0].Findings[0].Kind)
	assert.Equal(t, "error", output.Files[0].Findings[0].Severity)
}

func TestIntegration_LintSeverityOverride(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "bad.md", strayClosingMarkdown)

	// Downgraded to warning: default exit is clean, strict mode fails.
	_, err := executeCommand(t, "", "--color", "never", "lint",
		"--severity", "redundant-closing-tag=warning", path)
	require.NoError(t, err)

	_, err = executeCommand(t, "", "--color", "never", "lint",
		"--severity", "redundant-closing-tag=warning", "--strict", path)
	require.ErrorIs(t, err, cli.ErrIssuesFound)

	// Switched off entirely: nothing to report either way.
	out, err := executeCommand(t, "", "--color", "never", "lint",
		"--severity", "redundant-closing-tag=off", "--strict", path)
	require.NoError(t, err)
	assert.Contains(t, out, "No issues found")
}

func TestIntegration_CSSFromStdin(t *testing.T) {
	t.Parallel()

	out, err := executeCommand(t, "h1 { color red; }\n", "--color", "never", "css")
	require.ErrorIs(t, err, cli.ErrIssuesFound)
	assert.Contains(t, out, "missing-colon")
	assert.Contains(t, out, "<stdin>")
}

func TestIntegration_CSSCleanFile(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "ok.css", ".hero { color: red; }\n")

	_, err := executeCommand(t, "", "--color", "never", "css", path)
	require.NoError(t, err)
}

func TestIntegration_ClassesFromMarkdown(t *testing.T) {
	t.Parallel()

	doc := "---\ntitle: x\n---\n\n<style>\n.hero { color: red; }\n.card { margin: 0; }\n</style>\n"
	path := writeTestFile(t, "doc.md", doc)

	out, err := executeCommand(t, "", "classes", path)
	require.NoError(t, err)
	assert.Contains(t, out, "hero\n")
	assert.Contains(t, out, "card\n")
}

func TestIntegration_ClassesReserved(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "ok.css", ".hero { color: red; }\n")

	out, err := executeCommand(t, "", "classes", "--reserved", path)
	require.NoError(t, err)
	assert.Contains(t, out, "hero\n")
	assert.Contains(t, out, "page-break\n")
}

func TestIntegration_InitWritesConfig(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), ".goweave.yml")

	_, err := executeCommand(t, "", "init", "--output", target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "class_check")

	// Refuses to overwrite without --force.
	_, err = executeCommand(t, "", "init", "--output", target)
	require.Error(t, err)

	_, err = executeCommand(t, "", "init", "--output", target, "--force")
	require.NoError(t, err)
}
