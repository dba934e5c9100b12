// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/sven/cmd/sven/internal/clierr"
	"github.com/bartekus/sven/internal/report"
)

// run executes the root command with an isolated config file.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return runWithConfig(t, "", stdin, args...)
}

// runWithConfig is run with extra YAML appended to the config file.
func runWithConfig(t *testing.T, extra, stdin string, args ...string) (string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "sven.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("output:\n  color: never\n"+extra), 0o644))

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--config", cfg))

	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sven version")
}

func TestVersion_Precedence(t *testing.T) {
	t.Setenv("SVEN_VERSION", "")
	prev := Version
	Version = "1.4.0"
	t.Cleanup(func() { Version = prev })

	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "sven version 1.4.0\n", out)

	t.Setenv("SVEN_VERSION", "2.0.0-rc1")
	out, err = run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "sven version 2.0.0-rc1\n", out)
}

func TestHelp(t *testing.T) {
	for _, sub := range []string{"lint", "history", "watch", "config"} {
		t.Run(sub, func(t *testing.T) {
			out, err := run(t, "", sub, "--help")
			require.NoError(t, err)
			assert.Contains(t, out, "Usage:")
			assert.Contains(t, out, sub)
		})
	}
}

func TestLint(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		args     []string
		code     int
		contains []string
	}{
		{
			name:     "valid header",
			args:     []string{"lint", "feat(api): add endpoint"},
			code:     0,
			contains: []string{"✓ arg feat(api): add endpoint"},
		},
		{
			name:     "missing colon",
			args:     []string{"lint", "fix me"},
			code:     clierr.ExitIssues,
			contains: []string{"✗ arg fix me", `colon is missing, expected after "fix" (column 1)`},
		},
		{
			name:     "stdin",
			stdin:    ": fix me\n\nbody\n",
			args:     []string{"lint"},
			code:     clierr.ExitIssues,
			contains: []string{"stdin", "type is misplaced", "colon is misplaced"},
		},
		{
			name:     "strict policy from flags",
			args:     []string{"lint", "--policy", "strict", "--types", "feat,fix", "chore: tidy"},
			code:     clierr.ExitIssues,
			contains: []string{"type is missing"},
		},
		{
			name:     "like policy accepts near miss",
			args:     []string{"lint", "--policy", "like", "--types", "feat", "Feet: tidy"},
			code:     0,
			contains: []string{"✓"},
		},
		{
			name:     "markdown",
			args:     []string{"lint", "--format", "markdown", "fix me"},
			code:     clierr.ExitIssues,
			contains: []string{"# Commit header report", "| `arg` | `fix me` | 1 issue(s) |"},
		},
		{
			name: "header and file together",
			args: []string{"lint", "--file", "x", "fix: me"},
			code: clierr.ExitUsage,
		},
		{
			name: "strict policy without types",
			args: []string{"lint", "--policy", "strict", "fix: me"},
			code: clierr.ExitUsage,
		},
		{
			name: "unknown format",
			args: []string{"lint", "--format", "xml", "fix: me"},
			code: clierr.ExitUsage,
		},
		{
			name: "missing file",
			args: []string{"lint", "--file", "does-not-exist"},
			code: clierr.ExitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.stdin, tt.args...)
			assert.Equal(t, tt.code, clierr.ExitCodeOf(err), "error: %v", err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestLint_JSON(t *testing.T) {
	out, err := run(t, "type:desc", "lint", "--format", "json")
	require.Equal(t, clierr.ExitIssues, clierr.ExitCodeOf(err))

	var doc report.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Reports, 1)
	require.Len(t, doc.Reports[0].Findings, 1)
	assert.Equal(t, "space", string(doc.Reports[0].Findings[0].Subject))
}

func TestLint_FileAndOutput(t *testing.T) {
	dir := t.TempDir()
	msg := filepath.Join(dir, "COMMIT_EDITMSG")
	require.NoError(t, os.WriteFile(msg, []byte("docs: explain anchors\n\n# comment\n"), 0o644))
	dest := filepath.Join(dir, "out", "report.md")

	out, err := run(t, "", "lint", "--file", msg, "--format", "markdown", "--output", dest)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "`docs: explain anchors` | ok |")
}

func TestConfigShow(t *testing.T) {
	out, err := run(t, "", "config", "show", "--format", "json", "--policy", "like", "--types", "feat")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	types := got["types"].(map[string]any)
	assert.Equal(t, "like", types["policy"])
	assert.Equal(t, []any{"feat"}, types["known"])

	out, err = run(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "policy: any")
	assert.Contains(t, out, "color: never")

	out, err = run(t, "", "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "configuration OK")
}

func TestConfig_BadFile(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("types:\n  policy: nope\n"), 0o644))

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"lint", "--config", bad, "fix: me"})
	err := cmd.Execute()
	assert.Equal(t, clierr.ExitUsage, clierr.ExitCodeOf(err))
}

func TestLint_FlagsCompleteStrictPolicy(t *testing.T) {
	t.Run("policy from environment", func(t *testing.T) {
		t.Setenv("SVEN_TYPE_POLICY", "strict")

		out, err := run(t, "", "lint", "--types", "fix", "fix: me")
		require.NoError(t, err)
		assert.Contains(t, out, "✓ arg fix: me")

		out, err = run(t, "", "lint", "--types", "fix", "feat: me")
		assert.Equal(t, clierr.ExitIssues, clierr.ExitCodeOf(err), "error: %v", err)
		assert.Contains(t, out, "✗ arg feat: me")
	})

	t.Run("policy from file", func(t *testing.T) {
		out, err := runWithConfig(t, "types:\n  policy: strict\n", "", "lint", "--types", "fix,feat", "feat: me")
		require.NoError(t, err)
		assert.Contains(t, out, "✓ arg feat: me")
	})

	t.Run("still required without the flag", func(t *testing.T) {
		t.Setenv("SVEN_TYPE_POLICY", "strict")

		_, err := run(t, "", "lint", "fix: me")
		require.Error(t, err)
		assert.Equal(t, clierr.ExitUsage, clierr.ExitCodeOf(err))
		assert.Contains(t, err.Error(), "must not be empty")
	})
}

func TestHistory(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")
	runGit(t, dir, "config", "commit.gpgsign", "false")
	runGit(t, dir, "commit", "--allow-empty", "-m", "feat: first")
	runGit(t, dir, "commit", "--allow-empty", "-m", "second without type")
	runGit(t, dir, "commit", "--allow-empty", "-m", "fix: third")
	t.Chdir(dir)

	out, err := run(t, "", "history", "--format", "json")
	assert.Equal(t, clierr.ExitIssues, clierr.ExitCodeOf(err))

	var doc report.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Reports, 3)
	require.NotNil(t, doc.Summary)
	assert.Equal(t, 3, doc.Summary.Total)
	assert.Equal(t, 1, doc.Summary.Failing)

	out, err = run(t, "", "history", "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "fix: third")
	assert.Contains(t, out, "1 checked, 1 clean, 0 with issues")
}

func runGit(t *testing.T, dir string, args ...string) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\nOutput: %s", args, err, out)
	}
}
