// SPDX-License-Identifier: AGPL-3.0-or-later

package projectroot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := Find(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)

	got, err = Find(root)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFind_NotFound(t *testing.T) {
	// The temp dir may itself live inside a repository on some machines.
	if _, err := Find(os.TempDir()); err == nil {
		t.Skip("temp dir is inside a git repository")
	}
	_, err := Find(t.TempDir())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGitDir(t *testing.T) {
	t.Run("directory", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))

		got, err := GitDir(root)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, ".git"), got)

		msg, err := CommitMessageFile(root)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, ".git", "COMMIT_EDITMSG"), msg)
	})

	t.Run("worktree file", func(t *testing.T) {
		root := t.TempDir()
		createFile(t, filepath.Join(root, ".git"), "gitdir: ../main/.git/worktrees/wt\n")

		got, err := GitDir(root)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(filepath.Dir(root), "main", ".git", "worktrees", "wt"), got)
	})

	t.Run("malformed file", func(t *testing.T) {
		root := t.TempDir()
		createFile(t, filepath.Join(root, ".git"), "nonsense")

		_, err := GitDir(root)
		require.Error(t, err)
	})
}
