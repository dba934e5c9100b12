// SPDX-License-Identifier: AGPL-3.0-or-later

// Package projectroot locates the git repository a command runs in.
package projectroot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when no enclosing git repository exists.
var ErrNotFound = errors.New("not inside a git repository")

// Find walks up from start and returns the first directory containing .git.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("checking %s: %w", dir, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// GitDir returns the git directory of the repository at root. For a worktree
// .git is a file pointing at the real directory.
func GitDir(root string) (string, error) {
	path := filepath.Join(root, ".git")
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("checking %s: %w", path, err)
	}
	if info.IsDir() {
		return path, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	ref, ok := strings.CutPrefix(strings.TrimSpace(string(data)), "gitdir:")
	if !ok {
		return "", fmt.Errorf("%s: not a gitdir reference", path)
	}
	ref = strings.TrimSpace(ref)
	if !filepath.IsAbs(ref) {
		ref = filepath.Join(root, ref)
	}
	return filepath.Clean(ref), nil
}

// CommitMessageFile returns the path git uses for the message being edited.
func CommitMessageFile(root string) (string, error) {
	dir, err := GitDir(root)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "COMMIT_EDITMSG"), nil
}
