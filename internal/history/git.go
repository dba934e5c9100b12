// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

const (
	fieldSep = "\x1f"
	// logFormat prints hash, author name, author email and raw message.
	logFormat = "%H" + fieldSep + "%an" + fieldSep + "%ae" + fieldSep + "%B"
)

// GitSource reads commits with git log.
type GitSource struct {
	repoRoot string
	rev      string
	limit    int

	mu    sync.Mutex
	cache []Commit
}

// NewGitSource returns a Source for the newest limit commits reachable from
// rev in the repository at repoRoot. An empty rev means HEAD and a limit of
// zero or less means all commits.
func NewGitSource(repoRoot, rev string, limit int) *GitSource {
	if rev == "" {
		rev = "HEAD"
	}
	return &GitSource{repoRoot: repoRoot, rev: rev, limit: limit}
}

// Commits returns the commits, caching the result for the instance lifetime.
func (s *GitSource) Commits(ctx context.Context) ([]Commit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache != nil {
		return s.cache, nil
	}

	args := []string{"log", "-z", "--format=" + logFormat}
	if s.limit > 0 {
		args = append(args, "-n", strconv.Itoa(s.limit))
	}
	args = append(args, s.rev, "--")

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = s.repoRoot
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git log failed: %w", err)
	}

	commits, err := parseLog(string(out))
	if err != nil {
		return nil, err
	}
	s.cache = commits
	return s.cache, nil
}

// parseLog splits NUL separated git log records.
func parseLog(out string) ([]Commit, error) {
	out = strings.TrimSuffix(out, "\x00")
	if out == "" {
		return []Commit{}, nil
	}

	records := strings.Split(out, "\x00")
	commits := make([]Commit, 0, len(records))
	for _, rec := range records {
		fields := strings.SplitN(rec, fieldSep, 4)
		if len(fields) != 4 {
			return nil, fmt.Errorf("unexpected git log record %q", rec)
		}
		commits = append(commits, Commit{
			SHA:         strings.TrimSpace(fields[0]),
			AuthorName:  fields[1],
			AuthorEmail: fields[2],
			Message:     fields[3],
		})
	}
	return commits, nil
}
