// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Sven - Sven is a Conventional Commits linter that explains exactly what is wrong with a commit header and where the fix belongs.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package history lints the headers of existing commits.
package history

import (
	"context"
	"strings"
)

// Commit is a single commit's metadata.
type Commit struct {
	SHA         string `json:"sha"`
	Message     string `json:"message"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
}

// ShortSHA returns the abbreviated commit hash.
func (c Commit) ShortSHA() string {
	if len(c.SHA) > 7 {
		return c.SHA[:7]
	}
	return c.SHA
}

// Source provides commit history for analysis, newest first.
type Source interface {
	Commits(ctx context.Context) ([]Commit, error)
}

// FilterOptions defines which commits are left out of a check.
type FilterOptions struct {
	// IgnorePrefixes skips commits whose message starts with any of them.
	IgnorePrefixes []string
}

// DefaultIgnorePrefixes returns the prefixes of messages git writes itself.
func DefaultIgnorePrefixes() []string {
	return []string{
		"Merge ",
		"Revert \"",
		"fixup! ",
		"squash! ",
		"amend! ",
	}
}

// Filter applies opts to commits, keeping their order.
func Filter(commits []Commit, opts FilterOptions) []Commit {
	if len(opts.IgnorePrefixes) == 0 {
		return commits
	}

	var kept []Commit
	for _, c := range commits {
		if hasAnyPrefix(c.Message, opts.IgnorePrefixes) {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
