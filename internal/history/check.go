// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/bartekus/sven/internal/header"
	"github.com/bartekus/sven/internal/report"
)

// Outcome is the analysis of one commit.
type Outcome struct {
	Commit Commit
	Result *header.Result
}

// Checker lints commit headers concurrently.
type Checker struct {
	Analyzer header.Analyzer
	// Workers bounds the number of headers analyzed at once. Values below 1
	// mean 1.
	Workers int
	Filter  FilterOptions
	Logger  *slog.Logger
}

// Run analyzes every commit of src that passes the filter. Outcomes keep the
// order of the source.
func (c Checker) Run(ctx context.Context, src Source) ([]Outcome, error) {
	log := c.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	all, err := src.Commits(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	commits := Filter(all, c.Filter)
	log.Info("checking commits", "total", len(all), "selected", len(commits), "workers", max(c.Workers, 1))

	outcomes := make([]Outcome, len(commits))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.Workers, 1))

	for i, commit := range commits {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := c.Analyzer.AnalyzeMessage(commit.Message)
			if err != nil && !errors.Is(err, header.ErrNoAlignment) {
				return fmt.Errorf("analyzing %s: %w", commit.ShortSHA(), err)
			}
			if err != nil {
				log.Warn("header has no structure", "commit", commit.ShortSHA())
			}
			outcomes[i] = Outcome{Commit: commit, Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// Entries converts outcomes for rendering, labelled by short hash.
func Entries(outcomes []Outcome) []report.Entry {
	out := make([]report.Entry, 0, len(outcomes))
	for _, o := range outcomes {
		out = append(out, report.Entry{Source: o.Commit.ShortSHA(), Result: o.Result})
	}
	return out
}

// Failing returns the number of outcomes with at least one issue.
func Failing(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if !o.Result.Valid() {
			n++
		}
	}
	return n
}
