// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"github.com/spf13/cobra"

	"github.com/bartekus/sven/cmd/sven/internal/clierr"
	"github.com/bartekus/sven/internal/history"
	"github.com/bartekus/sven/internal/projectroot"
)

// NewHistoryCommand returns the `sven history` command.
func NewHistoryCommand() *cobra.Command {
	var (
		out           output
		limit         int
		workers       int
		includeMerges bool
	)

	cmd := &cobra.Command{
		Use:   "history [revision]",
		Short: "Check the headers of existing commits",
		Long: `Check the headers of the newest commits reachable from a revision
(default HEAD) and summarize the issues found.

Merge, revert, fixup and squash commits written by git are skipped unless
--include-merges is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("limit") {
				rt.cfg.History.Limit = limit
			}
			if cmd.Flags().Changed("workers") {
				rt.cfg.History.Workers = workers
			}
			if err := rt.cfg.Validate(); err != nil {
				return clierr.Wrap(clierr.ExitUsage, "history", err)
			}

			repoRoot, err := projectroot.Find(".")
			if err != nil {
				return clierr.Wrap(clierr.ExitUsage, "history: finding repo root", err)
			}

			rev := ""
			if len(args) == 1 {
				rev = args[0]
			}

			checker := history.Checker{
				Analyzer: rt.analyzer(),
				Workers:  rt.cfg.History.Workers,
				Logger:   rt.log,
			}
			if !includeMerges {
				checker.Filter.IgnorePrefixes = history.DefaultIgnorePrefixes()
			}

			outcomes, err := checker.Run(cmd.Context(), history.NewGitSource(repoRoot, rev, rt.cfg.History.Limit))
			if err != nil {
				return clierr.Wrap(clierr.ExitInternal, "history", err)
			}

			entries := history.Entries(outcomes)
			if err := rt.render(cmd, out, entries, true); err != nil {
				return err
			}
			return issuesError(entries)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of commits to check, overrides the config")
	cmd.Flags().IntVar(&workers, "workers", 0, "number of headers checked concurrently, overrides the config")
	cmd.Flags().BoolVar(&includeMerges, "include-merges", false, "also check merge, revert, fixup and squash commits")
	addOutputFlags(cmd, &out)

	return cmd
}
