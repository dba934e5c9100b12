// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bartekus/sven/cmd/sven/internal/clierr"
	"github.com/bartekus/sven/internal/header"
	"github.com/bartekus/sven/internal/projectroot"
	"github.com/bartekus/sven/internal/report"
	"github.com/bartekus/sven/internal/watch"
)

// NewWatchCommand returns the `sven watch` command.
func NewWatchCommand() *cobra.Command {
	var (
		out      output
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Re-check a commit message file whenever it is saved",
		Long: `Watch a commit message file (default .git/COMMIT_EDITMSG) and print a
fresh report every time it is saved. Stop with Ctrl-C.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd)
			if err != nil {
				return err
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				root, err := projectroot.Find(".")
				if err != nil {
					return clierr.Wrap(clierr.ExitUsage, "watch: finding repo root", err)
				}
				if path, err = projectroot.CommitMessageFile(root); err != nil {
					return clierr.Wrap(clierr.ExitUsage, "watch", err)
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			analyzer := rt.analyzer()
			w := watch.New(path, debounce, rt.log)
			err = w.Run(ctx, func(msg string) error {
				res, err := analyzer.AnalyzeMessage(msg)
				if err != nil && !errors.Is(err, header.ErrNoAlignment) {
					return err
				}
				return rt.render(cmd, out, []report.Entry{{Source: path, Result: res}}, false)
			})
			if err != nil {
				return clierr.Wrap(clierr.ExitInternal, "watch", err)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "quiet period before a changed file is checked")
	addOutputFlags(cmd, &out)

	return cmd
}
