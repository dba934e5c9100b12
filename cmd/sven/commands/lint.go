// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bartekus/sven/cmd/sven/internal/clierr"
	"github.com/bartekus/sven/internal/header"
	"github.com/bartekus/sven/internal/report"
)

// NewLintCommand returns the `sven lint` command.
func NewLintCommand() *cobra.Command {
	var (
		out  output
		file string
	)

	cmd := &cobra.Command{
		Use:   "lint [header]",
		Short: "Check a commit header",
		Long: `Check a commit header against the Conventional Commits grammar.

The header is taken from the argument, from --file (a full commit message such
as .git/COMMIT_EDITMSG), or from stdin. Only the first line is checked.`,
		Example: `  sven lint "feat(api): add endpoint"
  sven lint --file .git/COMMIT_EDITMSG
  git log -1 --format=%B | sven lint --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && file != "" {
				return clierr.New(clierr.ExitUsage, "lint: pass either a header or --file, not both")
			}

			rt, err := loadRuntime(cmd)
			if err != nil {
				return err
			}

			source, msg, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}

			res, err := rt.analyzer().AnalyzeMessage(msg)
			if err != nil && !errors.Is(err, header.ErrNoAlignment) {
				return clierr.Wrap(clierr.ExitInternal, "lint", err)
			}

			entries := []report.Entry{{Source: source, Result: res}}
			if err := rt.render(cmd, out, entries, false); err != nil {
				return err
			}
			return issuesError(entries)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the commit message from this file")
	addOutputFlags(cmd, &out)

	return cmd
}

// readInput returns a label for the input and the message text.
func readInput(cmd *cobra.Command, args []string, file string) (string, string, error) {
	switch {
	case len(args) == 1:
		return "arg", args[0], nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", "", clierr.Wrapf(clierr.ExitUsage, err, "lint: reading %s", file)
		}
		return file, string(data), nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", clierr.Wrap(clierr.ExitInternal, "lint: reading stdin", err)
		}
		return "stdin", string(data), nil
	}
}
