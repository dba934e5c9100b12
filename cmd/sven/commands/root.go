// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Sven - Sven is a Conventional Commits linter that explains exactly what is wrong with a commit header and where the fix belongs.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package commands contains the Cobra commands of the sven CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is the release reported by "sven version". The binary sets it from
// build flags. SVEN_VERSION overrides it.
var Version = "0.0.0-dev"

// NewRootCmd constructs the sven root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("SVEN_VERSION")
	if version == "" {
		version = Version
	}

	cmd := &cobra.Command{
		Use:   "sven",
		Short: "Sven - Conventional Commits header linter",
		Long: `Sven checks commit headers against the Conventional Commits grammar
(type(scope)!: description) and explains which part is missing or misplaced
and where the fix belongs.

Exit codes: 0 no issues, 1 issues found, 2 usage or configuration error,
3 internal failure.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().String("log-format", "text", "log format on stderr (text|json)")
	cmd.PersistentFlags().String("config", "", "path to a config file (default: .sven.{yaml,yml,toml,json} in the repository root)")
	cmd.PersistentFlags().String("policy", "", "type matching policy, overrides the config (any|strict|like)")
	cmd.PersistentFlags().StringSlice("types", nil, "known commit types, overrides the config")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of sven",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sven version %s\n", version)
		},
	})

	cmd.AddCommand(NewLintCommand())
	cmd.AddCommand(NewHistoryCommand())
	cmd.AddCommand(NewWatchCommand())
	cmd.AddCommand(NewConfigCommand())

	return cmd
}
