// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bartekus/sven/cmd/sven/internal/clierr"
)

// NewConfigCommand returns the `sven config` command.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}

	var format string
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the configuration after files, environment and flags are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd)
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case "yaml":
				data, err = yaml.Marshal(rt.cfg)
			case "json":
				data, err = json.MarshalIndent(rt.cfg, "", "  ")
				data = append(data, '\n')
			default:
				return clierr.Newf(clierr.ExitUsage, "config show: unknown format %q (want yaml or json)", format)
			}
			if err != nil {
				return clierr.Wrap(clierr.ExitInternal, "config show", err)
			}

			if rt.cfgPath != "" {
				rt.log.Info("configuration file", "path", rt.cfgPath)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	show.Flags().StringVar(&format, "format", "yaml", "output format (yaml|json)")

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration and report where it was loaded from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd)
			if err != nil {
				return err
			}
			source := rt.cfgPath
			if source == "" {
				source = "defaults"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "configuration OK (%s)\n", source)
			return nil
		},
	}

	cmd.AddCommand(show, validate)
	return cmd
}
