// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bartekus/sven/cmd/sven/internal/clierr"
	"github.com/bartekus/sven/internal/config"
	"github.com/bartekus/sven/internal/header"
	"github.com/bartekus/sven/internal/logging"
	"github.com/bartekus/sven/internal/projectroot"
	"github.com/bartekus/sven/internal/report"
)

// runtime is what every command needs before doing its work.
type runtime struct {
	log *slog.Logger
	cfg *config.Config
	// cfgPath is the file the config was read from, or "".
	cfgPath string
}

// loadRuntime builds the logger and resolves the configuration from the
// persistent flags. Flags override the file and the environment, and the
// merged result is validated once.
func loadRuntime(cmd *cobra.Command) (*runtime, error) {
	flags := cmd.Flags()

	verbose, _ := flags.GetBool("verbose")
	logFormat, _ := flags.GetString("log-format")
	format, err := logging.ParseFormat(logFormat)
	if err != nil {
		return nil, clierr.Wrap(clierr.ExitUsage, "invalid --log-format", err)
	}
	log := logging.New(cmd.ErrOrStderr(), logging.Options{Verbose: verbose, Format: format})

	path, _ := flags.GetString("config")
	if path == "" {
		path, err = discoverConfig()
		if err != nil {
			return nil, clierr.Wrap(clierr.ExitUsage, "locating config", err)
		}
	}

	cfg, err := config.Read(path)
	if err != nil {
		return nil, clierr.Wrap(clierr.ExitUsage, "loading config", err)
	}

	if flags.Changed("policy") {
		p, _ := flags.GetString("policy")
		cfg.Types.Policy = strings.ToLower(p)
	}
	if flags.Changed("types") {
		cfg.Types.Known, _ = flags.GetStringSlice("types")
	}
	if err := cfg.Validate(); err != nil {
		return nil, clierr.Wrap(clierr.ExitUsage, "invalid settings", err)
	}

	log.Debug("configuration loaded", "path", path, "policy", cfg.Types.Policy, "known", len(cfg.Types.Known))
	return &runtime{log: log, cfg: cfg, cfgPath: path}, nil
}

func discoverConfig() (string, error) {
	root, err := projectroot.Find(".")
	if errors.Is(err, projectroot.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return config.Discover(root)
}

func (rt *runtime) analyzer() header.Analyzer {
	return header.Analyzer{Policy: rt.cfg.Policy(), Logger: rt.log}
}

// output holds the rendering flags shared by lint, history and watch.
type output struct {
	format string
	color  string
	file   string
}

func addOutputFlags(cmd *cobra.Command, o *output) {
	cmd.Flags().StringVar(&o.format, "format", "", "output format (text|json|markdown), overrides the config")
	cmd.Flags().StringVar(&o.color, "color", "", "colorize text output (auto|always|never), overrides the config")
	cmd.Flags().StringVarP(&o.file, "output", "o", "", "write the report to this file instead of stdout")
}

// render writes entries in the configured format to stdout or to the
// --output file.
func (rt *runtime) render(cmd *cobra.Command, o output, entries []report.Entry, summary bool) error {
	name := rt.cfg.Output.Format
	if o.format != "" {
		name = o.format
	}
	format, err := report.ParseFormat(name)
	if err != nil {
		return clierr.Wrap(clierr.ExitUsage, "invalid --format", err)
	}

	mode := rt.cfg.Output.Color
	if o.color != "" {
		mode = o.color
	}

	if o.file != "" {
		var b strings.Builder
		if err := report.Write(&b, format, entries, report.Options{Summary: summary}); err != nil {
			return clierr.Wrap(clierr.ExitInternal, "rendering report", err)
		}
		if err := report.AtomicWrite(o.file, []byte(b.String())); err != nil {
			return clierr.Wrap(clierr.ExitInternal, "writing report", err)
		}
		rt.log.Info("report written", "path", o.file)
		return nil
	}

	w := cmd.OutOrStdout()
	opts := report.Options{Color: report.UseColor(mode, w), Summary: summary}
	if err := report.Write(w, format, entries, opts); err != nil {
		return clierr.Wrap(clierr.ExitInternal, "rendering report", err)
	}
	return nil
}

// issuesError turns failing results into the exit status.
func issuesError(entries []report.Entry) error {
	failing := 0
	for _, e := range entries {
		if !e.Result.Valid() {
			failing++
		}
	}
	if failing == 0 {
		return nil
	}
	if len(entries) == 1 {
		return clierr.Newf(clierr.ExitIssues, "%d issue(s) found", len(entries[0].Result.Issues))
	}
	return clierr.Newf(clierr.ExitIssues, "%d of %d headers have issues", failing, len(entries))
}
