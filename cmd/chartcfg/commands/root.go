// Package commands implements the chartcfg command line.
package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dshills/chartcfg/internal/defaults"
	"github.com/dshills/chartcfg/internal/loader"
	"github.com/dshills/chartcfg/internal/logging"
	"github.com/dshills/chartcfg/internal/metrics"
)

// globals holds the persistent flags shared by every command.
type globals struct {
	bundle    string
	logLevel  string
	logFormat string
	json      bool

	logger   zerolog.Logger
	observer *metrics.Observer
}

// Execute runs the root command.
func Execute(ctx context.Context, version, commit, buildDate string) error {
	return newRootCommand(version, commit, buildDate).ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	g := &globals{logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "chartcfg",
		Short: "Inspect and edit chart defaults",
		Long: `chartcfg works with the layered defaults of a charting engine.

Defaults are organized in tiers consulted in order: the options of a
chart, chart-type overrides, axis-type and plugin defaults, global
defaults and the built-in constants. A bundle manifest names the TOML,
YAML or JSON documents feeding each tier.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(logging.Config{
				Level:  g.logLevel,
				Format: g.logFormat,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			g.logger = l
			g.observer = metrics.NewObserver("")
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&g.bundle, "bundle", "b", "", "defaults bundle manifest")
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&g.logFormat, "log-format", logging.FormatConsole, "log format (console, json)")
	rootCmd.PersistentFlags().BoolVar(&g.json, "json", false, "output in JSON format")

	rootCmd.AddCommand(newResolveCommand(g))
	rootCmd.AddCommand(newValidateCommand(g))
	rootCmd.AddCommand(newSetCommand(g))
	rootCmd.AddCommand(newWatchCommand(g))
	rootCmd.AddCommand(newDescribeCommand(g))

	return rootCmd
}

// newContext returns a defaults context with the bundle flag applied.
func (g *globals) newContext(ctx context.Context) (*defaults.Context, *loader.Loader, error) {
	target := defaults.NewContext(
		defaults.WithLogger(logging.Component(g.logger, "defaults")),
		defaults.WithObserver(g.observer),
	)
	l := g.newLoader()
	if g.bundle == "" {
		return target, l, nil
	}
	b, err := l.LoadBundle(g.bundle)
	if err != nil {
		return nil, nil, err
	}
	if err := l.Apply(ctx, target, b); err != nil {
		return nil, nil, err
	}
	return target, l, nil
}

func (g *globals) newLoader() *loader.Loader {
	return loader.New(
		loader.WithLogger(logging.Component(g.logger, "loader")),
		loader.WithObserver(g.observer),
	)
}

// parseLayer reads a layer name such as "global", "chart:line",
// "scale:linear" or "plugin:zoom".
func parseLayer(name string) (defaults.Source, string, error) {
	if name == defaults.GlobalLayer {
		return defaults.SourceGlobal, "", nil
	}
	kind, id, ok := strings.Cut(name, ":")
	if !ok || id == "" {
		return 0, "", fmt.Errorf("invalid layer %q: want global, chart:<type>, scale:<type> or plugin:<id>", name)
	}
	switch kind {
	case "chart":
		return defaults.SourceChart, id, nil
	case "scale":
		return defaults.SourceScale, id, nil
	case "plugin":
		return defaults.SourcePlugin, id, nil
	}
	return 0, "", fmt.Errorf("invalid layer %q: unknown tier %q", name, kind)
}
