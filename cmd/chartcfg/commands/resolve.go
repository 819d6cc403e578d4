package commands

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/dshills/chartcfg/internal/defaults"
	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/loader"
	"github.com/dshills/chartcfg/internal/native"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type resolution struct {
	Path   string       `json:"path"`
	Value  native.Value `json:"value"`
	Origin string       `json:"origin"`
}

func newResolveCommand(g *globals) *cobra.Command {
	var (
		chart   string
		options string
		scale   string
		axis    string
		plugin  string
	)

	cmd := &cobra.Command{
		Use:   "resolve <path>",
		Short: "Print a resolved property and the tier that supplied it",
		Long: `Resolve a property path the way a chart of the given type would.

Chart options are read from --options when given; otherwise only the
default tiers are consulted. With --scale the path is resolved for an
axis of that type, with --plugin for the options of that plugin.`,
		Example: `  # Font size of line charts with the defaults of a bundle
  chartcfg resolve font.size --chart line -b bundle.yaml

  # Tick padding of the y axis of a chart
  chartcfg resolve ticks.padding --scale linear --axis y --options chart.json

  # Wheel speed of the zoom plugin
  chartcfg resolve zoom.wheel.speed --plugin zoom --chart bar`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, l, err := g.newContext(cmd.Context())
			if err != nil {
				return err
			}

			var local *native.Object
			if options != "" {
				local, err = l.Files().LoadWithIncludes(options, loader.DefaultMaxIncludeDepth)
				if err != nil {
					return err
				}
				if local == nil {
					return fmt.Errorf("options file %s not found", options)
				}
			}

			var chain *defaults.Chain
			switch {
			case plugin != "":
				chain = target.PluginChain(chart, plugin)
				local = local.GetObject(key.Name("plugins")).GetObject(key.Name(plugin))
			case scale != "":
				chain = target.ScaleChain(scale)
				if axis == "" {
					local = nil
				} else {
					local = local.GetObject(key.Name("scales")).GetObject(key.Name(axis))
				}
			default:
				chain = target.ChartChain(chart)
			}

			path := args[0]
			v, origin, ok := chain.LookupPath(local, path)
			if !ok {
				return fmt.Errorf("%s is not set in any tier", path)
			}
			g.logger.Debug().Str("path", path).Str("origin", origin).Msg("resolved")
			return writeResolution(cmd.OutOrStdout(), g.json, resolution{Path: path, Value: v, Origin: origin})
		},
	}

	cmd.Flags().StringVar(&chart, "chart", "", "chart type (line, bar, ...)")
	cmd.Flags().StringVar(&options, "options", "", "chart options document")
	cmd.Flags().StringVar(&scale, "scale", "", "resolve for an axis of this type")
	cmd.Flags().StringVar(&axis, "axis", "", "axis id in the options document (with --scale)")
	cmd.Flags().StringVar(&plugin, "plugin", "", "resolve for the options of this plugin")
	cmd.MarkFlagsMutuallyExclusive("scale", "plugin")

	return cmd
}

func writeResolution(w io.Writer, asJSON bool, r resolution) error {
	if asJSON {
		b, err := json.Marshal(r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
	_, err := fmt.Fprintf(w, "%s\t%s\n", formatValue(r.Value), r.Origin)
	return err
}

func formatValue(v native.Value) string {
	switch v.Kind() {
	case native.KindObject, native.KindArray:
		b, err := v.MarshalJSON()
		if err != nil {
			return v.String()
		}
		return string(b)
	}
	return v.String()
}
