package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/chartcfg/internal/defaults"
	"github.com/dshills/chartcfg/internal/loader"
)

func newValidateCommand(g *globals) *cobra.Command {
	var (
		layer  string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a defaults document or bundle against the property registry",
		Long: `Validate a defaults document as the given layer would load it.

Values of registered properties must have the registered type, range and
tokens, and the property must be allowed in the layer's tier. Unknown
properties are accepted unless --strict is set. Without a file the
bundle given by --bundle is validated.`,
		Example: `  # Validate global defaults
  chartcfg validate base.toml

  # Validate the zoom plugin defaults, rejecting unknown properties
  chartcfg validate zoom.yaml --layer plugin:zoom --strict

  # Validate every document of a bundle
  chartcfg validate -b bundle.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				if g.bundle == "" {
					return errors.New("nothing to validate: give a file or --bundle")
				}
				if _, _, err := g.newContext(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: ok\n", g.bundle)
				return nil
			}

			source, id, err := parseLayer(layer)
			if err != nil {
				return err
			}
			file := args[0]
			doc, err := g.newLoader().Files().LoadWithIncludes(file, loader.DefaultMaxIncludeDepth)
			if err != nil {
				return err
			}
			if doc == nil {
				return fmt.Errorf("defaults file %s not found", file)
			}

			target := defaults.NewContext()
			errs := target.ValidateLayer(source, id, doc)
			problems := 0
			for _, e := range errs {
				level := "error"
				if e.Deprecated {
					level = "warning"
				} else {
					problems++
				}
				fmt.Fprintf(out, "%s: %s: %s: %s\n", file, level, e.Path, e.Message)
			}
			for _, path := range target.Registry().Unknown(doc, registryPrefix(source, id)) {
				level := "unknown"
				if strict {
					level = "error"
					problems++
				}
				fmt.Fprintf(out, "%s: %s: %s\n", file, level, path)
			}

			if problems > 0 {
				return fmt.Errorf("%s: %d problem(s)", file, problems)
			}
			fmt.Fprintf(out, "%s: ok\n", file)
			return nil
		},
	}

	cmd.Flags().StringVar(&layer, "layer", defaults.GlobalLayer, "layer the document feeds (global, chart:<type>, scale:<type>, plugin:<id>)")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject unknown properties")

	return cmd
}

// registryPrefix returns the registry path under which the documents of a
// tier are stored.
func registryPrefix(source defaults.Source, id string) string {
	switch source {
	case defaults.SourceScale:
		return "scale"
	case defaults.SourcePlugin:
		return "plugins." + id
	}
	return ""
}
