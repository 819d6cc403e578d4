package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/chartcfg/internal/registry"
)

type settingInfo struct {
	Path        string   `json:"path"`
	Type        string   `json:"type"`
	Default     any      `json:"default,omitempty"`
	Scope       string   `json:"scope"`
	Enum        []string `json:"enum,omitempty"`
	Deprecated  bool     `json:"deprecated,omitempty"`
	ReplacedBy  string   `json:"replacedBy,omitempty"`
	Description string   `json:"description"`
}

func newDescribeCommand(g *globals) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "describe [section]",
		Short: "List the registered properties and their built-in defaults",
		Example: `  chartcfg describe
  chartcfg describe plugins
  chartcfg describe --search color`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.NewWithDefaults()
			var settings []*registry.Setting
			switch {
			case search != "":
				settings = reg.Search(search)
			case len(args) == 1:
				settings = reg.Section(args[0])
				if len(settings) == 0 {
					return fmt.Errorf("unknown section %q (sections: %s)", args[0], strings.Join(reg.Sections(), ", "))
				}
			default:
				settings = reg.All()
			}

			out := cmd.OutOrStdout()
			if g.json {
				infos := make([]settingInfo, len(settings))
				for i, s := range settings {
					infos[i] = settingInfo{
						Path:        s.Path,
						Type:        s.Type.String(),
						Default:     s.Default,
						Scope:       s.Scope.String(),
						Enum:        s.Enum,
						Deprecated:  s.Deprecated,
						ReplacedBy:  s.ReplacedBy,
						Description: s.Description,
					}
				}
				b, err := json.MarshalIndent(infos, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(b))
				return err
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PATH\tTYPE\tDEFAULT\tSCOPE")
			for _, s := range settings {
				def := "-"
				if s.Default != nil {
					def = fmt.Sprint(s.Default)
				}
				path := s.Path
				if s.Deprecated {
					path += " (deprecated)"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", path, s.Type, def, s.Scope)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter by path, description or tag")

	return cmd
}
