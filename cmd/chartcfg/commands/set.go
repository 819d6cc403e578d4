package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/chartcfg/internal/key"
	"github.com/dshills/chartcfg/internal/native"
	"github.com/dshills/chartcfg/internal/registry"
)

func newSetCommand(g *globals) *cobra.Command {
	var (
		asString bool
		remove   bool
	)

	cmd := &cobra.Command{
		Use:   "set <file> <path> [value]",
		Short: "Edit a property of a JSON options document in place",
		Long: `Set or delete a property of a JSON chart options document.

The value is parsed as JSON when it is valid JSON and stored as a string
otherwise; --string forces a string. Values of registered properties are
validated before the file is written. Axis options under scales.<id> are
checked against the scale properties.`,
		Example: `  chartcfg set chart.json plugins.legend.display false
  chartcfg set chart.json scales.y.ticks.padding 6
  chartcfg set chart.json font.family --string 12
  chartcfg set chart.json elements.line.fill --delete`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, path := args[0], args[1]
			if len(key.Split(path)) == 0 {
				return fmt.Errorf("invalid path %q", path)
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			if len(strings.TrimSpace(string(data))) == 0 {
				data = []byte("{}")
			}
			if !gjson.ValidBytes(data) {
				return fmt.Errorf("%s: %w", file, native.ErrInvalidJSON)
			}
			old := gjson.GetBytes(data, path)

			var updated []byte
			switch {
			case remove:
				if len(args) == 3 {
					return fmt.Errorf("--delete takes no value")
				}
				updated, err = sjson.DeleteBytes(data, path)
			case len(args) < 3:
				return fmt.Errorf("missing value for %s", path)
			default:
				raw := args[2]
				v := native.String(raw)
				if !asString && gjson.Valid(raw) {
					if v, err = native.ParseValue(raw); err != nil {
						return err
					}
				}
				if err := registry.NewWithDefaults().Validate(registryPath(path), v); err != nil {
					return fmt.Errorf("%s: %w: %v", path, key.ErrIllegalArgument, err)
				}
				if s, ok := v.AsString(); ok {
					updated, err = sjson.SetBytes(data, path, s)
				} else {
					updated, err = sjson.SetRawBytes(data, path, []byte(raw))
				}
			}
			if err != nil {
				return err
			}

			info, err := os.Stat(file)
			if err != nil {
				return err
			}
			if err := os.WriteFile(file, updated, info.Mode().Perm()); err != nil {
				return err
			}
			g.logger.Info().Str("file", file).Str("path", path).Str("old", old.Raw).Bool("deleted", remove).Msg("options updated")
			return nil
		},
	}

	cmd.Flags().BoolVar(&asString, "string", false, "store the value as a string")
	cmd.Flags().BoolVar(&remove, "delete", false, "delete the property")

	return cmd
}

// registryPath maps an options path to the registered property path:
// scales.<id>.ticks.padding is registered as scale.ticks.padding.
func registryPath(path string) string {
	parts := strings.SplitN(path, ".", 3)
	if len(parts) == 3 && parts[0] == "scales" {
		return "scale." + parts[2]
	}
	return path
}
