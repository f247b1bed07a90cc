package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user/mitrenav/pkg/config"
	"github.com/user/mitrenav/pkg/mapping"
)

var generateCmd = &cobra.Command{
	Use:   "generate [mapping.xlsx]",
	Short: "Generate a Navigator layer file from the coverage spreadsheet",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mapping.DebugEnabled = DebugMode

		cfg, err := loadConfigForRun(cmd)
		if err != nil {
			return err
		}

		input := cfg.DefaultInput
		if len(args) > 0 {
			input = args[0]
		}

		sheet, _ := cmd.Flags().GetString("sheet")
		records, warnings, err := mapping.LoadRecords(input, cfg.LoadOptions(sheet))
		if err != nil {
			return err
		}
		for _, w := range warnings {
			mapping.Warnf("skipping %s", w)
		}
		mapping.Infof("Loaded %d technique(s) from %s (%d row(s) skipped)", len(records), input, len(warnings))

		layer, duplicates := mapping.BuildLayer(records, cfg.Layer, cfg.Palette)
		for _, id := range duplicates {
			mapping.Warnf("duplicate technique %s ignored (first occurrence wins)", id)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = mapping.LayerFilename(cfg.Layer.Name)
		}

		if err := mapping.WriteLayer(layer, out); err != nil {
			return err
		}

		mapping.Infof("Layer written to %s (%d technique(s))", out, len(layer.Techniques))
		return nil
	},
}

// loadConfigForRun resolves the --config flag: an explicit file must
// exist, otherwise the default location (or built-in defaults) is used.
func loadConfigForRun(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		cfg, err := config.LoadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}
	return config.LoadConfig()
}

func init() {
	generateCmd.Flags().StringP("out", "o", "", "Output path for the layer file (default: derived from the layer name)")
	generateCmd.Flags().String("sheet", "", "Worksheet name (overrides config)")
	generateCmd.Flags().String("config", "", "Path to a config file")
	rootCmd.AddCommand(generateCmd)
}
