package cmd

import (
	"github.com/spf13/cobra"

	"github.com/user/mitrenav/pkg/mapping"
)

var validateCmd = &cobra.Command{
	Use:   "validate [mapping.xlsx]",
	Short: "Check the coverage spreadsheet without writing a layer file",
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
			mapping.Warnf("%s", w)
		}

		// Dry-run the builder to surface duplicates too.
		_, duplicates := mapping.BuildLayer(records, cfg.Layer, cfg.Palette)
		for _, id := range duplicates {
			mapping.Warnf("duplicate technique %s (first occurrence wins)", id)
		}

		counts := map[mapping.Score]int{}
		for _, r := range records {
			counts[mapping.ScoreRecord(r)]++
		}

		mapping.Infof("%s: %d valid technique(s), %d skipped row(s), %d duplicate(s)", input, len(records), len(warnings), len(duplicates))
		mapping.Infof("  detection:   %d", counts[mapping.ScoreDetection])
		mapping.Infof("  data source: %d", counts[mapping.ScoreDataSource])
		mapping.Infof("  none:        %d", counts[mapping.ScoreNone])
		return nil
	},
}

func init() {
	validateCmd.Flags().String("sheet", "", "Worksheet name (overrides config)")
	validateCmd.Flags().String("config", "", "Path to a config file")
	rootCmd.AddCommand(validateCmd)
}
