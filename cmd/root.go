package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mitrenav",
	Short: "Generate MITRE ATT&CK Navigator layers from a coverage spreadsheet",
	Long: `mitrenav maps your organisation's data sources and detections to the
MITRE ATT&CK framework. It reads a coverage mapping spreadsheet and
generates layer files that can be loaded into the ATT&CK Navigator at
https://mitre-attack.github.io/attack-navigator/`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var DebugMode bool

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&DebugMode, "debug", false, "Enable debug logging")
}
