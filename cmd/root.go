package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dosewise",
	Short: "Medication assessment trainer for emergency responders",
	Long: "DoseWise — terminal training game that drills prescription review,\n" +
		"drug class recognition, and time-critical medication handling on\n" +
		"synthesized patient cases.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Uint64("seed", 0, "RNG seed for reproducible cases (0 = time-based)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging to stderr")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}
