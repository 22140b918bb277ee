package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "perftimer",
	Short:   "Measure and summarize code timing with bounded-memory statistics",
	Version: version,
	Long: `Perftimer instruments running code and reports call counts and
execution-time statistics: mean, standard deviation, max, and streaming
quantile estimates computed in constant memory.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(benchCmd)
	RootCmd.AddCommand(overheadCmd)
}
