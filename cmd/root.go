package cmd

import (
	"os"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	cpuProfile bool

	profiler interface{ Stop() }
)

var rootCmd = &cobra.Command{
	Use:   "hamilton",
	Short: "Generate and solve Hamilton number-path puzzles",
	Long: `Hamilton puzzles (also known as Hidato, Hidoku, Numbrix, and Jadium)
ask you to fill a grid with a number sequence path: every cell gets a
distinct number, and consecutive numbers sit in adjacent cells.

This tool generates new puzzles and solves existing ones.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		if cpuProfile {
			profiler = profile.Start(profile.ProfilePath("."))
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&cpuProfile, "profile", false, "Write a CPU profile to the current directory")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
