package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/happiness-sim/happiness-sim/sim"
)

var logLevel string // Log verbosity level

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "happiness-sim",
	Short: "Happiness-economy community simulation",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(logLevel)
	},
}

// setupLogging applies the --log level; an invalid level is fatal.
func setupLogging(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", level)
	}
	logrus.SetLevel(lvl)
}

// simulationKey turns a configured seed into a key. Seed 0 means wall-clock.
func simulationKey(seed int64) sim.SimulationKey {
	if seed == 0 {
		key := sim.WallClockKey()
		logrus.Infof("No seed configured, using %d", key)
		return key
	}
	return sim.NewSimulationKey(seed)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, flagLogLevel, defaultLogLvl, "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runCmd)
}
