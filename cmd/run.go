package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/happiness-sim/happiness-sim/sim"
)

var runSeed int64 // Seed for a headless run

// runCmd simulates a full run without the HTTP layer and prints a summary
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation to the last day and print a summary",
	Run: func(cmd *cobra.Command, args []string) {
		startTime := time.Now()
		s := sim.NewState(simulationKey(runSeed))
		days := runToEnd(s)
		s.Summarize().Print(os.Stdout)
		logrus.Infof("Simulation complete: %d days advanced in %v", days, time.Since(startTime))
	},
}

// runToEnd advances s until the final day and returns how many days were advanced.
func runToEnd(s *sim.State) int {
	days := 0
	for s.AdvanceDay() {
		days++
	}
	return days
}

func init() {
	runCmd.Flags().Int64Var(&runSeed, flagSeed, 42, "Seed for the simulation (0 = wall clock)")
}
