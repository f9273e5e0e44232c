package cmd

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/happiness-sim/happiness-sim/server"
	"github.com/happiness-sim/happiness-sim/sim"
)

var (
	serveFlags ServeOptions
	configPath string
)

// serveCmd runs the HTTP façade until interrupted
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulation page and JSON API",
	Run: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logrus.Fatalf("Failed to load .env: %v", err)
		}

		file, err := loadFileConfig(configPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		serveFlags.LogLevel = logLevel
		opts, err := resolveServeOptions(serveFlags, cmd.Flags().Changed, file, os.Getenv)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		setupLogging(opts.LogLevel)

		key := simulationKey(opts.Seed)
		logrus.Infof("Starting simulation server on %s (seed=%d, days=%d)", opts.Addr(), key, sim.MaxDays)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(sim.NewState(key))
		if err := srv.ListenAndServe(ctx, opts.Addr()); err != nil {
			logrus.Fatalf("Server failed: %v", err)
		}
		logrus.Info("Server stopped.")
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.Host, flagHost, defaultHost, "Interface to bind")
	serveCmd.Flags().IntVar(&serveFlags.Port, flagPort, defaultPort, "Port to listen on (overrides $PORT)")
	serveCmd.Flags().Int64Var(&serveFlags.Seed, flagSeed, 0, "Seed for the simulation (0 = wall clock)")
	serveCmd.Flags().StringVar(&configPath, flagConfigPath, "", "Optional YAML config file")
}
