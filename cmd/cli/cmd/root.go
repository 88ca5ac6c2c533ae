// Package cmd implements the hypersort command line interface.
package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hypersort/pkg/config"
	"github.com/hypersort/pkg/telemetry"
	"github.com/hypersort/pkg/utils"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger utils.Logger

	telemetryShutdown telemetry.ShutdownFunc
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hypersort",
	Short: "A distributed-memory parallel sorting tool",
	Long: `hypersort sorts integer datasets with a hypercube-style parallel
quicksort over a cohort of message-passing ranks, and reports the number
of prime values found in the sorted data.

It also ships the input generators used to produce test datasets and a
sequential baseline for timing comparison.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		logLevel := utils.ParseLogLevel(cfg.Log.Level)
		if verbose {
			logLevel = utils.LevelDebug
		}
		logger = utils.NewDefaultLogger(logLevel, os.Stdout)
		utils.SetGlobalLogger(logger)

		telemetryShutdown, err = telemetry.Init(cmd.Context(), &cfg.Telemetry)
		if err != nil {
			logger.Warn("Failed to initialize telemetry: %v", err)
			telemetryShutdown = nil
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if telemetryShutdown != nil {
			return telemetryShutdown(context.Background())
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")

	binName := BinName()
	rootCmd.Example = `  # Generate 32768 unique values and sort them on 8 ranks
  ` + binName + ` gen-dense 32768 numbers32768.txt
  ` + binName + ` sort numbers32768.txt -p 8

  # Compare against the sequential baseline
  ` + binName + ` baseline numbers32768.txt

  # Record the run for benchmark history and emit a JSON summary
  ` + binName + ` sort numbers32768.txt -p 8 --record --json summary.json`
}

// GetLogger returns the configured logger
func GetLogger() utils.Logger {
	return logger
}

// BinName returns the base name of the current executable
func BinName() string {
	return filepath.Base(os.Args[0])
}
