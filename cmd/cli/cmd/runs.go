package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hypersort/internal/repository"
	"github.com/hypersort/pkg/model"
)

var (
	runsLimit int
	runsInput string
)

// runsCmd lists recorded sort runs.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded sort runs",
	Long: `List runs recorded with --record, newest first. Filtering by input
file shows the speedup history across process counts for one dataset.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := repository.NewRunRepository(&cfg.Database)
		if err != nil {
			return err
		}

		var runs []*model.RunRecord
		if runsInput != "" {
			runs, err = repo.ListRunsForInput(cmd.Context(), runsInput, runsLimit)
		} else {
			runs, err = repo.ListRuns(cmd.Context(), runsLimit)
		}
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			logger.Info("No recorded runs")
			return nil
		}

		logger.Info("%-5s %-30s %10s %6s %8s %12s", "ID", "INPUT", "N", "RANKS", "PRIMES", "ELAPSED")
		for _, run := range runs {
			logger.Info("%-5d %-30s %10d %6d %8d %11.6fs",
				run.ID, run.InputFile, run.N, run.Procs, run.PrimeCount, run.ElapsedSecs)
		}
		return nil
	},
}

func init() {
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "Maximum number of runs to list")
	runsCmd.Flags().StringVarP(&runsInput, "input", "i", "", "Only list runs for this input file")
	rootCmd.AddCommand(runsCmd)
}
