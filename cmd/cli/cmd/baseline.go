package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/hypersort/internal/baseline"
	"github.com/hypersort/internal/input"
	"github.com/hypersort/pkg/model"
	"github.com/hypersort/pkg/writer"
)

var baselineJSONPath string

// baselineCmd runs the sequential reference sort.
var baselineCmd = &cobra.Command{
	Use:   "baseline <input-file>",
	Short: "Run the sequential reference sort",
	Long: `Sort the input file sequentially and count primes over the sorted
data. Useful as the timing reference for speedup measurements against
the distributed sort.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile := args[0]

		values, err := input.ReadFile(inputFile)
		if err != nil {
			return err
		}
		logger.Info("Read %d elements from %s", len(values), inputFile)

		result, err := baseline.Run(cmd.Context(), values, nil)
		if err != nil {
			return err
		}

		logger.Info("--- Sequential Results ---")
		logger.Info("Elements:     %d", len(values))
		logger.Info("Primes found: %d", result.PrimeCount)
		logger.Info("Elapsed:      %v", result.Elapsed)

		if baselineJSONPath != "" {
			summary := &model.BaselineSummary{
				InputFile:   inputFile,
				N:           len(values),
				PrimeCount:  result.PrimeCount,
				ElapsedSecs: result.Elapsed.Seconds(),
				SortedAt:    time.Now(),
			}
			w := writer.NewPrettyJSONWriter[*model.BaselineSummary]()
			if err := w.WriteToFile(summary, baselineJSONPath); err != nil {
				return err
			}
			logger.Info("JSON summary written to %s", baselineJSONPath)
		}
		return nil
	},
}

func init() {
	baselineCmd.Flags().StringVar(&baselineJSONPath, "json", "", "Write a JSON summary to this file")
	rootCmd.AddCommand(baselineCmd)
}
