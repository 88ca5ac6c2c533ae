package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/hypersort/internal/hsqs"
	"github.com/hypersort/internal/input"
	"github.com/hypersort/internal/repository"
	"github.com/hypersort/internal/storage"
	"github.com/hypersort/pkg/model"
	"github.com/hypersort/pkg/writer"
)

var (
	sortProcs      int
	sortJSONPath   string
	sortOutputPath string
	sortShow       bool
	sortRecord     bool
	sortArchive    bool
)

// sortCmd represents the sort command
var sortCmd = &cobra.Command{
	Use:   "sort <input-file>",
	Short: "Sort an input file across parallel ranks",
	Long: `Sort the integers in the input file with the distributed hypercube
quicksort and report the number of primes in the sorted data.

The number of ranks must be a power of two and must divide the element
count evenly. The elapsed time covers the distributed work, measured
between two group-wide barriers.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile := args[0]

		procs := sortProcs
		if procs == 0 {
			procs = cfg.Sort.Procs
		}

		values, err := input.ReadFile(inputFile)
		if err != nil {
			return err
		}
		if err := input.ValidateForProcs(len(values), procs); err != nil {
			return err
		}

		logger.Info("Read %d elements from %s", len(values), inputFile)
		logger.Info("Sorting on %d ranks...", procs)

		result, err := hsqs.Run(cmd.Context(), values, hsqs.Options{
			Procs:  procs,
			Logger: logger,
		})
		if err != nil {
			return err
		}

		summary := &model.SortSummary{
			InputFile:   inputFile,
			N:           len(values),
			Procs:       procs,
			PrimeCount:  result.PrimeCount,
			Elapsed:     result.Elapsed,
			ElapsedSecs: result.Elapsed.Seconds(),
			SortedAt:    time.Now(),
		}
		for _, name := range []string{"scatter", "sort", "reduce", "gather"} {
			summary.Phases = append(summary.Phases, model.PhaseTiming{
				Name: name,
				Secs: result.Phases[name].Seconds(),
			})
		}

		printSummary(summary)
		if sortShow {
			printValues(result.Sorted)
		}

		if sortOutputPath != "" {
			if err := writeSorted(sortOutputPath, result.Sorted); err != nil {
				return err
			}
			logger.Info("Sorted output written to %s", sortOutputPath)
		}
		if sortJSONPath != "" {
			w := writer.NewPrettyJSONWriter[*model.SortSummary]()
			if err := w.WriteToFile(summary, sortJSONPath); err != nil {
				return err
			}
			logger.Info("JSON summary written to %s", sortJSONPath)
		}
		if sortRecord || cfg.Sort.Record {
			if err := recordRun(cmd, summary); err != nil {
				return err
			}
		}
		if sortArchive || cfg.Sort.Archive {
			if err := archiveRun(cmd, summary); err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	sortCmd.Flags().IntVarP(&sortProcs, "procs", "p", 0, "Number of ranks (power of two; default from config)")
	sortCmd.Flags().StringVar(&sortJSONPath, "json", "", "Write a JSON summary to this file")
	sortCmd.Flags().StringVarP(&sortOutputPath, "output", "o", "", "Write the sorted values to this file")
	sortCmd.Flags().BoolVar(&sortShow, "show", false, "Print the sorted values to stdout")
	sortCmd.Flags().BoolVar(&sortRecord, "record", false, "Record the run in the benchmark database")
	sortCmd.Flags().BoolVar(&sortArchive, "archive", false, "Upload the run summary to object storage")
	rootCmd.AddCommand(sortCmd)
}

func printSummary(s *model.SortSummary) {
	logger.Info("--- Results ---")
	logger.Info("Input file:   %s", s.InputFile)
	logger.Info("Elements:     %d", s.N)
	logger.Info("Ranks:        %d", s.Procs)
	logger.Info("Primes found: %d", s.PrimeCount)
	logger.Info("Elapsed:      %v", s.Elapsed)
	for _, phase := range s.Phases {
		logger.Debug("  %-8s %.6fs", phase.Name, phase.Secs)
	}
}

func printValues(values []int32) {
	for _, v := range values {
		fmt.Println(v)
	}
}

func writeSorted(path string, values []int32) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := fmt.Fprintln(file, len(values)); err != nil {
		return err
	}
	for _, v := range values {
		if _, err := fmt.Fprintln(file, v); err != nil {
			return err
		}
	}
	return nil
}

func recordRun(cmd *cobra.Command, summary *model.SortSummary) error {
	repo, err := repository.NewRunRepository(&cfg.Database)
	if err != nil {
		return err
	}

	run := model.FromSummary(summary)
	if err := repo.SaveRun(cmd.Context(), run); err != nil {
		return err
	}
	logger.Info("Run recorded with id %d", run.ID)
	return nil
}

func archiveRun(cmd *cobra.Command, summary *model.SortSummary) error {
	store, err := storage.New(&cfg.Storage)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("runs/%s/%d-p%d.json",
		filepath.Base(summary.InputFile), summary.SortedAt.Unix(), summary.Procs)

	tmp, err := os.CreateTemp("", "hypersort-summary-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	w := writer.NewJSONWriter[*model.SortSummary]()
	if err := w.Write(summary, tmp); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := store.UploadFile(cmd.Context(), key, tmp.Name()); err != nil {
		return err
	}
	logger.Info("Summary archived at %s", store.GetURL(key))
	return nil
}
