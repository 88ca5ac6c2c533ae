package cmd

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/hypersort/internal/generator"
	"github.com/hypersort/pkg/errors"
)

// genDenseCmd generates unique values by shuffling a materialized range.
var genDenseCmd = &cobra.Command{
	Use:   "gen-dense <count> <output-file> [min max] [seed]",
	Short: "Generate unique values from a dense range",
	Long: `Generate unique int32 values by materializing a range and shuffling it
(Fisher-Yates). The default range is [0, 1000000); it must hold at least
<count> values. An optional seed makes the output reproducible.`,
	Args: cobra.RangeArgs(2, 5),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseCount(args[0])
		if err != nil {
			return err
		}

		min, max := int64(0), int64(generator.DefaultDenseMax)
		seedArg := ""
		switch len(args) {
		case 3:
			seedArg = args[2]
		case 4, 5:
			if min, err = parseBound(args[2], "min"); err != nil {
				return err
			}
			if max, err = parseBound(args[3], "max"); err != nil {
				return err
			}
			if len(args) == 5 {
				seedArg = args[4]
			}
		}

		rng, seed, err := newRNG(seedArg)
		if err != nil {
			return err
		}
		logger.Info("Generating %d unique values in [%d, %d) with seed %d", n, min, max, seed)

		values, err := generator.Dense(n, min, max, rng)
		if err != nil {
			return err
		}
		return writeGenerated(args[1], values)
	},
}

// genRangeCmd generates unique values from an explicit range.
var genRangeCmd = &cobra.Command{
	Use:   "gen-range <count> <output-file> <min> <max> [seed]",
	Short: "Generate unique values from an explicit range",
	Long: `Generate unique int32 values from [min, max) by materializing the range
and shuffling it. The range must hold at least <count> values.`,
	Args: cobra.RangeArgs(4, 5),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseCount(args[0])
		if err != nil {
			return err
		}
		min, err := parseBound(args[2], "min")
		if err != nil {
			return err
		}
		max, err := parseBound(args[3], "max")
		if err != nil {
			return err
		}

		seedArg := ""
		if len(args) == 5 {
			seedArg = args[4]
		}
		rng, seed, err := newRNG(seedArg)
		if err != nil {
			return err
		}
		logger.Info("Generating %d unique values in [%d, %d) with seed %d", n, min, max, seed)

		values, err := generator.Dense(n, min, max, rng)
		if err != nil {
			return err
		}
		return writeGenerated(args[1], values)
	},
}

// genSparseCmd generates unique values across the full int32 range.
var genSparseCmd = &cobra.Command{
	Use:   "gen-sparse <count> <output-file> [seed]",
	Short: "Generate unique values across the full int32 range",
	Long: `Generate unique int32 values from the full range by drawing random
values and rejecting duplicates against a uniqueness set.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseCount(args[0])
		if err != nil {
			return err
		}

		seedArg := ""
		if len(args) == 3 {
			seedArg = args[2]
		}
		rng, seed, err := newRNG(seedArg)
		if err != nil {
			return err
		}
		logger.Info("Generating %d unique values across the int32 range with seed %d", n, seed)

		values, err := generator.Sparse(n, rng)
		if err != nil {
			return err
		}
		return writeGenerated(args[1], values)
	},
}

func init() {
	rootCmd.AddCommand(genDenseCmd)
	rootCmd.AddCommand(genRangeCmd)
	rootCmd.AddCommand(genSparseCmd)
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Newf(errors.CodeInvalidArgs, "invalid count %q", s)
	}
	return n, nil
}

func parseBound(s, name string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Newf(errors.CodeInvalidArgs, "invalid %s %q", name, s)
	}
	return v, nil
}

// newRNG builds the generator's random source: an explicit seed for
// reproducibility, or the current time.
func newRNG(seedArg string) (*rand.Rand, int64, error) {
	var seed int64
	if seedArg != "" {
		parsed, err := strconv.ParseInt(seedArg, 10, 64)
		if err != nil {
			return nil, 0, errors.Newf(errors.CodeInvalidArgs, "invalid seed %q", seedArg)
		}
		seed = parsed
	} else {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed, nil
}

func writeGenerated(path string, values []int32) error {
	if err := generator.WriteFile(path, values); err != nil {
		return err
	}
	logger.Info("Wrote %d values to %s", len(values), path)
	return nil
}
