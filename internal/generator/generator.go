// Package generator produces input files of unique int32 values for the
// sort: dense generation shuffles a materialized range, sparse generation
// draws from the full int32 range with a uniqueness set.
package generator

import (
	"math"
	"math/rand"

	"github.com/hypersort/pkg/errors"
)

// maxN is the practical cap on generated counts, matching the limit the
// sparse path needs to keep its uniqueness set in memory.
const maxN = 100_000_000

// DefaultDenseMax is the exclusive upper bound of the dense range when
// none is given.
const DefaultDenseMax = 1_000_000

// Dense generates n unique values from [min, max) by materializing the
// range and shuffling it (Fisher-Yates). The range must hold at least n
// values and must fit in memory.
func Dense(n int, min, max int64, rng *rand.Rand) ([]int32, error) {
	if err := checkN(n); err != nil {
		return nil, err
	}
	if min < math.MinInt32 || max > math.MaxInt32+1 || min >= max {
		return nil, errors.Newf(errors.CodeInvalidArgs,
			"invalid range [%d, %d)", min, max)
	}

	rangeSize := max - min
	if rangeSize < int64(n) {
		return nil, errors.Newf(errors.CodeInvalidArgs,
			"cannot draw %d unique values from a range of %d", n, rangeSize)
	}
	if rangeSize > maxN {
		return nil, errors.Newf(errors.CodeAllocError,
			"range of %d values is too large to materialize", rangeSize)
	}

	all := make([]int32, rangeSize)
	for i := range all {
		all[i] = int32(min + int64(i))
	}
	rng.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})

	return all[:n], nil
}

// Sparse generates n unique values from the full int32 range by
// generate-and-test against a uniqueness set.
func Sparse(n int, rng *rand.Rand) ([]int32, error) {
	if err := checkN(n); err != nil {
		return nil, err
	}

	seen := make(map[int32]struct{}, n)
	values := make([]int32, 0, n)
	for len(values) < n {
		v := int32(rng.Uint32())
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values, nil
}

func checkN(n int) error {
	if n <= 0 {
		return errors.Newf(errors.CodeInvalidArgs, "count must be positive, got %d", n)
	}
	if n > maxN {
		return errors.Newf(errors.CodeInvalidArgs,
			"count %d exceeds the practical limit of %d", n, maxN)
	}
	return nil
}
