// Package baseline provides the sequential sort used for timing
// comparison against the distributed path.
package baseline

import (
	"context"
	"slices"
	"time"

	"github.com/hypersort/internal/hsqs"
	"github.com/hypersort/pkg/parallel"
	"github.com/hypersort/pkg/utils"
)

// Result is the outcome of a baseline run.
type Result struct {
	Sorted     []int32
	PrimeCount int
	Elapsed    time.Duration
}

// Run sorts a copy of values sequentially and counts primes over the
// sorted data. The prime count uses chunked workers; the sort itself is
// the single-threaded reference.
func Run(ctx context.Context, values []int32, clock utils.Clock) (*Result, error) {
	if clock == nil {
		clock = utils.NewRealClock()
	}

	sorted := slices.Clone(values)
	started := clock.Now()

	slices.Sort(sorted)
	primes := parallel.CountIf(ctx, sorted, parallel.DefaultConfig(), hsqs.IsPrime)

	return &Result{
		Sorted:     sorted,
		PrimeCount: primes,
		Elapsed:    clock.Since(started),
	}, nil
}
