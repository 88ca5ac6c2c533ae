package hsqs

import (
	"context"
	"time"

	"github.com/hypersort/internal/cluster"
	"github.com/hypersort/pkg/errors"
	"github.com/hypersort/pkg/utils"
)

// Options configures a distributed sort run.
type Options struct {
	// Procs is the number of ranks. Must be a power of two, and must
	// divide the input length.
	Procs int
	// Logger receives per-rank progress at debug level. Nil for silent.
	Logger utils.Logger
	// Clock is used for the root-side wall-clock measurement.
	// Nil means the real clock.
	Clock utils.Clock
	// OnLevel, when set, is invoked by every rank after each level's
	// exchange. Calls arrive concurrently from rank goroutines.
	OnLevel func(LevelTrace)
}

// Result is the root-side outcome of a run.
type Result struct {
	Sorted     []int32
	PrimeCount int
	Elapsed    time.Duration
	Phases     map[string]time.Duration
}

// Run sorts values across opts.Procs ranks and reports the prime count
// over the sorted data. The input slice is not modified.
func Run(ctx context.Context, values []int32, opts Options) (*Result, error) {
	n := len(values)
	p := opts.Procs

	if p < 1 {
		return nil, errors.Newf(errors.CodeInvalidArgs, "process count must be positive, got %d", p)
	}
	if p&(p-1) != 0 {
		return nil, errors.Newf(errors.CodeInvalidArgs, "process count must be a power of two, got %d", p)
	}
	if n == 0 {
		return nil, errors.New(errors.CodeInvalidArgs, "input is empty")
	}
	if n%p != 0 {
		return nil, errors.Newf(errors.CodeInvalidArgs,
			"N (%d) must be divisible by the process count (%d)", n, p)
	}

	logger := opts.Logger
	if logger == nil {
		logger = &utils.NullLogger{}
	}
	clock := opts.Clock
	if clock == nil {
		clock = utils.NewRealClock()
	}

	world, err := cluster.NewWorld(p)
	if err != nil {
		return nil, err
	}

	result := &Result{Phases: make(map[string]time.Duration)}
	var started time.Time

	err = world.Launch(ctx, func(ctx context.Context, comm *cluster.Comm) error {
		rank := comm.Rank()
		rankLog := logger.WithField("rank", rank)
		engine := NewEngine(rankLog, opts.OnLevel)

		// The timed region is bracketed by two group-wide barriers so
		// every rank is inside it for the whole distributed phase.
		if err := comm.Barrier(ctx); err != nil {
			return err
		}
		var timer *utils.Timer
		if rank == 0 {
			started = clock.Now()
			timer = utils.NewTimerWithClock("hsqs", clock)
		}

		if _, err := comm.BcastInt(ctx, n, 0); err != nil {
			return err
		}

		var phase *utils.PhaseTimer
		if rank == 0 {
			phase = timer.Start("scatter")
		}
		var global []int32
		if rank == 0 {
			global = values
		}
		local, err := comm.Scatter(ctx, global, n/p, 0)
		if err != nil {
			return err
		}
		if rank == 0 {
			phase.Stop()
			phase = timer.Start("sort")
		}

		local, err = engine.Sort(ctx, comm, local)
		if err != nil {
			return err
		}
		rankLog.Debug("final segment holds %d elements", len(local))

		if rank == 0 {
			phase.Stop()
			phase = timer.Start("reduce")
		}
		primes, err := comm.ReduceSumInt(ctx, CountPrimes(local), 0)
		if err != nil {
			return err
		}

		if rank == 0 {
			phase.Stop()
			phase = timer.Start("gather")
		}
		counts, err := comm.GatherInt(ctx, len(local), 0)
		if err != nil {
			return err
		}
		if rank == 0 {
			total := 0
			for _, c := range counts {
				total += c
			}
			if total != n {
				err := errors.Newf(errors.CodeConsistency,
					"gathered counts sum to %d, want N=%d", total, n)
				return err
			}
		}

		sorted, err := comm.Gatherv(ctx, local, counts, 0)
		if err != nil {
			return err
		}
		if rank == 0 {
			phase.Stop()
		}

		if err := comm.Barrier(ctx); err != nil {
			return err
		}

		if rank == 0 {
			result.Sorted = sorted
			result.PrimeCount = primes
			result.Elapsed = clock.Since(started)
			for _, name := range []string{"scatter", "sort", "reduce", "gather"} {
				result.Phases[name] = timer.GetDuration(name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
