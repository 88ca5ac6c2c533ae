package hsqs

import (
	"context"
	"math"
	"math/rand"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/hypersort/pkg/errors"
)

func runSorted(t *testing.T, values []int32, procs int) *Result {
	t.Helper()
	res, err := Run(context.Background(), values, Options{Procs: procs})
	require.NoError(t, err)
	return res
}

func TestScenarioTwoRanks(t *testing.T) {
	res := runSorted(t, []int32{5, 3, 8, 1, 7, 2, 6, 4}, 2)
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6, 7, 8}, res.Sorted)
	assert.Equal(t, 4, res.PrimeCount) // 2, 3, 5, 7
}

func TestScenarioAllEqualNegative(t *testing.T) {
	values := []int32{-1, -1, -1, -1, -1, -1, -1, -1}
	res := runSorted(t, values, 4)
	assert.Equal(t, values, res.Sorted)
	assert.Zero(t, res.PrimeCount)
}

func TestScenarioReverseOrder(t *testing.T) {
	values := make([]int32, 16)
	for i := range values {
		values[i] = int32(16 - i)
	}
	res := runSorted(t, values, 4)

	want := make([]int32, 16)
	for i := range want {
		want[i] = int32(i + 1)
	}
	assert.Equal(t, want, res.Sorted)
	assert.Equal(t, 6, res.PrimeCount) // 2, 3, 5, 7, 11, 13
}

func TestScenarioInt32Extremes(t *testing.T) {
	res := runSorted(t, []int32{math.MaxInt32, math.MinInt32, 0, 1}, 2)
	assert.Equal(t, []int32{math.MinInt32, 0, 1, math.MaxInt32}, res.Sorted)
	assert.Equal(t, 1, res.PrimeCount) // 2147483647 is prime
}

func TestScenarioOneElementPerRankAllZero(t *testing.T) {
	// Degenerate pivots on every level; exchanges carry empty payloads.
	values := make([]int32, 8)
	res := runSorted(t, values, 8)
	assert.Equal(t, values, res.Sorted)
	assert.Zero(t, res.PrimeCount)
}

func TestScenarioDuplicateRuns(t *testing.T) {
	res := runSorted(t, []int32{7, 7, 7, 2, 2, 2}, 2)
	assert.Equal(t, []int32{2, 2, 2, 7, 7, 7}, res.Sorted)
	assert.Equal(t, 6, res.PrimeCount)
}

func TestSingleRank(t *testing.T) {
	res := runSorted(t, []int32{3, 1, 2, 0}, 1)
	assert.Equal(t, []int32{0, 1, 2, 3}, res.Sorted)
	assert.Equal(t, 2, res.PrimeCount)
}

func TestSortednessAndPermutationRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, procs := range []int{1, 2, 4, 8} {
		n := 32 * procs
		values := make([]int32, n)
		for i := range values {
			values[i] = int32(rng.Int31()) - math.MaxInt32/2
		}

		res := runSorted(t, values, procs)
		assert.True(t, slices.IsSorted(res.Sorted), "procs=%d", procs)

		wantSorted := slices.Clone(values)
		slices.Sort(wantSorted)
		assert.Equal(t, wantSorted, res.Sorted, "procs=%d", procs)
		assert.Equal(t, CountPrimes(values), res.PrimeCount, "procs=%d", procs)
	}
}

func TestDeterminismAcrossProcessCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	values := make([]int32, 64)
	for i := range values {
		values[i] = int32(rng.Intn(1000) - 500)
	}

	baseline := runSorted(t, values, 1)
	for _, procs := range []int{2, 4, 8} {
		res := runSorted(t, values, procs)
		assert.Equal(t, baseline.Sorted, res.Sorted, "procs=%d", procs)
		assert.Equal(t, baseline.PrimeCount, res.PrimeCount, "procs=%d", procs)
	}
}

func TestIdempotence(t *testing.T) {
	values := []int32{1, 2, 3, 4, 5, 6, 7, 8}
	res := runSorted(t, values, 4)
	assert.Equal(t, values, res.Sorted)

	again := runSorted(t, res.Sorted, 4)
	assert.Equal(t, values, again.Sorted)
	assert.Equal(t, res.PrimeCount, again.PrimeCount)
}

func TestInputNotModified(t *testing.T) {
	values := []int32{4, 3, 2, 1}
	snapshot := slices.Clone(values)
	runSorted(t, values, 2)
	assert.Equal(t, snapshot, values)
}

func TestPartitionInvariantPerLevel(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	values := make([]int32, 64)
	for i := range values {
		values[i] = int32(rng.Intn(200) - 100)
	}

	var mu sync.Mutex
	var traces []LevelTrace
	_, err := Run(context.Background(), values, Options{
		Procs: 8,
		OnLevel: func(tr LevelTrace) {
			mu.Lock()
			traces = append(traces, tr)
			mu.Unlock()
		},
	})
	require.NoError(t, err)

	// After each level's exchange, every element on a low-half rank is
	// <= the level pivot and every element on a high-half rank is > it.
	assert.NotEmpty(t, traces)
	for _, tr := range traces {
		for _, v := range tr.Buffer {
			if tr.Color == 0 {
				assert.LessOrEqual(t, v, tr.Pivot,
					"depth=%d rank=%d", tr.Depth, tr.GroupRank)
			} else {
				assert.Greater(t, v, tr.Pivot,
					"depth=%d rank=%d", tr.Depth, tr.GroupRank)
			}
		}
	}

	// Three levels for eight ranks, one trace per rank per level.
	byDepth := map[int]int{}
	for _, tr := range traces {
		byDepth[tr.Depth]++
	}
	assert.Equal(t, map[int]int{0: 8, 1: 8, 2: 8}, byDepth)
}

func TestRunValidation(t *testing.T) {
	values := []int32{1, 2, 3, 4}

	_, err := Run(context.Background(), values, Options{Procs: 3})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidArgs, apperrors.GetErrorCode(err))

	_, err = Run(context.Background(), values, Options{Procs: 0})
	require.Error(t, err)

	_, err = Run(context.Background(), []int32{1, 2, 3}, Options{Procs: 2})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidArgs, apperrors.GetErrorCode(err))

	_, err = Run(context.Background(), nil, Options{Procs: 2})
	require.Error(t, err)
}

func TestRunPhaseTimings(t *testing.T) {
	res := runSorted(t, []int32{2, 1, 4, 3}, 2)
	for _, name := range []string{"scatter", "sort", "reduce", "gather"} {
		_, ok := res.Phases[name]
		assert.True(t, ok, "missing phase %s", name)
	}
}
