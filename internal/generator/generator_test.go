package generator

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypersort/internal/input"
	apperrors "github.com/hypersort/pkg/errors"
	"github.com/hypersort/pkg/parallel"
)

func assertUnique(t *testing.T, values []int32) {
	t.Helper()
	seen := make(map[int32]struct{}, len(values))
	for _, v := range values {
		_, dup := seen[v]
		assert.False(t, dup, "duplicate value %d", v)
		seen[v] = struct{}{}
	}
}

func TestDenseUniqueInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	values, err := Dense(1000, 0, 10000, rng)
	require.NoError(t, err)
	require.Len(t, values, 1000)

	assertUnique(t, values)
	for _, v := range values {
		assert.GreaterOrEqual(t, v, int32(0))
		assert.Less(t, v, int32(10000))
	}
}

func TestDenseNegativeRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	values, err := Dense(50, -100, -40, rng)
	require.NoError(t, err)
	assertUnique(t, values)
	for _, v := range values {
		assert.GreaterOrEqual(t, v, int32(-100))
		assert.Less(t, v, int32(-40))
	}
}

func TestDenseExactRange(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	values, err := Dense(10, 0, 10, rng)
	require.NoError(t, err)
	assertUnique(t, values)
}

func TestDenseSeedReproducible(t *testing.T) {
	a, err := Dense(100, 0, 1000, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := Dense(100, 0, 1000, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDenseRangeTooSmall(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := Dense(100, 0, 50, rng)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidArgs, apperrors.GetErrorCode(err))
}

func TestDenseInvalidArguments(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := Dense(0, 0, 100, rng)
	require.Error(t, err)

	_, err = Dense(10, 100, 100, rng)
	require.Error(t, err)

	_, err = Dense(10, 50, 10, rng)
	require.Error(t, err)
}

func TestSparseUnique(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	values, err := Sparse(5000, rng)
	require.NoError(t, err)
	require.Len(t, values, 5000)
	assertUnique(t, values)
}

func TestSparseSpansSigns(t *testing.T) {
	// Drawing from the full int32 range should produce both signs with
	// overwhelming probability. Verified with the parallel counter the
	// baseline uses.
	rng := rand.New(rand.NewSource(2))
	values, err := Sparse(4000, rng)
	require.NoError(t, err)

	negatives := parallel.CountIf(context.Background(), values, parallel.DefaultConfig(),
		func(v int32) bool { return v < 0 })
	assert.Greater(t, negatives, 0)
	assert.Less(t, negatives, len(values))
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	values := []int32{5, -3, 2147483647, -2147483648, 0}

	require.NoError(t, WriteFile(path, values))

	back, err := input.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, values, back)
}

func TestWriteFileBadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir", "x.txt"), []int32{1})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeIOError, apperrors.GetErrorCode(err))
}
