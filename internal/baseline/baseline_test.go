package baseline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSortsAndCounts(t *testing.T) {
	res, err := Run(context.Background(), []int32{5, 3, 8, 1, 7, 2, 6, 4}, nil)
	require.NoError(t, err)

	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6, 7, 8}, res.Sorted)
	assert.Equal(t, 4, res.PrimeCount)
}

func TestRunLeavesInputUntouched(t *testing.T) {
	values := []int32{3, 1, 2}
	_, err := Run(context.Background(), values, nil)
	require.NoError(t, err)
	assert.Equal(t, []int32{3, 1, 2}, values)
}

func TestRunEmpty(t *testing.T) {
	res, err := Run(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Sorted)
	assert.Zero(t, res.PrimeCount)
}
