package parallel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessChunksSum(t *testing.T) {
	items := make([]int, 1000)
	for i := range items {
		items[i] = i
	}

	sum := ProcessChunks(context.Background(), items, DefaultConfig(),
		func(ctx context.Context, chunk []int) int {
			s := 0
			for _, v := range chunk {
				s += v
			}
			return s
		},
		func(results []int) int {
			s := 0
			for _, v := range results {
				s += v
			}
			return s
		})

	assert.Equal(t, 999*1000/2, sum)
}

func TestProcessChunksEmpty(t *testing.T) {
	got := ProcessChunks(context.Background(), nil, DefaultConfig(),
		func(ctx context.Context, chunk []int) int { return 1 },
		func(results []int) int { return len(results) })
	assert.Equal(t, 0, got)
}

func TestProcessChunksMoreWorkersThanItems(t *testing.T) {
	items := []int{1, 2, 3}
	sum := ProcessChunks(context.Background(), items, Config{MaxWorkers: 16},
		func(ctx context.Context, chunk []int) int {
			s := 0
			for _, v := range chunk {
				s += v
			}
			return s
		},
		func(results []int) int {
			s := 0
			for _, v := range results {
				s += v
			}
			return s
		})
	assert.Equal(t, 6, sum)
}

func TestCountIf(t *testing.T) {
	items := make([]int32, 100)
	for i := range items {
		items[i] = int32(i)
	}

	even := CountIf(context.Background(), items, DefaultConfig(), func(v int32) bool {
		return v%2 == 0
	})
	assert.Equal(t, 50, even)
}
