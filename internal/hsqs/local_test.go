package hsqs

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionInPlace(t *testing.T) {
	tests := []struct {
		name  string
		buf   []int32
		pivot int32
	}{
		{"mixed", []int32{5, 3, 8, 1, 7, 2, 6, 4}, 4},
		{"all less", []int32{1, 2, 3}, 10},
		{"all greater", []int32{5, 6, 7}, 1},
		{"all equal to pivot", []int32{4, 4, 4, 4}, 4},
		{"single", []int32{9}, 9},
		{"negatives", []int32{-5, 0, -1, 3, -2}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := slices.Clone(tt.buf)
			k := PartitionInPlace(tt.buf, tt.pivot)

			for i := 0; i < k; i++ {
				assert.LessOrEqual(t, tt.buf[i], tt.pivot)
			}
			for i := k; i < len(tt.buf); i++ {
				assert.Greater(t, tt.buf[i], tt.pivot)
			}

			// The multiset is preserved.
			slices.Sort(original)
			sorted := slices.Clone(tt.buf)
			slices.Sort(sorted)
			assert.Equal(t, original, sorted)
		})
	}
}

func TestPartitionInPlaceEmpty(t *testing.T) {
	assert.Equal(t, 0, PartitionInPlace(nil, 5))
	assert.Equal(t, 0, PartitionInPlace([]int32{}, 5))
}

func TestPartitionInPlaceRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 100; trial++ {
		n := rng.Intn(64)
		buf := make([]int32, n)
		for i := range buf {
			buf[i] = int32(rng.Intn(20) - 10)
		}
		pivot := int32(rng.Intn(20) - 10)

		k := PartitionInPlace(buf, pivot)
		for i, v := range buf {
			if i < k {
				assert.LessOrEqual(t, v, pivot)
			} else {
				assert.Greater(t, v, pivot)
			}
		}
	}
}

func TestLocalSort(t *testing.T) {
	buf := []int32{3, -1, 2, -1, 0}
	LocalSort(buf)
	assert.Equal(t, []int32{-1, -1, 0, 2, 3}, buf)
}
