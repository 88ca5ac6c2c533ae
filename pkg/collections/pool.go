// Package collections provides generic data structures for buffer reuse.
package collections

import (
	"sync"
)

// SlicePool is a generic pool for slices of any type. The sort's pair
// exchange draws its receive scratch buffers from here and returns them
// once the merged buffer has been adopted.
type SlicePool[T any] struct {
	pool       sync.Pool
	initialCap int
}

// NewSlicePool creates a new slice pool with the given initial capacity.
func NewSlicePool[T any](initialCap int) *SlicePool[T] {
	if initialCap <= 0 {
		initialCap = 256
	}
	return &SlicePool[T]{
		initialCap: initialCap,
		pool: sync.Pool{
			New: func() interface{} {
				s := make([]T, 0, initialCap)
				return &s
			},
		},
	}
}

// Get returns a slice from the pool, grown to hold at least n elements.
// The returned slice has length n; its contents are unspecified.
func (p *SlicePool[T]) Get(n int) *[]T {
	s := p.pool.Get().(*[]T)
	if cap(*s) < n {
		*s = make([]T, n)
	} else {
		*s = (*s)[:n]
	}
	return s
}

// Put returns a slice to the pool after clearing its length.
func (p *SlicePool[T]) Put(s *[]T) {
	*s = (*s)[:0]
	p.pool.Put(s)
}

// Int32Pool is the shared pool for []int32 exchange buffers.
var Int32Pool = NewSlicePool[int32](256)
