package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlicePoolGetLength(t *testing.T) {
	p := NewSlicePool[int32](4)

	s := p.Get(10)
	assert.Len(t, *s, 10)
	assert.GreaterOrEqual(t, cap(*s), 10)
	p.Put(s)
}

func TestSlicePoolReuse(t *testing.T) {
	p := NewSlicePool[int32](16)

	s := p.Get(8)
	for i := range *s {
		(*s)[i] = int32(i)
	}
	p.Put(s)

	// A fresh Get must honor the requested length regardless of what the
	// pooled slice previously held.
	s2 := p.Get(3)
	assert.Len(t, *s2, 3)
	p.Put(s2)
}

func TestSlicePoolZeroRequest(t *testing.T) {
	p := NewSlicePool[int32](0)
	s := p.Get(0)
	assert.Len(t, *s, 0)
	p.Put(s)
}
