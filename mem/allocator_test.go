package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeapAllocate(t *testing.T) {
	alloc := Heap[int]()
	assert.Equal(t, 10, len(alloc.Allocate(10)))
	assert.Nil(t, alloc.Allocate(0))
}

func TestHeapConstructAndDestroy(t *testing.T) {
	alloc := Heap[string]()
	block := alloc.Allocate(2)

	alloc.Construct(&block[0], "hello")
	assert.Equal(t, "hello", block[0])

	alloc.Destroy(&block[0])
	assert.Equal(t, "", block[0])
}

func TestSame(t *testing.T) {
	a := Heap[int]()
	b := Heap[int]()
	assert.True(t, Same(a, b))

	p := Pooled[int](0, 0)
	q := Pooled[int](0, 0)
	assert.True(t, Same(p, p))
	assert.False(t, Same(p, q))
	assert.False(t, Same(a, p))
}

type matchAnything[T any] struct {
	Allocator[T]
}

func (matchAnything[T]) SameAs(any) bool { return true }

func TestSameWithMatcher(t *testing.T) {
	m := matchAnything[int]{Heap[int]()}
	assert.True(t, Same[int](m, Pooled[int](0, 0)))
	assert.True(t, Same[int](Pooled[int](0, 0), m))
}

func TestCounting(t *testing.T) {
	alloc := Counting[int](nil)

	block := alloc.Allocate(4)
	alloc.Construct(&block[0], 7)
	alloc.Construct(&block[1], 8)
	assert.Equal(t, 1, alloc.Allocates)
	assert.Equal(t, 2, alloc.Constructs)
	assert.Equal(t, 1, alloc.LiveBlocks())
	assert.Equal(t, 2, alloc.LiveObjects())

	alloc.Destroy(&block[0])
	alloc.Destroy(&block[1])
	alloc.Free(block)
	assert.Equal(t, 0, alloc.LiveBlocks())
	assert.Equal(t, 0, alloc.LiveObjects())

	alloc.Reset()
	assert.Equal(t, 0, alloc.Allocates)
	assert.Equal(t, 0, alloc.Frees)
	assert.Equal(t, 0, alloc.Constructs)
	assert.Equal(t, 0, alloc.Destroys)
}
