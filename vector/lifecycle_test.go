package vector

import (
	"testing"

	"github.com/glpuga/ekucontainers/mem"
	"github.com/lni/goutils/leaktest"
	"github.com/stretchr/testify/assert"
)

// newCounted builds a vector over a counting allocator with a small growth
// block, so growth and relocation show up after a handful of appends.
func newCounted(t *testing.T) (*Vector[int], *mem.CountingAllocator[int]) {
	t.Helper()
	cnt := mem.Counting[int](nil)
	v := New(WithAllocator[int](cnt), WithPolicy[int](mem.Policy{}), WithBlockSize[int](2))
	return v, cnt
}

func TestLifecycleOnAppendAndGrowth(t *testing.T) {
	v, cnt := newCounted(t)

	v.PushBack(1)
	v.PushBack(2)
	v.PushBack(3)

	// two blocks allocated (capacity 2, then 4), the first one freed after
	// its two elements were relocated
	assert.Equal(t, 2, cnt.Allocates)
	assert.Equal(t, 1, cnt.Frees)
	assert.Equal(t, 5, cnt.Constructs)
	assert.Equal(t, 2, cnt.Destroys)
	assert.Equal(t, 3, cnt.LiveObjects())
	assert.Equal(t, 1, cnt.LiveBlocks())

	v.Close()
	assert.Equal(t, 0, cnt.LiveObjects())
	assert.Equal(t, 0, cnt.LiveBlocks())
}

func TestLifecycleExactlyOneConstructPerSlot(t *testing.T) {
	v, cnt := newCounted(t)
	defer v.Close()

	v.Reserve(8)
	cnt.Reset()

	for i := 0; i < 8; i++ {
		v.PushBack(i)
	}
	assert.Equal(t, 8, cnt.Constructs)
	assert.Equal(t, 0, cnt.Destroys)
	assert.Equal(t, 0, cnt.Allocates)
}

func TestLifecycleOnClear(t *testing.T) {
	v, cnt := newCounted(t)
	defer v.Close()

	v.PushBack(1)
	v.PushBack(2)
	cnt.Reset()

	v.Clear()
	assert.Equal(t, 2, cnt.Destroys)
	assert.Equal(t, 0, cnt.Frees)
}

func TestLifecycleOnInsertMany(t *testing.T) {
	v, cnt := newCounted(t)
	defer v.Close()

	v.Reserve(8)
	v.PushBack(97)
	v.PushBack(98)
	cnt.Reset()

	v.InsertN(1, 2, 42)
	assert.Equal(t, []int{97, 42, 42, 98}, v.Data())
	// one suffix element relocated, two new elements constructed in the gap
	assert.Equal(t, 3, cnt.Constructs)
	assert.Equal(t, 1, cnt.Destroys)
	assert.Equal(t, 0, cnt.Allocates)
}

func TestLifecycleOnErase(t *testing.T) {
	v, cnt := newCounted(t)
	defer v.Close()

	v.Reserve(8)
	for i := 0; i < 4; i++ {
		v.PushBack(i)
	}
	cnt.Reset()

	v.Erase(1)
	// shifting is swap-based; only the popped tail slot is destroyed
	assert.Equal(t, 0, cnt.Constructs)
	assert.Equal(t, 1, cnt.Destroys)
}

func TestLifecycleOnMoveTransfer(t *testing.T) {
	cnt := mem.Counting[int](nil)
	source := New(WithAllocator[int](cnt), WithPolicy[int](mem.Policy{AlwaysEqual: true}))
	defer source.Close()
	source.PushBack(1)
	source.PushBack(2)
	cnt.Reset()

	dst := New(WithAllocator[int](cnt), WithPolicy[int](mem.Policy{AlwaysEqual: true}))
	defer dst.Close()
	dst.MoveFrom(source)

	// O(1) ownership transfer touches no element
	assert.Equal(t, 0, cnt.Constructs)
	assert.Equal(t, 0, cnt.Destroys)
	assert.Equal(t, 0, cnt.Allocates)
	assert.Equal(t, []int{1, 2}, dst.Data())
}

func TestPooledAllocatorBackedVector(t *testing.T) {
	defer leaktest.AfterTest(t)()

	alloc := mem.Pooled[int](128, 64*1024)
	v := New(WithAllocator[int](alloc), WithPolicy[int](mem.Policy{}))
	for i := 0; i < 5000; i++ {
		v.PushBack(i)
	}
	assert.Equal(t, 5000, v.Len())
	for i := 0; i < 5000; i++ {
		assert.Equal(t, i, v.Get(i))
	}
	v.Close()

	// blocks returned to the pool come back zeroed and sized to the request
	reused := New(WithAllocator[int](alloc), WithPolicy[int](mem.Policy{}))
	defer reused.Close()
	reused.PushBack(1)
	assert.Equal(t, 1, reused.Len())
	assert.Equal(t, defaultBlockSize, reused.Capacity())
}
