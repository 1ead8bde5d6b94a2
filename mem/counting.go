package mem

// CountingAllocator wraps another allocator and counts every operation that
// goes through it. It exists to let tests verify element lifecycle rules:
// exactly one Construct per live slot, every live slot destroyed before its
// block is freed, no block leaked.
//
// Counters are not synchronized; containers are single-owner structures and
// so is this wrapper.
type CountingAllocator[T any] struct {
	inner Allocator[T]

	Allocates  int
	Frees      int
	Constructs int
	Destroys   int
}

// Counting wraps inner with operation counters. A nil inner wraps the heap
// allocator.
func Counting[T any](inner Allocator[T]) *CountingAllocator[T] {
	if inner == nil {
		inner = Heap[T]()
	}
	return &CountingAllocator[T]{inner: inner}
}

// Reset zeroes all counters.
func (c *CountingAllocator[T]) Reset() {
	c.Allocates = 0
	c.Frees = 0
	c.Constructs = 0
	c.Destroys = 0
}

// LiveBlocks returns the number of allocated blocks not yet freed.
func (c *CountingAllocator[T]) LiveBlocks() int {
	return c.Allocates - c.Frees
}

// LiveObjects returns the number of constructed slots not yet destroyed.
func (c *CountingAllocator[T]) LiveObjects() int {
	return c.Constructs - c.Destroys
}

func (c *CountingAllocator[T]) Allocate(n int) []T {
	c.Allocates++
	return c.inner.Allocate(n)
}

func (c *CountingAllocator[T]) Free(block []T) {
	c.Frees++
	c.inner.Free(block)
}

func (c *CountingAllocator[T]) Construct(slot *T, value T) {
	c.Constructs++
	c.inner.Construct(slot, value)
}

func (c *CountingAllocator[T]) Destroy(slot *T) {
	c.Destroys++
	c.inner.Destroy(slot)
}
