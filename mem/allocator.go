package mem

// Allocator reserves and releases raw element storage for a container, and
// constructs/destroys single elements in place inside a block it handed out.
// Blocks are never expanded in use; growing storage means allocating a new
// block and freeing the old one.
type Allocator[T any] interface {
	// Allocate allocate a block with room for exactly n elements. Every slot
	// in the returned block is unconstructed until Construct is called on it.
	Allocate(n int) []T
	// Free free a block previously returned by Allocate. All slots must have
	// been destroyed before the block is freed.
	Free(block []T)
	// Construct place value into an unconstructed slot, making it live.
	Construct(slot *T, value T)
	// Destroy tear down a live slot, dropping any references it holds.
	Destroy(slot *T)
}

// Matcher is an optional hook an Allocator can implement to customize how it
// compares against another allocation strategy. Same uses it when present.
type Matcher interface {
	SameAs(other any) bool
}

// Policy controls whether copy/move operations between two containers also
// transfer the allocator instance, and whether two instances of the allocator
// are interchangeable regardless of identity.
type Policy struct {
	// PropagateOnCopy replace the destination allocator with the source's on
	// copy assignment.
	PropagateOnCopy bool
	// PropagateOnMove replace the destination allocator with the source's on
	// move assignment, enabling O(1) buffer transfer.
	PropagateOnMove bool
	// AlwaysEqual treat any two instances of the allocator as equivalent. Set
	// for stateless allocators.
	AlwaysEqual bool
}

// DefaultPolicy is the policy of the stateless heap allocator: moves
// propagate, copies do not, and all instances are interchangeable.
var DefaultPolicy = Policy{
	PropagateOnMove: true,
	AlwaysEqual:     true,
}

// Same reports whether a and b represent the same allocation strategy, i.e.
// whether a block allocated by one may be freed by the other. Allocators
// implementing Matcher decide for themselves; everything else compares by
// identity.
func Same[T any](a, b Allocator[T]) bool {
	if m, ok := a.(Matcher); ok {
		return m.SameAs(b)
	}
	if m, ok := b.(Matcher); ok {
		return m.SameAs(a)
	}
	return a == b
}

type heapAllocator[T any] struct {
}

// Heap returns the default allocator. Blocks come from the Go heap and Free
// is a no-op, leaving reclamation to the garbage collector.
func Heap[T any]() Allocator[T] {
	return heapAllocator[T]{}
}

func (heapAllocator[T]) Allocate(n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, n)
}

func (heapAllocator[T]) Free([]T) {
}

func (heapAllocator[T]) Construct(slot *T, value T) {
	*slot = value
}

func (heapAllocator[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}
