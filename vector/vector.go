package vector

import (
	"errors"
	"fmt"
	"math"

	"github.com/glpuga/ekucontainers/mem"
	"go.uber.org/zap"
)

var (
	// ErrOutOfRange checked access beyond the last live element
	ErrOutOfRange = errors.New("position out of range")
)

// maxLen is the documented, fixed answer of MaxSize. It is an
// implementation-defined constant, not a computed ceiling, and allocation may
// fail long before a vector reaches it.
const maxLen = math.MaxInt32

// Vector is a contiguous, resizable sequence with value semantics. It owns a
// single buffer obtained from a pluggable allocator and keeps two counters
// over it:
//
//	|     live elements      |   unconstructed slots   |
//	|                        |                         |
//	0        <=            size        <=           capacity
//
// Slots in [0, size) hold exactly one constructed element each; slots in
// [size, capacity) are storage only and are never read or destroyed. The
// buffer is allocated lazily, replaced wholesale on growth, and only released
// by Close.
//
// A Vector must not be used from multiple goroutines without external
// serialization.
type Vector[T any] struct {
	alloc     mem.Allocator[T]
	policy    mem.Policy
	policySet bool
	data      []T // len(data) is the capacity, nil while no storage is owned
	size      int

	options struct {
		blockSize int
		logger    *zap.Logger
	}
}

// New create an empty vector. No storage is allocated until the first
// element needs room.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		opt(v)
	}
	v.adjust()
	return v
}

// NewWithSize create a vector holding count zero-value elements.
func NewWithSize[T any](count int, opts ...Option[T]) *Vector[T] {
	v := New(opts...)
	var zero T
	if count > 0 {
		v.ensure(count)
		for v.size < count {
			v.alloc.Construct(&v.data[v.size], zero)
			v.size++
		}
	}
	return v
}

// NewWithValue create a vector holding count copies of value.
func NewWithValue[T any](count int, value T, opts ...Option[T]) *Vector[T] {
	v := New(opts...)
	if count > 0 {
		v.ensure(count)
		for v.size < count {
			v.alloc.Construct(&v.data[v.size], value)
			v.size++
		}
	}
	return v
}

// NewFromSlice create a vector with a copy of every element of values, in
// order. The vector does not alias the source slice.
func NewFromSlice[T any](values []T, opts ...Option[T]) *Vector[T] {
	v := New(opts...)
	v.ensure(len(values))
	for _, value := range values {
		v.alloc.Construct(&v.data[v.size], value)
		v.size++
	}
	return v
}

// Of create a vector from a literal list of elements.
func Of[T any](values ...T) *Vector[T] {
	return NewFromSlice(values)
}

// Clone create a vector with a copy of every element of other. The allocator,
// policy and growth settings are inherited from other unless overridden by
// options.
func Clone[T any](other *Vector[T], opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{
		alloc:     other.alloc,
		policy:    other.policy,
		policySet: true,
		options:   other.options,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.adjust()

	v.ensure(other.size)
	for v.size < other.size {
		v.alloc.Construct(&v.data[v.size], other.data[v.size])
		v.size++
	}
	return v
}

// Take create a vector by moving the contents out of other. When the new
// vector ends up with the same allocation strategy as other, the buffer is
// transferred in O(1) and other is left empty. Otherwise every element is
// relocated individually and other keeps its length, with its elements in a
// valid but unspecified state.
func Take[T any](other *Vector[T], opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{
		alloc:     other.alloc,
		policy:    other.policy,
		policySet: true,
		options:   other.options,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.adjust()

	if v.sameStrategy(other) {
		v.data, v.size = other.data, other.size
		other.data, other.size = nil, 0
		v.options.logger.Debug("buffer ownership transferred",
			zap.Int("size", v.size),
			zap.Int("capacity", v.capacity()))
		return v
	}

	v.ensure(other.size)
	var zero T
	for v.size < other.size {
		v.alloc.Construct(&v.data[v.size], other.data[v.size])
		other.data[v.size] = zero
		v.size++
	}
	return v
}

func (v *Vector[T]) adjust() {
	if v.alloc == nil {
		v.alloc = mem.Heap[T]()
	}
	if !v.policySet {
		v.policy = mem.DefaultPolicy
		v.policySet = true
	}
	if v.options.blockSize <= 0 {
		v.options.blockSize = defaultBlockSize
	}
	if v.options.logger == nil {
		v.options.logger = logger
	}
}

// sameStrategy reports whether buffers can move between v and other without
// crossing allocators.
func (v *Vector[T]) sameStrategy(other *Vector[T]) bool {
	return v.policy.AlwaysEqual || mem.Same(v.alloc, other.alloc)
}

// Close destroy every live element and release the buffer. The vector is
// empty and owns no storage afterwards, and may be reused.
func (v *Vector[T]) Close() {
	v.Clear()
	if v.data != nil {
		v.alloc.Free(v.data)
		v.data = nil
		v.options.logger.Debug("buffer released")
	}
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Empty returns true if the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// MaxSize returns the documented upper bound on Len. It is a fixed constant;
// it does not promise that a vector of that length is actually allocatable.
func (v *Vector[T]) MaxSize() int {
	return maxLen
}

// Capacity returns the number of element slots currently allocated.
func (v *Vector[T]) Capacity() int {
	return v.capacity()
}

func (v *Vector[T]) capacity() int {
	return len(v.data)
}

// Reserve grow the buffer so that at least n elements fit without further
// reallocation. It never shrinks, and does nothing when n <= Capacity().
// Growth relocates every live element, invalidating any Data slice or PtrAt
// pointer previously handed out.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.capacity() {
		return
	}

	newData := v.alloc.Allocate(n)
	for i := 0; i < v.size; i++ {
		v.alloc.Construct(&newData[i], v.data[i])
		v.alloc.Destroy(&v.data[i])
	}
	if v.data != nil {
		v.alloc.Free(v.data)
	}

	v.options.logger.Debug("buffer grown",
		zap.Int("capacity", n),
		zap.Int("size", v.size))
	v.data = newData
}

// ensure grow the buffer, if needed, to the smallest whole number of blocks
// that fits n elements. Steadily growing vectors reallocate rarely at the
// price of over-allocation, so callers cannot expect Capacity() == Len()
// after growth.
func (v *Vector[T]) ensure(n int) {
	if n <= v.capacity() {
		return
	}
	blocks := (n + v.options.blockSize - 1) / v.options.blockSize
	v.Reserve(blocks * v.options.blockSize)
}

// ShrinkToFit is a non-binding request to drop unused capacity. This
// implementation never shrinks a buffer; the call is a documented no-op.
func (v *Vector[T]) ShrinkToFit() {
}

// Clear destroy every live element. Capacity is unchanged.
func (v *Vector[T]) Clear() {
	for v.size > 0 {
		v.PopBack()
	}
}

// Allocator returns the allocator associated with the vector.
func (v *Vector[T]) Allocator() mem.Allocator[T] {
	return v.alloc
}

// Policy returns the allocator propagation policy.
func (v *Vector[T]) Policy() mem.Policy {
	return v.policy
}

// At returns the element at pos with bounds checking. Positions at or past
// Len fail with ErrOutOfRange.
func (v *Vector[T]) At(pos int) (T, error) {
	if pos < 0 || pos >= v.size {
		var zero T
		return zero, fmt.Errorf("%w: position %d, size %d", ErrOutOfRange, pos, v.size)
	}
	return v.data[pos], nil
}

// MustAt is similar to At, but panic if the position is out of range.
func (v *Vector[T]) MustAt(pos int) T {
	value, err := v.At(pos)
	if err != nil {
		panic(err)
	}
	return value
}

// Get returns the element at pos without bounds checking. Reading at or past
// Len violates the caller contract.
func (v *Vector[T]) Get(pos int) T {
	return v.data[pos]
}

// Set replaces the element at pos without bounds checking.
func (v *Vector[T]) Set(pos int, value T) {
	v.data[pos] = value
}

// PtrAt returns a pointer to the element at pos, without bounds checking.
// The pointer is invalidated by any growth of the buffer.
func (v *Vector[T]) PtrAt(pos int) *T {
	return &v.data[pos]
}

// Front returns the first element. Calling Front on an empty vector violates
// the caller contract.
func (v *Vector[T]) Front() T {
	return v.data[0]
}

// Back returns the last element. Calling Back on an empty vector violates
// the caller contract.
func (v *Vector[T]) Back() T {
	return v.data[v.size-1]
}

// Data returns the live elements as a slice over the vector's own buffer.
// The range [0, Len) is always valid, nil included when the vector is empty.
// The slice is invalidated by any growth of the buffer.
func (v *Vector[T]) Data() []T {
	return v.data[:v.size:v.size]
}

// PushBack appends a copy of value. Amortized constant; growth relocates the
// whole buffer.
func (v *Vector[T]) PushBack(value T) {
	v.ensure(v.size + 1)
	v.alloc.Construct(&v.data[v.size], value)
	v.size++
}

// EmplaceBack appends the element produced by build, constructing it
// directly in the tail slot.
func (v *Vector[T]) EmplaceBack(build func() T) {
	v.ensure(v.size + 1)
	v.alloc.Construct(&v.data[v.size], build())
	v.size++
}

// PopBack destroy the last element. On an empty vector it does nothing.
func (v *Vector[T]) PopBack() {
	if v.size > 0 {
		v.size--
		v.alloc.Destroy(&v.data[v.size])
	}
}

// Assign replaces the contents with count copies of value, reusing the
// current buffer when it is large enough. Live slots being overwritten are
// destroyed and reconstructed in place.
func (v *Vector[T]) Assign(count int, value T) {
	v.ensure(count)
	for i := 0; i < count; i++ {
		if i < v.size {
			v.alloc.Destroy(&v.data[i])
		}
		v.alloc.Construct(&v.data[i], value)
	}
	for v.size > count {
		v.PopBack()
	}
	if count > v.size {
		v.size = count
	}
}

// AssignSlice replaces the contents with a copy of every element of values.
// The behavior is undefined if values aliases the vector's own buffer.
func (v *Vector[T]) AssignSlice(values []T) {
	v.ensure(len(values))
	for i, value := range values {
		if i < v.size {
			v.alloc.Destroy(&v.data[i])
		}
		v.alloc.Construct(&v.data[i], value)
	}
	for v.size > len(values) {
		v.PopBack()
	}
	if len(values) > v.size {
		v.size = len(values)
	}
}

// Resize change the length to count, destroying tail elements or appending
// zero-value elements as needed.
func (v *Vector[T]) Resize(count int) {
	var zero T
	v.ResizeWith(count, zero)
}

// ResizeWith change the length to count, destroying tail elements or
// appending copies of value as needed.
func (v *Vector[T]) ResizeWith(count int, value T) {
	for v.size < count {
		v.PushBack(value)
	}
	for v.size > count {
		v.PopBack()
	}
}

// Swap exchanges allocator, policy, buffer and length with other in constant
// time. No element is touched; previously obtained Data slices keep working
// but refer to the other vector's sequence.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.alloc, other.alloc = other.alloc, v.alloc
	v.policy, other.policy = other.policy, v.policy
	v.data, other.data = other.data, v.data
	v.size, other.size = other.size, v.size
}

// CopyFrom replaces the contents with a copy of every element of other.
// When the policy propagates allocators on copy, the vector adopts other's
// allocator; if the two strategies differ, the old buffer is released through
// the original allocator before any allocation happens with the new one.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	if v == other {
		return
	}

	v.Clear()
	if v.policy.PropagateOnCopy {
		if !v.sameStrategy(other) && v.data != nil {
			v.alloc.Free(v.data)
			v.data = nil
		}
		v.alloc = other.alloc
		v.policy = other.policy
	}

	v.ensure(other.size)
	for v.size < other.size {
		v.alloc.Construct(&v.data[v.size], other.data[v.size])
		v.size++
	}
}

// MoveFrom replaces the contents with those of other, moving them. When the
// policy propagates allocators on move, or both vectors already share an
// allocation strategy, the buffer is transferred in O(1) and other is left
// empty. Otherwise every element is relocated individually into storage
// sized to other's length, and other keeps its length with its elements in a
// valid but unspecified state.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}

	v.Clear()
	if v.policy.PropagateOnMove || v.sameStrategy(other) {
		if v.data != nil {
			v.alloc.Free(v.data)
			v.data = nil
		}
		if v.policy.PropagateOnMove {
			v.alloc = other.alloc
			v.policy = other.policy
		}
		v.data, v.size = other.data, other.size
		other.data, other.size = nil, 0
		v.options.logger.Debug("buffer ownership transferred",
			zap.Int("size", v.size),
			zap.Int("capacity", v.capacity()))
		return
	}

	v.ensure(other.size)
	var zero T
	for v.size < other.size {
		v.alloc.Construct(&v.data[v.size], other.data[v.size])
		other.data[v.size] = zero
		v.size++
	}
}
