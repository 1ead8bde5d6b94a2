package vector

import (
	"fmt"
)

func (v *Vector[T]) checkInsertPos(pos int) {
	if pos < 0 || pos > v.size {
		panic(fmt.Sprintf("invalid insert position %d, size %d", pos, v.size))
	}
}

func (v *Vector[T]) checkErasePos(pos int) {
	if pos < 0 || pos >= v.size {
		panic(fmt.Sprintf("invalid erase position %d, size %d", pos, v.size))
	}
}

// Insert inserts a copy of value before pos and returns an iterator to the
// inserted element. Valid positions are [0, Len]; Len appends. The element
// is appended and then rotated into place by adjacent swaps, so every
// element at or after pos shifts one slot toward the back.
func (v *Vector[T]) Insert(pos int, value T) Iterator[T] {
	v.checkInsertPos(pos)
	v.PushBack(value)
	v.rotateTailTo(pos)
	return Iterator[T]{vec: v, pos: pos}
}

// Emplace inserts the element produced by build before pos, constructing it
// directly in the tail slot before rotating it into place. Returns an
// iterator to the inserted element.
func (v *Vector[T]) Emplace(pos int, build func() T) Iterator[T] {
	v.checkInsertPos(pos)
	v.EmplaceBack(build)
	v.rotateTailTo(pos)
	return Iterator[T]{vec: v, pos: pos}
}

func (v *Vector[T]) rotateTailTo(pos int) {
	for i := v.size - 1; i > pos; i-- {
		v.data[i], v.data[i-1] = v.data[i-1], v.data[i]
	}
}

// InsertN inserts count copies of value before pos and returns an iterator
// to the first inserted element. The suffix starting at pos is relocated to
// the new tail, walking from the current tail backward so overlapping ranges
// cannot corrupt each other, and the copies are then constructed into the
// gap. A zero or negative count is a no-op returning a zero iterator.
func (v *Vector[T]) InsertN(pos, count int, value T) Iterator[T] {
	if count <= 0 {
		return Iterator[T]{}
	}
	v.checkInsertPos(pos)

	v.ensure(v.size + count)
	v.relocateSuffix(pos, count)
	for i := 0; i < count; i++ {
		v.alloc.Construct(&v.data[pos+i], value)
	}
	v.size += count
	return Iterator[T]{vec: v, pos: pos}
}

// InsertSlice inserts a copy of every element of values before pos and
// returns an iterator to the first inserted element. The behavior is
// undefined if values aliases the vector's own buffer. An empty slice is a
// no-op returning a zero iterator.
func (v *Vector[T]) InsertSlice(pos int, values []T) Iterator[T] {
	if len(values) == 0 {
		return Iterator[T]{}
	}
	v.checkInsertPos(pos)

	v.ensure(v.size + len(values))
	v.relocateSuffix(pos, len(values))
	for i, value := range values {
		v.alloc.Construct(&v.data[pos+i], value)
	}
	v.size += len(values)
	return Iterator[T]{vec: v, pos: pos}
}

// relocateSuffix moves the live elements in [pos, size) forward by count
// slots, move-constructing each at its destination and destroying the
// original, highest index first.
func (v *Vector[T]) relocateSuffix(pos, count int) {
	for i := v.size - 1; i >= pos; i-- {
		v.alloc.Construct(&v.data[i+count], v.data[i])
		v.alloc.Destroy(&v.data[i])
	}
}

// Erase removes the element at pos. Valid positions are [0, Len). Every
// element after pos shifts one slot toward the front; the returned iterator
// addresses the position following the removed element, which now holds the
// next element or equals End.
func (v *Vector[T]) Erase(pos int) Iterator[T] {
	v.checkErasePos(pos)
	for i := pos; i+1 < v.size; i++ {
		v.data[i], v.data[i+1] = v.data[i+1], v.data[i]
	}
	v.PopBack()
	return Iterator[T]{vec: v, pos: pos}
}

// EraseRange removes the elements in [first, last). Erasing an empty range
// is a no-op. The suffix [last, Len) is shifted into the gap and the
// trailing duplicates are popped; the returned iterator addresses first's
// original position.
func (v *Vector[T]) EraseRange(first, last int) Iterator[T] {
	if first < 0 || last < first || last > v.size {
		panic(fmt.Sprintf("invalid erase range [%d, %d), size %d", first, last, v.size))
	}
	if first == last {
		return Iterator[T]{vec: v, pos: first}
	}

	head, tail := first, last
	for tail < v.size {
		v.data[head], v.data[tail] = v.data[tail], v.data[head]
		head++
		tail++
	}
	for v.size > head {
		v.PopBack()
	}
	return Iterator[T]{vec: v, pos: first}
}
