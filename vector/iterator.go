package vector

// Iterator addresses a position inside a vector. It is a small value meant
// to be copied freely; advancing returns a new iterator rather than mutating
// in place. Because it stores a position and not a pointer into the buffer,
// it survives reallocation, but an iterator held across a mutation may no
// longer address the element it did before.
//
// A reverse iterator walks toward the front on Next. The zero Iterator is
// not attached to any vector and is not valid.
type Iterator[T any] struct {
	vec     *Vector[T]
	pos     int
	reverse bool
}

// Begin returns an iterator to the first element, equal to End when the
// vector is empty.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{vec: v}
}

// End returns the past-the-end iterator. It addresses no element.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{vec: v, pos: v.size}
}

// RBegin returns a reverse iterator to the last element, equal to REnd when
// the vector is empty.
func (v *Vector[T]) RBegin() Iterator[T] {
	return Iterator[T]{vec: v, pos: v.size - 1, reverse: true}
}

// REnd returns the reverse past-the-end iterator, addressing the position
// before the first element.
func (v *Vector[T]) REnd() Iterator[T] {
	return Iterator[T]{vec: v, pos: -1, reverse: true}
}

// Valid reports whether the iterator addresses a live element.
func (it Iterator[T]) Valid() bool {
	return it.vec != nil && it.pos >= 0 && it.pos < it.vec.size
}

// Pos returns the position the iterator addresses.
func (it Iterator[T]) Pos() int {
	return it.pos
}

// Next returns an iterator advanced by one element, toward the back for
// forward iterators and toward the front for reverse ones.
func (it Iterator[T]) Next() Iterator[T] {
	return it.Add(1)
}

// Prev returns an iterator moved back by one element.
func (it Iterator[T]) Prev() Iterator[T] {
	return it.Add(-1)
}

// Add returns an iterator advanced by n elements in the iterator's walking
// direction.
func (it Iterator[T]) Add(n int) Iterator[T] {
	if it.reverse {
		it.pos -= n
	} else {
		it.pos += n
	}
	return it
}

// Equal reports whether both iterators address the same position of the same
// vector in the same direction.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.vec == other.vec && it.pos == other.pos && it.reverse == other.reverse
}

// Value returns the element the iterator addresses. Dereferencing an
// iterator that is not Valid violates the caller contract.
func (it Iterator[T]) Value() T {
	return it.vec.Get(it.pos)
}

// Ptr returns a pointer to the element the iterator addresses. The pointer
// is invalidated by any growth of the buffer.
func (it Iterator[T]) Ptr() *T {
	return it.vec.PtrAt(it.pos)
}

// Set replaces the element the iterator addresses.
func (it Iterator[T]) Set(value T) {
	it.vec.Set(it.pos, value)
}

// Each calls fn for every element from front to back, stopping early when fn
// returns false.
func (v *Vector[T]) Each(fn func(pos int, value T) bool) {
	for i := 0; i < v.size; i++ {
		if !fn(i, v.data[i]) {
			return
		}
	}
}

// ReverseEach calls fn for every element from back to front, stopping early
// when fn returns false.
func (v *Vector[T]) ReverseEach(fn func(pos int, value T) bool) {
	for i := v.size - 1; i >= 0; i-- {
		if !fn(i, v.data[i]) {
			return
		}
	}
}
