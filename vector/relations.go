package vector

import (
	"cmp"
)

// Equal reports whether a and b hold equal sequences: same length and
// pairwise-equal elements in index order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal for element types without built-in equality,
// comparing element pairs with eq.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.data[i], b.data[i]) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically: the first differing element pair
// decides, and when one sequence is a prefix of the other the shorter one is
// smaller. Returns -1, 0 or +1. Every inequality relation below derives from
// this single primitive so they cannot disagree with each other.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare for element types without a built-in order,
// comparing element pairs with cmpFn, which must return a negative number,
// zero, or a positive number like cmp.Compare.
func CompareFunc[T any](a, b *Vector[T], cmpFn func(x, y T) int) int {
	n := a.size
	if b.size < n {
		n = b.size
	}
	for i := 0; i < n; i++ {
		if c := cmpFn(a.data[i], b.data[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.size, b.size)
}

// Less reports whether a orders strictly before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// LessEqual reports whether a orders before b or equals it.
func LessEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) <= 0
}

// Greater reports whether a orders strictly after b.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) > 0
}

// GreaterEqual reports whether a orders after b or equals it.
func GreaterEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) >= 0
}
