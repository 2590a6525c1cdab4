package staticvec

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b hold the same number of elements and the
// elements are pairwise equal. Capacities are not compared.
func Equal[T comparable](a, b Sequence[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T, U any](a Sequence[T], b Sequence[U], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare compares the live elements of a and b lexicographically.
// The result is 0 if a == b, -1 if a < b, and +1 if a > b. A vector that
// is a strict prefix of the other is less.
func Compare[T cmp.Ordered](a, b Sequence[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// CompareFunc is like Compare but uses cmp on each pair of elements.
func CompareFunc[T, U any](a Sequence[T], b Sequence[U], cmp func(T, U) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), cmp)
}

// Less reports whether a orders before b.
func Less[T cmp.Ordered](a, b Sequence[T]) bool {
	return Compare(a, b) < 0
}
