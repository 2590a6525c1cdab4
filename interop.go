package staticvec

// Sequence is the view shared by vectors of the same element type whatever
// their capacity. Every *Vector[T, S] implements it, which lets copy, move,
// swap and comparison work between different capacities.
//
// The interface is sealed: only vectors from this package satisfy it.
type Sequence[T any] interface {
	Len() int
	Cap() int
	Slice() []T

	slots() []T
	setLen(n int)
}

// Truncation policy: when the receiving side of a copy, move or swap has
// fewer slots than the other side has elements, the elements that do not
// fit are dropped (and destroyed, if they were owned by the losing side).
// Every operation that can drop elements reports it through its truncated
// result; it is never an error.

// CopyFrom replaces v's contents with copies of src's elements. Elements
// beyond v's capacity are skipped and truncated reports it. src is not
// modified. Copying a vector into itself is a no-op.
func (v *Vector[T, S]) CopyFrom(src Sequence[T]) (truncated bool) {
	if Sequence[T](v) == src {
		return false
	}
	s := v.slots()
	from := src.Slice()
	n := min(len(from), len(s))
	for i := 0; i < n; i++ {
		if i < v.length {
			replace(s, i, from[i])
			continue
		}
		construct(s, i, from[i])
	}
	for i := n; i < v.length; i++ {
		destroy(s, i)
	}
	v.length = n
	return len(from) > n
}

// MoveFrom moves src's elements into v by swapping the two. src ends up
// holding v's previous elements, truncated to src's capacity; truncated
// reports whether either side dropped elements.
func (v *Vector[T, S]) MoveFrom(src Sequence[T]) (truncated bool) {
	return swapSequences[T](v, src)
}

// Swap exchanges the contents of v and other. See the package Swap.
func (v *Vector[T, S]) Swap(other Sequence[T]) (truncated bool) {
	return swapSequences[T](v, other)
}

// Swap exchanges the contents of a and b, which may have different
// capacities. The first min(a.Len(), b.Len()) elements are swapped in
// place; the longer side's extra elements are relocated into the other
// side as far as its capacity allows and the rest are destroyed.
// truncated reports whether anything was destroyed. Swapping a sequence
// with itself is a no-op.
func Swap[T any](a, b Sequence[T]) (truncated bool) {
	return swapSequences(a, b)
}

// CopyOf returns a vector holding copies of src's elements, truncated to
// the capacity of S.
func CopyOf[T, S any](src Sequence[T]) (Vector[T, S], bool) {
	var v Vector[T, S]
	truncated := v.CopyFrom(src)
	return v, truncated
}

// MoveOf returns a vector holding src's elements and leaves src empty.
// Elements beyond the capacity of S are destroyed.
func MoveOf[T, S any](src Sequence[T]) (Vector[T, S], bool) {
	var v Vector[T, S]
	truncated := v.MoveFrom(src)
	return v, truncated
}

func swapSequences[T any](a, b Sequence[T]) bool {
	if a == b {
		return false
	}
	as, bs := a.slots(), b.slots()
	la, lb := a.Len(), b.Len()
	m := min(la, lb)
	for i := 0; i < m; i++ {
		as[i], bs[i] = bs[i], as[i]
	}
	switch {
	case la > lb:
		return spill(as, la, a, bs, b, m)
	case lb > la:
		return spill(bs, lb, b, as, a, m)
	}
	return false
}

// spill moves the donor's elements past the overlap m into the receiver,
// destroying those that do not fit, then fixes both lengths.
func spill[T any](ds []T, dl int, donor Sequence[T], rs []T, receiver Sequence[T], m int) bool {
	fit := min(dl, len(rs))
	for i := m; i < fit; i++ {
		relocate(rs, i, ds, i)
	}
	for i := fit; i < dl; i++ {
		destroy(ds, i)
	}
	donor.setLen(m)
	receiver.setLen(fit)
	return fit < dl
}
