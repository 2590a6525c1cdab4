package staticvec

import (
	"fmt"
	"iter"
)

// Vector is a fixed-capacity sequence whose elements live inline in a
// storage array of type S, which must be [N]T. N is the capacity.
//
// The zero value is an empty vector ready for use. Vector is a value type:
// copying it copies the storage, so two vectors never share slots. It is not
// safe for concurrent use; see SafeVector.
//
// Slots [0, Len()) hold live elements. Slots [Len(), Cap()) always hold the
// zero value of T.
type Vector[T, S any] struct {
	storage S
	length  int
}

// New returns a vector holding values.
// Returns ErrCapacityExceeded if there are more values than slots.
func New[T, S any](values ...T) (Vector[T, S], error) {
	var v Vector[T, S]
	if err := v.Assign(values...); err != nil {
		return Vector[T, S]{}, err
	}
	return v, nil
}

// NewFilled returns a vector holding n copies of value.
func NewFilled[T, S any](n int, value T) (Vector[T, S], error) {
	var v Vector[T, S]
	if err := v.AssignN(n, value); err != nil {
		return Vector[T, S]{}, err
	}
	return v, nil
}

// NewSized returns a vector holding n zero values.
func NewSized[T, S any](n int) (Vector[T, S], error) {
	var v Vector[T, S]
	if err := v.Resize(n); err != nil {
		return Vector[T, S]{}, err
	}
	return v, nil
}

// Collect returns a vector holding the values yielded by seq.
// seq is consumed once; if it yields more values than fit, Collect stops
// pulling and returns ErrCapacityExceeded.
func Collect[T, S any](seq iter.Seq[T]) (Vector[T, S], error) {
	var v Vector[T, S]
	if err := v.AssignSeq(seq); err != nil {
		return Vector[T, S]{}, err
	}
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T, S]) Len() int {
	return v.length
}

// Cap returns the fixed capacity, the length of S.
func (v *Vector[T, S]) Cap() int {
	return v.capacity()
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T, S]) Empty() bool {
	return v.length == 0
}

// Full reports whether every slot is live.
func (v *Vector[T, S]) Full() bool {
	return v.length == v.capacity()
}

// Reserve checks that n elements would fit. Storage never moves, so there is
// nothing to reserve; it only reports ErrCapacityExceeded early.
func (v *Vector[T, S]) Reserve(n int) error {
	if n < 0 {
		return countError(n)
	}
	if c := v.Cap(); n > c {
		return capacityError(n, c)
	}
	return nil
}

// Slice returns the live region as a slice backed by the vector's storage.
// The slice is invalidated by any call that moves elements.
func (v *Vector[T, S]) Slice() []T {
	return v.slots()[:v.length]
}

// At returns the element at pos or ErrOutOfRange.
func (v *Vector[T, S]) At(pos int) (T, error) {
	if err := v.checkIndex(pos); err != nil {
		var zero T
		return zero, err
	}
	return v.slots()[pos], nil
}

// Ref returns a pointer to the element at pos or ErrOutOfRange.
// The pointer is only valid until the next call that moves elements.
func (v *Vector[T, S]) Ref(pos int) (*T, error) {
	if err := v.checkIndex(pos); err != nil {
		return nil, err
	}
	return &v.slots()[pos], nil
}

// Set replaces the element at pos, destroying the previous one. Setting an
// element to itself is a no-op.
func (v *Vector[T, S]) Set(pos int, value T) error {
	if err := v.checkIndex(pos); err != nil {
		return err
	}
	replace(v.slots(), pos, value)
	return nil
}

// Index returns the element at pos without a length check beyond the
// slice bounds check. Reading past Len() panics.
func (v *Vector[T, S]) Index(pos int) T {
	return v.Slice()[pos]
}

// Front returns the first element. Panics if the vector is empty.
func (v *Vector[T, S]) Front() T {
	return v.Slice()[0]
}

// Back returns the last element. Panics if the vector is empty.
func (v *Vector[T, S]) Back() T {
	return v.Slice()[v.length-1]
}

// Clone returns a copy of v with the same capacity.
func (v *Vector[T, S]) Clone() Vector[T, S] {
	return *v
}

// All returns an iterator over index/element pairs in order.
func (v *Vector[T, S]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.Slice() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (v *Vector[T, S]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.Slice() {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs from the back.
func (v *Vector[T, S]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := v.Slice()
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}

// Format implements fmt.Formatter by formatting the live region.
func (v Vector[T, S]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), v.Slice())
}

func (v *Vector[T, S]) slots() []T {
	return slotsOf[T](&v.storage, v.capacity())
}

// capacity validates S while the vector is empty. A vector only becomes
// non-empty through a call that already validated S, so after that the
// slot count comes from the type sizes alone.
func (v *Vector[T, S]) capacity() int {
	if v.length == 0 {
		return capacityOf[T, S]()
	}
	return slotCount[T, S]()
}

func (v *Vector[T, S]) setLen(n int) {
	v.length = n
}

func (v *Vector[T, S]) checkIndex(pos int) error {
	if pos < 0 || pos >= v.length {
		return indexError(pos, v.length)
	}
	return nil
}
