package staticvec

import (
	"bytes"
	"fmt"
	"reflect"
	"slices"
	"unsafe"
)

// Destroyer is implemented by element types that own something which has
// to be released when a Vector destroys the element. The method set of *T
// is checked, so both value and pointer receivers are found.
//
// Destroy runs exactly once for every element the vector destroys: on
// erase, shrink, clear, pop, overwrite and when a swap drops an element
// that does not fit. It never runs for elements that are relocated inside
// or between vectors, moved out with TakeBack, or rolled back after a
// failed call. Writing an element back into its own slot is not an
// overwrite and destroys nothing. On overwrite, Destroy runs on a copy of
// the old element taken just before its slot is reused.
type Destroyer interface {
	Destroy()
}

// capacityOf returns the array length of S. S must be [N]T.
func capacityOf[T, S any]() int {
	st := reflect.TypeFor[S]()
	if st.Kind() != reflect.Array || st.Elem() != reflect.TypeFor[T]() {
		panic(fmt.Sprintf("staticvec: storage type %v is not an array of %v", st, reflect.TypeFor[T]()))
	}
	return st.Len()
}

// slotCount returns the array length of S without reflection. It trusts
// that S is [N]T, so callers must have validated S with capacityOf first.
func slotCount[T, S any]() int {
	size := unsafe.Sizeof(*new(T))
	if size == 0 {
		return capacityOf[T, S]()
	}
	return int(unsafe.Sizeof(*new(S)) / size)
}

// slotsOf views the first n slots of the array behind p.
// Returns nil when n is zero.
func slotsOf[T, S any](p *S, n int) []T {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(p)), n)
}

// construct places value into the vacant slot i.
func construct[T any](s []T, i int, value T) {
	s[i] = value
}

// destroy ends the life of the element in slot i and leaves the slot vacant.
func destroy[T any](s []T, i int) {
	release(&s[i])
	var zero T
	s[i] = zero
}

// replace puts value into the live slot i and destroys the element it
// held. Writing an element back into its own slot, such as
// Set(i, Index(i)), leaves the slot untouched.
func replace[T any](s []T, i int, value T) {
	if sameElement(&s[i], &value) {
		return
	}
	old := s[i]
	s[i] = value
	release(&old)
}

// sameElement reports whether a and b hold bit-identical values.
func sameElement[T any](a, b *T) bool {
	n := unsafe.Sizeof(*a)
	if n == 0 {
		return false
	}
	x := unsafe.Slice((*byte)(unsafe.Pointer(a)), n)
	y := unsafe.Slice((*byte)(unsafe.Pointer(b)), n)
	return bytes.Equal(x, y)
}

// vacate clears slot i without running Destroy. Used for moved-from slots
// and for rolling back constructions that were never committed.
func vacate[T any](s []T, i int) {
	var zero T
	s[i] = zero
}

// relocate moves the element in src[si] into the vacant slot dst[di].
func relocate[T any](dst []T, di int, src []T, si int) {
	dst[di] = src[si]
	vacate(src, si)
}

func release[T any](p *T) {
	if d, ok := any(p).(Destroyer); ok {
		d.Destroy()
	}
}

// overlaps reports whether a and b share any memory.
func overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	size := unsafe.Sizeof(a[0])
	if size == 0 {
		return false
	}
	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return aStart < bStart+uintptr(len(b))*size && bStart < aStart+uintptr(len(a))*size
}

// offsetIn returns the slot index at which sub starts inside s.
// sub must overlap s and be element aligned with it.
func offsetIn[T any](s, sub []T) int {
	size := unsafe.Sizeof(s[0])
	start := uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	return int((uintptr(unsafe.Pointer(unsafe.SliceData(sub))) - start) / size)
}

// rotateLeft rotates s left by r positions.
func rotateLeft[T any](s []T, r int) {
	slices.Reverse(s[:r])
	slices.Reverse(s[r:])
	slices.Reverse(s)
}
