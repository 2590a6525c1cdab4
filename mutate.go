package staticvec

import (
	"fmt"
	"iter"
)

// Assign replaces the contents with values.
// values may be a sub-slice of v's own live region.
func (v *Vector[T, S]) Assign(values ...T) error {
	s := v.slots()
	if len(values) > len(s) {
		return capacityError(len(values), len(s))
	}
	if overlaps(s, values) {
		v.assignFromSelf(s, offsetIn(s, values), len(values))
		return nil
	}
	n := len(values)
	overlap := min(n, v.length)
	for i := 0; i < overlap; i++ {
		replace(s, i, values[i])
	}
	for i := overlap; i < n; i++ {
		construct(s, i, values[i])
	}
	for i := n; i < v.length; i++ {
		destroy(s, i)
	}
	v.length = n
	return nil
}

// assignFromSelf keeps the n slots starting at off and drops the rest.
// Kept elements are relocated, not copied, so each still has one owner.
func (v *Vector[T, S]) assignFromSelf(s []T, off, n int) {
	for i := 0; i < min(off, v.length); i++ {
		destroy(s, i)
	}
	for i := off + n; i < v.length; i++ {
		destroy(s, i)
	}
	if off > 0 {
		for i := 0; i < n; i++ {
			relocate(s, i, s, off+i)
		}
	}
	v.length = n
}

// AssignN replaces the contents with n copies of value.
func (v *Vector[T, S]) AssignN(n int, value T) error {
	if n < 0 {
		return countError(n)
	}
	s := v.slots()
	if n > len(s) {
		return capacityError(n, len(s))
	}
	overlap := min(n, v.length)
	for i := 0; i < overlap; i++ {
		replace(s, i, value)
	}
	for i := overlap; i < n; i++ {
		construct(s, i, value)
	}
	for i := n; i < v.length; i++ {
		destroy(s, i)
	}
	v.length = n
	return nil
}

// AssignSeq replaces the contents with the values yielded by seq, which is
// consumed once and must not read from v. If seq yields more values than
// fit, the previous contents are restored and ErrCapacityExceeded is
// returned. A panic inside seq also restores them.
func (v *Vector[T, S]) AssignSeq(seq iter.Seq[T]) error {
	backup := v.storage
	s := v.slots()
	old := slotsOf[T](&backup, len(s))

	committed := false
	defer func() {
		if !committed {
			v.storage = backup
		}
	}()

	n := 0
	for x := range seq {
		if n == len(s) {
			return fmt.Errorf("%w: sequence longer than capacity %d", ErrCapacityExceeded, len(s))
		}
		s[n] = x
		n++
	}

	// The previous elements now only survive in backup.
	for i := 0; i < v.length; i++ {
		release(&old[i])
	}
	clear(s[n:])
	v.length = n
	committed = true
	return nil
}

// Insert inserts values at pos, shifting the tail back.
// pos must be in [0, Len()]. values may alias v's storage.
func (v *Vector[T, S]) Insert(pos int, values ...T) error {
	k := len(values)
	if err := v.checkInsert(pos, k); err != nil {
		return err
	}
	if k == 0 {
		return nil
	}
	s := v.slots()
	if overlaps(s, values) {
		backup := v.storage
		off := offsetIn(s, values)
		values = slotsOf[T](&backup, len(s))[off : off+k]
		v.openGap(s, pos, k)
		copy(s[pos:pos+k], values)
	} else {
		v.openGap(s, pos, k)
		for i, x := range values {
			construct(s, pos+i, x)
		}
	}
	v.length += k
	return nil
}

// InsertN inserts n copies of value at pos.
func (v *Vector[T, S]) InsertN(pos, n int, value T) error {
	if err := v.checkInsert(pos, n); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	s := v.slots()
	v.openGap(s, pos, n)
	for i := pos; i < pos+n; i++ {
		construct(s, i, value)
	}
	v.length += n
	return nil
}

// InsertSeq inserts the values yielded by seq at pos and returns how many
// were inserted. Values are staged in the free tail, so a sequence that
// does not fit leaves the vector unchanged and returns ErrCapacityExceeded.
func (v *Vector[T, S]) InsertSeq(pos int, seq iter.Seq[T]) (int, error) {
	if pos < 0 || pos > v.length {
		return 0, indexError(pos, v.length)
	}
	s := v.slots()
	end := v.length

	committed := false
	defer func() {
		if !committed {
			clear(s[v.length:end])
		}
	}()

	for x := range seq {
		if end == len(s) {
			return 0, fmt.Errorf("%w: sequence longer than %d free slots", ErrCapacityExceeded, len(s)-v.length)
		}
		construct(s, end, x)
		end++
	}

	k := end - v.length
	rotateLeft(s[pos:end], v.length-pos)
	v.length = end
	committed = true
	return k, nil
}

// Emplace constructs a new element at pos in place. init receives a pointer
// to a zeroed slot; if it returns an error the slot is rolled back and the
// error is returned wrapped. The pointer must not be retained.
func (v *Vector[T, S]) Emplace(pos int, init func(*T) error) error {
	if err := v.checkInsert(pos, 1); err != nil {
		return err
	}
	s := v.slots()
	end := v.length

	committed := false
	defer func() {
		if !committed {
			vacate(s, end)
		}
	}()

	if err := init(&s[end]); err != nil {
		return fmt.Errorf("staticvec: emplace at %d: %w", pos, err)
	}
	rotateLeft(s[pos:end+1], end-pos)
	v.length++
	committed = true
	return nil
}

// EmplaceBack constructs a new element at the back in place.
func (v *Vector[T, S]) EmplaceBack(init func(*T) error) error {
	return v.Emplace(v.length, init)
}

// PushBack appends value. Returns ErrCapacityExceeded if the vector is full.
func (v *Vector[T, S]) PushBack(value T) error {
	s := v.slots()
	if v.length == len(s) {
		return capacityError(v.length+1, len(s))
	}
	construct(s, v.length, value)
	v.length++
	return nil
}

// PopBack destroys the last element. Returns false if the vector is empty.
func (v *Vector[T, S]) PopBack() bool {
	if v.length == 0 {
		return false
	}
	destroy(v.slots(), v.length-1)
	v.length--
	return true
}

// TakeBack removes the last element and hands it to the caller, who now
// owns it. Destroy is not called.
func (v *Vector[T, S]) TakeBack() (T, bool) {
	if v.length == 0 {
		var zero T
		return zero, false
	}
	s := v.slots()
	x := s[v.length-1]
	vacate(s, v.length-1)
	v.length--
	return x, true
}

// Erase removes the element at pos.
func (v *Vector[T, S]) Erase(pos int) error {
	if err := v.checkIndex(pos); err != nil {
		return err
	}
	return v.EraseRange(pos, pos+1)
}

// EraseRange removes the elements in [first, last). An empty range is a
// no-op.
func (v *Vector[T, S]) EraseRange(first, last int) error {
	if first < 0 || first > last || last > v.length {
		return rangeError(first, last, v.length)
	}
	k := last - first
	if k == 0 {
		return nil
	}
	s := v.slots()
	for i := first; i < last; i++ {
		destroy(s, i)
	}
	for i := last; i < v.length; i++ {
		relocate(s, i-k, s, i)
	}
	v.length -= k
	return nil
}

// DeleteFunc removes every element for which del returns true and reports
// how many were removed. Removed elements are destroyed; the rest keep
// their order.
func (v *Vector[T, S]) DeleteFunc(del func(T) bool) int {
	s := v.slots()
	n := v.length
	w, r := 0, 0
	defer func() {
		// Only does work when del panicked: keep the live region dense.
		for ; r < n; r++ {
			if w != r {
				relocate(s, w, s, r)
			}
			w++
		}
		v.length = w
	}()
	for ; r < n; r++ {
		if del(s[r]) {
			destroy(s, r)
			continue
		}
		if w != r {
			relocate(s, w, s, r)
		}
		w++
	}
	return n - w
}

// DeleteValue removes every element equal to value and reports how many
// were removed.
func DeleteValue[T comparable, S any](v *Vector[T, S], value T) int {
	return v.DeleteFunc(func(x T) bool {
		return x == value
	})
}

// Resize sets the length to n. New slots hold the zero value; surplus
// elements are destroyed.
func (v *Vector[T, S]) Resize(n int) error {
	var zero T
	return v.ResizeFill(n, zero)
}

// ResizeFill sets the length to n, filling new slots with value.
func (v *Vector[T, S]) ResizeFill(n int, value T) error {
	if n < 0 {
		return countError(n)
	}
	s := v.slots()
	if n > len(s) {
		return capacityError(n, len(s))
	}
	for i := v.length; i < n; i++ {
		construct(s, i, value)
	}
	for i := n; i < v.length; i++ {
		destroy(s, i)
	}
	v.length = n
	return nil
}

// Clear destroys every element.
func (v *Vector[T, S]) Clear() {
	s := v.slots()
	for i := 0; i < v.length; i++ {
		destroy(s, i)
	}
	v.length = 0
}

// openGap relocates [pos, length) to [pos+k, length+k), back to front,
// leaving [pos, pos+k) vacant.
func (v *Vector[T, S]) openGap(s []T, pos, k int) {
	for i := v.length - 1; i >= pos; i-- {
		relocate(s, i+k, s, i)
	}
}

func (v *Vector[T, S]) checkInsert(pos, k int) error {
	if pos < 0 || pos > v.length {
		return indexError(pos, v.length)
	}
	if k < 0 {
		return countError(k)
	}
	if c := v.Cap(); k > c-v.length {
		return capacityError(v.length+k, c)
	}
	return nil
}
