package staticvec

import "sync"

// SafeVector is a mutex-protected wrapper around Vector for concurrent access.
// All operations are thread-safe but come with the overhead of mutex locking.
// The zero value is an empty vector ready for use. A SafeVector must not be
// copied after first use.
type SafeVector[T, S any] struct {
	mu sync.Mutex
	v  Vector[T, S]
}

// NewSafe creates a thread-safe vector holding values.
func NewSafe[T, S any](values ...T) (*SafeVector[T, S], error) {
	s := &SafeVector[T, S]{}
	if err := s.v.Assign(values...); err != nil {
		return nil, err
	}
	return s, nil
}

// Len thread-safely returns the number of live elements.
func (s *SafeVector[T, S]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Len()
}

// Cap returns the fixed capacity.
func (s *SafeVector[T, S]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Cap()
}

// At thread-safely returns the element at pos or ErrOutOfRange.
func (s *SafeVector[T, S]) At(pos int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.At(pos)
}

// Set thread-safely replaces the element at pos.
func (s *SafeVector[T, S]) Set(pos int, value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Set(pos, value)
}

// PushBack thread-safely appends value.
func (s *SafeVector[T, S]) PushBack(value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.PushBack(value)
}

// PopBack thread-safely destroys the last element.
func (s *SafeVector[T, S]) PopBack() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.PopBack()
}

// TakeBack thread-safely removes and returns the last element.
func (s *SafeVector[T, S]) TakeBack() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.TakeBack()
}

// Insert thread-safely inserts values at pos.
func (s *SafeVector[T, S]) Insert(pos int, values ...T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Insert(pos, values...)
}

// Erase thread-safely removes the element at pos.
func (s *SafeVector[T, S]) Erase(pos int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Erase(pos)
}

// Resize thread-safely sets the length to n.
func (s *SafeVector[T, S]) Resize(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Resize(n)
}

// Clear thread-safely destroys every element.
func (s *SafeVector[T, S]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Clear()
}

// Snapshot thread-safely returns a copy of the live elements.
// Returns nil if the vector is empty.
func (s *SafeVector[T, S]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.v.length == 0 {
		return nil
	}
	out := make([]T, s.v.length)
	copy(out, s.v.Slice())
	return out
}

// Do runs fn with exclusive access to the underlying vector, for updates
// that need several calls to be atomic. fn must not keep v after it
// returns.
func (s *SafeVector[T, S]) Do(fn func(v *Vector[T, S]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.v)
}
