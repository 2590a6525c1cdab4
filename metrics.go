package staticvec

import "unsafe"

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 for a zero-capacity vector.
func (v *Vector[T, S]) Utilization() float64 {
	c := v.Cap()
	if c == 0 {
		return 0
	}
	return float64(v.length) / float64(c)
}

// Footprint returns the size in bytes of the vector value, storage
// included. It does not change over the vector's lifetime.
func (v *Vector[T, S]) Footprint() int {
	return int(unsafe.Sizeof(*v))
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T, S]) Metrics() VectorMetrics {
	var zero T
	c := v.Cap()
	return VectorMetrics{
		Len:            v.length,
		Cap:            c,
		Free:           c - v.length,
		Utilization:    v.Utilization(),
		SlotBytes:      int(unsafe.Sizeof(zero)),
		FootprintBytes: v.Footprint(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len            int     // Live elements
	Cap            int     // Total slots
	Free           int     // Slots still available
	Utilization    float64 // Ratio of live elements to slots (0.0-1.0)
	SlotBytes      int     // Size of one slot
	FootprintBytes int     // Size of the whole vector value
}

// SharedMetrics is a metrics source that may be read from any goroutine
// while its owner mutates it. SafeVector implements it; a plain Vector does
// not, because its Metrics is an unsynchronized read.
type SharedMetrics interface {
	Metrics() VectorMetrics
	sharedMetrics()
}

// Thread-safe metrics for SafeVector

func (s *SafeVector[T, S]) sharedMetrics() {}

// Utilization thread-safely returns the ratio of live elements to capacity.
func (s *SafeVector[T, S]) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Utilization()
}

// Metrics thread-safely returns a snapshot of vector statistics.
func (s *SafeVector[T, S]) Metrics() VectorMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Metrics()
}
