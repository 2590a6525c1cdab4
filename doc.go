// Package staticvec implements a fixed-capacity vector whose elements live
// inline, with no heap allocation for its elements.
//
// # Overview
//
// A Vector behaves like a slice that can never grow past a capacity chosen
// at compile time. The capacity is the length of the storage array given as
// the second type parameter:
//
//	var v staticvec.Vector[int, [8]int] // empty, capacity 8, no allocation
//
// This is particularly useful for:
//
//   - Hot paths that must not allocate
//   - Bounded buffers embedded in other structs
//   - Real-time code where the worst-case footprint must be known up front
//
// # Basic Usage
//
//	v, err := staticvec.New[int, [4]int](1, 2, 3)
//	if err != nil {
//		return err
//	}
//	_ = v.PushBack(4)         // ok
//	err = v.PushBack(5)       // ErrCapacityExceeded, v unchanged
//	x, err := v.At(10)        // ErrOutOfRange
//	_ = v.Insert(1, 9)        // shift and insert
//	_ = v.EraseRange(0, 2)    // erase a range
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Failure Atomicity
//
// Every call that fails leaves the vector exactly as it was. Capacity and
// index problems are reported before anything is touched; calls that
// consume an iterator or run a callback roll back on error or panic.
//
// # Element Lifetimes
//
// Slots past Len() always hold the zero value. Element types that own
// resources can implement Destroyer; Destroy then runs exactly once for
// every element the vector destroys (erase, shrink, clear, overwrite,
// pop, dropped on swap). Elements that are relocated or handed back to the
// caller with TakeBack are not destroyed.
//
// # Different Capacities
//
// Vector[int, [4]int] and Vector[int, [16]int] are different types. Both
// satisfy Sequence[int], and copy, move, swap and comparison accept any
// Sequence of the same element type:
//
//	var small staticvec.Vector[int, [2]int]
//	truncated := small.CopyFrom(&big) // keeps big's first two elements
//
// Elements that do not fit the receiving vector are dropped. This is the
// truncation policy; it is never an error, and every operation that can
// drop elements reports it through its truncated result.
//
// # Thread Safety
//
// The basic Vector type is not thread-safe. For concurrent access, use
// SafeVector:
//
//	var ids staticvec.SafeVector[int, [64]int]
//	_ = ids.PushBack(42)
//	_ = ids.Do(func(v *staticvec.Vector[int, [64]int]) error {
//		return v.Insert(0, 7)
//	})
//
// # Metrics and Monitoring
//
// Metrics returns a snapshot of the vector's fill level:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Footprint: %d bytes\n", m.FootprintBytes)
//
// The telemetry subpackage exports the same numbers for SafeVector values
// to Prometheus and OpenTelemetry. A plain Vector is not accepted there,
// since scrapes run on another goroutine.
package staticvec
