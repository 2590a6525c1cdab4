package staticvec_test

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/staticvec"
)

// TestEdgeCases covers capacity and element-type corner cases
func TestEdgeCases(t *testing.T) {
	t.Run("ZeroCapacity", func(t *testing.T) {
		var v staticvec.Vector[int, [0]int]
		assert.Zero(t, v.Cap())
		assert.True(t, v.Empty())
		assert.True(t, v.Full())
		assert.ErrorIs(t, v.PushBack(1), staticvec.ErrCapacityExceeded)
		assert.ErrorIs(t, v.Insert(0, 1), staticvec.ErrCapacityExceeded)
		assert.NoError(t, v.Insert(0))
		assert.NoError(t, v.Resize(0))
		assert.False(t, v.PopBack())
		assert.Zero(t, v.DeleteFunc(func(int) bool { return true }))
		_, err := v.At(0)
		assert.ErrorIs(t, err, staticvec.ErrOutOfRange)
	})

	t.Run("ZeroSizeElements", func(t *testing.T) {
		var v staticvec.Vector[struct{}, [3]struct{}]
		for i := 0; i < 3; i++ {
			require.NoError(t, v.PushBack(struct{}{}))
		}
		assert.ErrorIs(t, v.PushBack(struct{}{}), staticvec.ErrCapacityExceeded)

		var w staticvec.Vector[struct{}, [1]struct{}]
		assert.True(t, v.Swap(&w))
		assert.Equal(t, 0, v.Len())
		assert.Equal(t, 1, w.Len())

		require.NoError(t, v.Assign(v.Slice()...))
		assert.Equal(t, 0, v.Len())
	})

	t.Run("InterfaceElements", func(t *testing.T) {
		first := errors.New("first")
		v, err := staticvec.New[error, [4]error](first, io.EOF, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, v.Len())

		assert.Equal(t, 1, staticvec.DeleteValue(&v, error(nil)))
		assert.Equal(t, []error{first, io.EOF}, v.Slice())
		assert.True(t, errors.Is(v.Back(), io.EOF))
	})

	t.Run("PointerElements", func(t *testing.T) {
		a, b := new(int), new(int)
		*a, *b = 1, 2
		v, err := staticvec.New[*int, [2]*int](a, b)
		require.NoError(t, err)

		*v.Front() = 10
		assert.Equal(t, 10, *a, "elements are copied shallowly")

		x, ok := v.TakeBack()
		require.True(t, ok)
		assert.Same(t, b, x)
	})

	t.Run("NestedVectors", func(t *testing.T) {
		type row = staticvec.Vector[int, [2]int]
		var grid staticvec.Vector[row, [3]row]

		r, err := staticvec.New[int, [2]int](1, 2)
		require.NoError(t, err)
		require.NoError(t, grid.PushBack(r))
		require.NoError(t, grid.PushBack(r))

		p, err := grid.Ref(1)
		require.NoError(t, err)
		require.NoError(t, p.Set(0, 9))

		assert.Equal(t, "[[1 2] [9 2]]", fmt.Sprint(grid))
	})

	t.Run("LargeCapacity", func(t *testing.T) {
		v := new(staticvec.Vector[byte, [1 << 16]byte])
		require.NoError(t, v.ResizeFill(1<<16, 0xff))
		assert.True(t, v.Full())
		assert.ErrorIs(t, v.PushBack(0), staticvec.ErrCapacityExceeded)
		require.NoError(t, v.EraseRange(0, 1<<15))
		assert.Equal(t, 1<<15, v.Len())
	})

	t.Run("ExtremeIndices", func(t *testing.T) {
		v, err := staticvec.New[int, [4]int](1, 2)
		require.NoError(t, err)

		for _, pos := range []int{math.MinInt, -1, 2, math.MaxInt} {
			_, err := v.At(pos)
			assert.ErrorIs(t, err, staticvec.ErrOutOfRange)
			assert.ErrorIs(t, v.Erase(pos), staticvec.ErrOutOfRange)
		}
		assert.ErrorIs(t, v.Insert(math.MaxInt, 1), staticvec.ErrOutOfRange)
		assert.ErrorIs(t, v.InsertN(0, math.MaxInt, 1), staticvec.ErrCapacityExceeded)
		assert.ErrorIs(t, v.Reserve(math.MaxInt), staticvec.ErrCapacityExceeded)
		assert.Equal(t, []int{1, 2}, v.Slice())
	})
}

// TestValueSemantics checks that vectors never share storage
func TestValueSemantics(t *testing.T) {
	type holder struct {
		Tags staticvec.Vector[string, [4]string]
	}

	a := holder{}
	require.NoError(t, a.Tags.PushBack("x"))

	b := a
	require.NoError(t, b.Tags.PushBack("y"))
	require.NoError(t, a.Tags.Set(0, "z"))

	assert.Equal(t, []string{"z"}, a.Tags.Slice())
	assert.Equal(t, []string{"x", "y"}, b.Tags.Slice())
}

// TestBoundaryConditions walks a vector through every length
func TestBoundaryConditions(t *testing.T) {
	var v staticvec.Vector[int, [8]int]

	for n := 0; n <= 8; n++ {
		require.NoError(t, v.Resize(n))
		assert.Equal(t, n, v.Len())
		assert.Equal(t, n == 8, v.Full())
		assert.InDelta(t, float64(n)/8, v.Utilization(), 1e-9)
	}
	assert.ErrorIs(t, v.Resize(9), staticvec.ErrCapacityExceeded)

	for n := 8; n > 0; n-- {
		require.True(t, v.PopBack())
	}
	assert.True(t, v.Empty())
}

// TestConcurrencyStress hammers a SafeVector from many goroutines
func TestConcurrencyStress(t *testing.T) {
	const (
		workers    = 16
		iterations = 500
	)
	var s staticvec.SafeVector[int, [16]int]
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				switch i % 4 {
				case 0:
					_ = s.PushBack(i)
				case 1:
					_ = s.Insert(0, i)
				case 2:
					_ = s.Erase(0)
				case 3:
					s.PopBack()
				}
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, s.Len(), 16)
	assert.Len(t, s.Snapshot(), s.Len())
}
