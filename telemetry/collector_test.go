package telemetry

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/pavanmanishd/staticvec"
)

func newTestCollector(t *testing.T) (*Collector, *prometheus.Registry, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	reg := prometheus.NewPedanticRegistry()
	cfg := DefaultConfig()
	cfg.Registry = reg
	cfg.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c, err := NewCollector(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, reg, &buf
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"nil", nil, true},
		{"no namespace", &Config{Subsystem: "vector"}, true},
		{"no subsystem", &Config{Namespace: "app"}, true},
		{"custom", &Config{Namespace: "app", Subsystem: "buffers"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewCollectorRejectsInvalidConfig(t *testing.T) {
	c, err := NewCollector(&Config{Namespace: "app"})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Nil(t, c)
}

func TestCollectorGauges(t *testing.T) {
	c, reg, _ := newTestCollector(t)

	small, err := staticvec.NewSafe[int, [4]int](1)
	require.NoError(t, err)
	large, err := staticvec.NewSafe[string, [8]string]("a", "b", "c", "d")
	require.NoError(t, err)

	require.NoError(t, c.Track("small", small))
	require.NoError(t, c.Track("large", large))

	expected := `
# HELP staticvec_vector_capacity Fixed capacity of the vector.
# TYPE staticvec_vector_capacity gauge
staticvec_vector_capacity{vector="large"} 8
staticvec_vector_capacity{vector="small"} 4
# HELP staticvec_vector_length Number of live elements in the vector.
# TYPE staticvec_vector_length gauge
staticvec_vector_length{vector="large"} 4
staticvec_vector_length{vector="small"} 1
# HELP staticvec_vector_utilization_ratio Ratio of live elements to capacity.
# TYPE staticvec_vector_utilization_ratio gauge
staticvec_vector_utilization_ratio{vector="large"} 0.5
staticvec_vector_utilization_ratio{vector="small"} 0.25
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected)))

	// Gauges follow the live vector.
	require.NoError(t, small.PushBack(2))
	expected = `
# HELP staticvec_vector_length Number of live elements in the vector.
# TYPE staticvec_vector_length gauge
staticvec_vector_length{vector="large"} 4
staticvec_vector_length{vector="small"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "staticvec_vector_length"))
}

func TestCollectorTrackAndUntrack(t *testing.T) {
	c, _, logs := newTestCollector(t)
	var v staticvec.SafeVector[int, [2]int]

	require.NoError(t, c.Track("b", &v))
	require.NoError(t, c.Track("a", &v))
	assert.Equal(t, []string{"a", "b"}, c.Names())
	assert.Equal(t, 6, testutil.CollectAndCount(c))

	err := c.Track("a", &v)
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Contains(t, logs.String(), "source already tracked")

	assert.ErrorIs(t, c.Track("", &v), ErrInvalidConfig)
	assert.ErrorIs(t, c.Track("c", nil), ErrInvalidConfig)

	assert.True(t, c.Untrack("a"))
	assert.False(t, c.Untrack("a"))
	assert.Equal(t, []string{"b"}, c.Names())
	assert.Equal(t, 1, testutil.CollectAndCount(c, "staticvec_vector_length"))
}

func TestNewCollectorReusesRegistered(t *testing.T) {
	c, reg, _ := newTestCollector(t)

	again, err := NewCollector(&Config{Namespace: "staticvec", Subsystem: "vector", Registry: reg})
	require.NoError(t, err)
	assert.Same(t, c, again)

	other, err := NewCollector(&Config{Namespace: "staticvec", Subsystem: "queue", Registry: reg})
	require.NoError(t, err)
	assert.NotSame(t, c, other)
	require.NoError(t, other.Close())
}

func TestCollectorClose(t *testing.T) {
	c, reg, _ := newTestCollector(t)
	var v staticvec.SafeVector[int, [2]int]
	require.NoError(t, c.Track("v", &v))

	require.NoError(t, c.Close())
	require.NoError(t, c.Close(), "close is idempotent")
	assert.Empty(t, c.Names())

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Zero(t, n)

	// The registry accepts a fresh collector after close.
	cfg := DefaultConfig()
	cfg.Registry = reg
	fresh, err := NewCollector(cfg)
	require.NoError(t, err)
	assert.NotSame(t, c, fresh)
	require.NoError(t, fresh.Close())
}

func TestTrackAfterClose(t *testing.T) {
	c, _, logs := newTestCollector(t)
	require.NoError(t, c.Close())

	var v staticvec.SafeVector[int, [2]int]
	err := c.Track("late", &v)
	assert.ErrorIs(t, err, ErrClosed)
	assert.Empty(t, c.Names())
	assert.Contains(t, logs.String(), "track on closed collector")
}

func TestPlainVectorIsNotASource(t *testing.T) {
	var plain staticvec.Vector[int, [4]int]
	_, ok := any(&plain).(Source)
	assert.False(t, ok, "an unsynchronized vector must not be trackable")

	var safe staticvec.SafeVector[int, [4]int]
	_, ok = any(&safe).(Source)
	assert.True(t, ok)
}

// Run with -race: scrapes read every source while its owner mutates it.
func TestScrapeWhileMutating(t *testing.T) {
	c, reg, _ := newTestCollector(t)
	var v staticvec.SafeVector[int, [64]int]
	require.NoError(t, c.Track("busy", &v))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for ctx.Err() == nil {
			if _, err := reg.Gather(); err != nil {
				return err
			}
			testutil.CollectAndCount(c)
		}
		return nil
	})
	g.Go(func() error {
		defer cancel()
		for i := 0; i < 2000; i++ {
			if err := v.PushBack(i); err != nil {
				v.Clear()
			}
			if i%3 == 0 {
				v.PopBack()
			}
		}
		return nil
	})
	require.NoError(t, g.Wait())
	assert.LessOrEqual(t, v.Len(), 64)
}
