package telemetry

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pavanmanishd/staticvec"
)

// Source is a vector whose metrics can be read from the scraping goroutine
// while other goroutines mutate it. *staticvec.SafeVector implements it.
// A plain *staticvec.Vector does not and cannot be tracked.
type Source = staticvec.SharedMetrics

// Collector exports the metrics of tracked sources.
// It is safe for concurrent use.
type Collector struct {
	mu      sync.RWMutex
	sources map[string]Source
	closed  bool

	namespace string
	subsystem string
	registry  prometheus.Registerer
	logger    *slog.Logger

	lengthDesc      *prometheus.Desc
	capacityDesc    *prometheus.Desc
	utilizationDesc *prometheus.Desc
}

// NewCollector creates a collector and registers it with cfg.Registry.
//
// If an identically described collector is already registered there, that
// collector is returned instead so callers share one set of gauges.
func NewCollector(cfg *Config) (*Collector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	labels := []string{"vector"}
	c := &Collector{
		sources:   make(map[string]Source),
		namespace: cfg.Namespace,
		subsystem: cfg.Subsystem,
		registry:  registry,
		logger:    logger.With("component", "staticvec_telemetry"),
		lengthDesc: prometheus.NewDesc(
			prometheus.BuildFQName(cfg.Namespace, cfg.Subsystem, "length"),
			"Number of live elements in the vector.",
			labels, nil,
		),
		capacityDesc: prometheus.NewDesc(
			prometheus.BuildFQName(cfg.Namespace, cfg.Subsystem, "capacity"),
			"Fixed capacity of the vector.",
			labels, nil,
		),
		utilizationDesc: prometheus.NewDesc(
			prometheus.BuildFQName(cfg.Namespace, cfg.Subsystem, "utilization_ratio"),
			"Ratio of live elements to capacity.",
			labels, nil,
		),
	}

	if err := registry.Register(c); err != nil {
		var alreadyErr prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyErr) {
			if existing, ok := alreadyErr.ExistingCollector.(*Collector); ok {
				c.logger.Debug("reusing registered collector",
					"namespace", cfg.Namespace, "subsystem", cfg.Subsystem)
				return existing, nil
			}
		}
		return nil, fmt.Errorf("telemetry: register collector: %w", err)
	}
	return c, nil
}

// Track starts exporting src under name.
// Returns ErrDuplicateName if name is already tracked and ErrClosed after
// Close.
func (c *Collector) Track(name string, src Source) error {
	if name == "" {
		return fmt.Errorf("%w: empty source name", ErrInvalidConfig)
	}
	if src == nil {
		return fmt.Errorf("%w: nil source %q", ErrInvalidConfig, name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		c.logger.Warn("track on closed collector", "vector", name)
		return fmt.Errorf("%w: cannot track %q", ErrClosed, name)
	}
	if _, ok := c.sources[name]; ok {
		c.logger.Warn("source already tracked", "vector", name)
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	c.sources[name] = src
	c.logger.Debug("tracking source", "vector", name, "sources", len(c.sources))
	return nil
}

// Untrack stops exporting name. Reports whether it was tracked.
func (c *Collector) Untrack(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.sources[name]; !ok {
		return false
	}
	delete(c.sources, name)
	c.logger.Debug("untracked source", "vector", name, "sources", len(c.sources))
	return true
}

// Names returns the tracked source names in sorted order.
func (c *Collector) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Sorted(maps.Keys(c.sources))
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.lengthDesc
	ch <- c.capacityDesc
	ch <- c.utilizationDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.each(func(name string, m staticvec.VectorMetrics) {
		ch <- prometheus.MustNewConstMetric(c.lengthDesc, prometheus.GaugeValue, float64(m.Len), name)
		ch <- prometheus.MustNewConstMetric(c.capacityDesc, prometheus.GaugeValue, float64(m.Cap), name)
		ch <- prometheus.MustNewConstMetric(c.utilizationDesc, prometheus.GaugeValue, m.Utilization, name)
	})
}

// Close unregisters the collector and drops all sources. Idempotent.
func (c *Collector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.sources = make(map[string]Source)
	if !c.registry.Unregister(c) {
		c.logger.Debug("collector was not registered")
	}
	return nil
}

// each calls fn with a metrics snapshot of every tracked source.
func (c *Collector) each(fn func(name string, m staticvec.VectorMetrics)) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for name, src := range c.sources {
		fn(name, src.Metrics())
	}
}
