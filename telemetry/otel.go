package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/pavanmanishd/staticvec"
)

// Observe publishes the tracked sources as OpenTelemetry observable gauges
// on meter. Instrument names are <namespace>.<subsystem>.length, .capacity
// and .utilization, with a "vector" attribute per source. Unregister the
// returned registration to stop observing.
func (c *Collector) Observe(meter metric.Meter) (metric.Registration, error) {
	length, err := meter.Int64ObservableGauge(
		c.instrumentName("length"),
		metric.WithDescription("Number of live elements in the vector."),
		metric.WithUnit("{element}"),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: length gauge: %w", err)
	}

	capacity, err := meter.Int64ObservableGauge(
		c.instrumentName("capacity"),
		metric.WithDescription("Fixed capacity of the vector."),
		metric.WithUnit("{element}"),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: capacity gauge: %w", err)
	}

	utilization, err := meter.Float64ObservableGauge(
		c.instrumentName("utilization"),
		metric.WithDescription("Ratio of live elements to capacity."),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: utilization gauge: %w", err)
	}

	reg, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		c.each(func(name string, m staticvec.VectorMetrics) {
			attrs := metric.WithAttributes(attribute.String("vector", name))
			o.ObserveInt64(length, int64(m.Len), attrs)
			o.ObserveInt64(capacity, int64(m.Cap), attrs)
			o.ObserveFloat64(utilization, m.Utilization, attrs)
		})
		return nil
	}, length, capacity, utilization)
	if err != nil {
		return nil, fmt.Errorf("telemetry: register callback: %w", err)
	}
	c.logger.Debug("observing sources with meter", "namespace", c.namespace, "subsystem", c.subsystem)
	return reg, nil
}

func (c *Collector) instrumentName(name string) string {
	return c.namespace + "." + c.subsystem + "." + name
}
