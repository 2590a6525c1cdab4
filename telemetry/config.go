package telemetry

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ErrInvalidConfig is returned when the collector configuration is invalid.
	ErrInvalidConfig = errors.New("telemetry: invalid configuration")

	// ErrDuplicateName is returned when a source name is already tracked.
	ErrDuplicateName = errors.New("telemetry: source name already tracked")

	// ErrClosed is returned when a source is tracked on a closed collector.
	ErrClosed = errors.New("telemetry: collector closed")
)

// Config configures a Collector.
type Config struct {
	// Namespace is the metric namespace. Required.
	Namespace string

	// Subsystem is the metric subsystem. Required.
	Subsystem string

	// Registry receives the collector.
	// If nil, uses prometheus.DefaultRegisterer.
	Registry prometheus.Registerer

	// Logger receives debug and warning records.
	// If nil, uses slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns a configuration with the staticvec namespace.
func DefaultConfig() *Config {
	return &Config{
		Namespace: "staticvec",
		Subsystem: "vector",
	}
}

// Validate checks that the required fields are set.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if c.Namespace == "" {
		return fmt.Errorf("%w: namespace is required", ErrInvalidConfig)
	}
	if c.Subsystem == "" {
		return fmt.Errorf("%w: subsystem is required", ErrInvalidConfig)
	}
	return nil
}
