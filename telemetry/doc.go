// Package telemetry exports the fill level of staticvec vectors.
//
// A Collector tracks named *staticvec.SafeVector sources and reports three
// gauges per source, labelled with the source name:
//
//	<namespace>_<subsystem>_length
//	<namespace>_<subsystem>_capacity
//	<namespace>_<subsystem>_utilization_ratio
//
// The Collector is a prometheus.Collector and registers itself on creation.
// Observe publishes the same gauges through an OpenTelemetry meter.
//
// Sources are read on every scrape from the scraping goroutine. Only types
// that implement staticvec.SharedMetrics can be tracked, so an unsynchronized
// *staticvec.Vector is rejected at compile time.
package telemetry
