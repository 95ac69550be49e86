// Package stats provides a unified interface for collecting codec metrics.
package stats

// Metric names used throughout the library.
const (
	// Codec operation metrics.
	MetricCondense = "framespec_condense_total"
	MetricExpand   = "framespec_expand_total"

	// Volume metrics.
	MetricFramesIn  = "framespec_frames_in_total"
	MetricFramesOut = "framespec_frames_out_total"

	// Error metrics.
	MetricParseErrors = "framespec_parse_errors_total"
	MetricBatchErrors = "framespec_batch_errors_total"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
