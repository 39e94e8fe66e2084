package ports

import (
	"context"
	"time"
)

// RunInfo describes one evaluation run for observers.
type RunInfo struct {
	// Final is the name of the final metric being evaluated.
	Final string

	// Choices is the number of choices in the run.
	Choices int

	// Nodes is the number of graph nodes (measures plus metrics).
	Nodes int
}

// RunObserver receives lifecycle notifications for evaluation runs.
// Implementations integrate tracing or metrics backends; the engine
// works identically with a nil observer.
type RunObserver interface {
	// RunStarted is called before evaluation begins. The returned
	// context is threaded through the run, allowing implementations to
	// attach spans.
	RunStarted(ctx context.Context, info RunInfo) context.Context

	// RunFinished is called after evaluation ends, successfully or not.
	RunFinished(ctx context.Context, info RunInfo, elapsed time.Duration, err error)
}

// MetricsCollector defines the interface for collecting operational
// metrics. Implementations should integrate with observability platforms
// like Prometheus, OpenTelemetry, or custom monitoring solutions.
type MetricsCollector interface {
	// RecordLatency records the execution time of an operation.
	// The labels map provides additional context for the metric.
	RecordLatency(operation string, duration time.Duration, labels map[string]string)

	// RecordCounter increments a counter metric.
	// This is useful for tracking events like runs, errors, etc.
	RecordCounter(metric string, value float64, labels map[string]string)

	// RecordGauge sets the current value of a gauge metric.
	RecordGauge(metric string, value float64, labels map[string]string)

	// RecordHistogram records a value in a histogram.
	// This is useful for tracking distributions like scores or run sizes.
	RecordHistogram(metric string, value float64, labels map[string]string)
}
