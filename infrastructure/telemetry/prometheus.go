// Package telemetry provides observability integrations for the
// decision-ranking engine: Prometheus metrics and OpenTelemetry tracing
// around evaluation runs. The engine itself only ever sees the
// ports.RunObserver and ports.MetricsCollector interfaces.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/kriterhq/kriter/internal/ports"
)

// Compile-time verification that PrometheusMetrics implements MetricsCollector.
var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)

// PrometheusMetrics implements the MetricsCollector interface using
// Prometheus, providing monitoring of evaluation run volume, latency,
// and size.
type PrometheusMetrics struct {
	runLatency   *prometheus.HistogramVec
	runCounter   *prometheus.CounterVec
	runSizes     *prometheus.HistogramVec
	systemGauges *prometheus.GaugeVec
}

// NewPrometheusMetrics creates a PrometheusMetrics instance and
// registers all metrics in the given registerer, or the global registry
// when reg is nil.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		runLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kriter_run_duration_seconds",
				Help:    "Execution time of evaluation runs and related operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "final"},
		),
		runCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kriter_runs_total",
				Help: "Total number of evaluation runs by outcome.",
			},
			[]string{"operation", "status", "final"},
		),
		runSizes: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kriter_run_size",
				Help:    "Distribution of run sizes (choices, nodes) per evaluation.",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"dimension", "final"},
		),
		systemGauges: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "kriter_system_state",
				Help: "Current system state values for the evaluation engine.",
			},
			[]string{"metric", "final"},
		),
	}
}

// finalLabel extracts the final-metric label with a stable fallback.
func finalLabel(labels map[string]string) string {
	final, ok := labels["final"]
	if !ok {
		return "unknown"
	}
	return final
}

// RecordLatency implements the MetricsCollector interface by recording
// execution latency in a Prometheus histogram.
func (pm *PrometheusMetrics) RecordLatency(
	operation string, duration time.Duration, labels map[string]string,
) {
	pm.runLatency.WithLabelValues(operation, finalLabel(labels)).Observe(duration.Seconds())
}

// RecordCounter implements the MetricsCollector interface by
// incrementing Prometheus counters.
func (pm *PrometheusMetrics) RecordCounter(
	metric string, value float64, labels map[string]string,
) {
	status, ok := labels["status"]
	if !ok {
		status = "success"
	}
	pm.runCounter.WithLabelValues(metric, status, finalLabel(labels)).Add(value)
}

// RecordGauge implements the MetricsCollector interface by setting
// Prometheus gauge values.
func (pm *PrometheusMetrics) RecordGauge(
	metric string, value float64, labels map[string]string,
) {
	pm.systemGauges.WithLabelValues(metric, finalLabel(labels)).Set(value)
}

// RecordHistogram implements the MetricsCollector interface by
// recording values in the run-size histogram.
func (pm *PrometheusMetrics) RecordHistogram(
	metric string, value float64, labels map[string]string,
) {
	pm.runSizes.WithLabelValues(metric, finalLabel(labels)).Observe(value)
}
