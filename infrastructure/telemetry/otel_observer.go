package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kriterhq/kriter/internal/ports"
)

// tracerName identifies this instrumentation scope.
const tracerName = "kriter-evaluator"

var _ ports.RunObserver = (*OTelRunObserver)(nil)

// OTelRunObserver implements observability for evaluation runs using
// OpenTelemetry tracing. It creates a span per run, sets run-shape
// attributes, and optionally forwards run outcomes to a metrics
// collector.
type OTelRunObserver struct {
	metrics ports.MetricsCollector
}

// NewOTelRunObserver creates an observer. metrics may be nil, in which
// case only spans are produced.
func NewOTelRunObserver(metrics ports.MetricsCollector) *OTelRunObserver {
	return &OTelRunObserver{metrics: metrics}
}

// RunStarted implements the RunObserver interface. It starts a span for
// the run and records its shape as span attributes.
func (o *OTelRunObserver) RunStarted(ctx context.Context, info ports.RunInfo) context.Context {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "Evaluator.Evaluate")
	span.SetAttributes(
		attribute.String("kriter.final", info.Final),
		attribute.Int("kriter.choices", info.Choices),
		attribute.Int("kriter.nodes", info.Nodes),
	)
	return ctx
}

// RunFinished implements the RunObserver interface. It finalizes the
// run span, marks its status, and records latency and outcome metrics.
func (o *OTelRunObserver) RunFinished(
	ctx context.Context,
	info ports.RunInfo,
	elapsed time.Duration,
	err error,
) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	labels := map[string]string{"final": info.Final}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		labels["status"] = "error"
	} else {
		span.SetStatus(codes.Ok, "")
		labels["status"] = "success"
	}

	if o.metrics == nil {
		return
	}
	o.metrics.RecordLatency("evaluate", elapsed, labels)
	o.metrics.RecordCounter("evaluate", 1, labels)
	o.metrics.RecordHistogram("choices", float64(info.Choices), labels)
	o.metrics.RecordHistogram("nodes", float64(info.Nodes), labels)
}
