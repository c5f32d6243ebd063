// Package observability provides an OpenTelemetry implementation of the
// retry engine's Observer: a span per retry execution with one event per
// backed-off attempt, an attempt counter, and a delay histogram.
package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/gaborage/go-retry/retry"
)

const instrumentationName = "github.com/gaborage/go-retry"

// Observer emits OpenTelemetry metrics and traces for retry executions.
// It is safe for concurrent use across retry loops.
type Observer struct {
	operation string
	tracer    trace.Tracer
	attempts  metric.Int64Counter
	delays    metric.Float64Histogram
}

// Ensure the retry contract stays satisfied.
var _ retry.Observer = (*Observer)(nil)

// Option customizes an Observer.
type Option func(*options)

type options struct {
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
}

// WithMeterProvider sets the meter provider. Defaults to a no-op provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		o.meterProvider = mp
	}
}

// WithTracerProvider sets the tracer provider. Defaults to a no-op provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}

// NewObserver creates an Observer for the named operation. The name is
// attached to every metric point and span so several retryers can share
// one meter.
func NewObserver(operation string, opts ...Option) (*Observer, error) {
	o := options{
		meterProvider:  metricnoop.NewMeterProvider(),
		tracerProvider: tracenoop.NewTracerProvider(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	meter := o.meterProvider.Meter(instrumentationName)

	attempts, err := meter.Int64Counter(
		"retry.attempts",
		metric.WithDescription("Number of retried attempts, recorded when an attempt fails the stop condition"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create attempts counter: %w", err)
	}

	delays, err := meter.Float64Histogram(
		"retry.delay",
		metric.WithDescription("Backoff delay chosen before the next attempt"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create delay histogram: %w", err)
	}

	return &Observer{
		operation: operation,
		tracer:    o.tracerProvider.Tracer(instrumentationName),
		attempts:  attempts,
		delays:    delays,
	}, nil
}

// ExecutionStart opens a span for the retry execution and returns the
// span context so attempt events land under it.
func (o *Observer) ExecutionStart(ctx context.Context, id string) context.Context {
	ctx, _ = o.tracer.Start(ctx, "retry "+o.operation,
		trace.WithAttributes(
			attribute.String("retry.operation", o.operation),
			attribute.String("retry.id", id),
		),
	)
	return ctx
}

// Attempt records one failed attempt: counter increment, delay histogram
// sample, and a span event.
func (o *Observer) Attempt(ctx context.Context, attempt uint, delay time.Duration, err error) {
	attrs := metric.WithAttributes(
		attribute.String("retry.operation", o.operation),
	)
	o.attempts.Add(ctx, 1, attrs)
	o.delays.Record(ctx, float64(delay)/float64(time.Millisecond), attrs)

	span := trace.SpanFromContext(ctx)
	eventAttrs := []attribute.KeyValue{
		attribute.Int64("retry.attempt", int64(attempt)),
		attribute.String("retry.delay", delay.String()),
	}
	if err != nil {
		eventAttrs = append(eventAttrs, attribute.String("retry.error", err.Error()))
	}
	span.AddEvent("retry.attempt", trace.WithAttributes(eventAttrs...))
}

// ExecutionEnd closes the execution span with the final outcome.
func (o *Observer) ExecutionEnd(ctx context.Context, attempts uint, err error) {
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.Int64("retry.invocations", int64(attempts)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
