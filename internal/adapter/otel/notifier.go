package otel

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/CATIGERN/job-applications/internal/domain"
)

// TracingNotifier wraps a domain.EventNotifier with OpenTelemetry tracing.
type TracingNotifier struct {
	next   domain.EventNotifier
	tracer trace.Tracer
}

var _ domain.EventNotifier = (*TracingNotifier)(nil)

// NewTracingNotifier creates a tracing decorator around the given notifier.
func NewTracingNotifier(next domain.EventNotifier) *TracingNotifier {
	return &TracingNotifier{next: next, tracer: otel.Tracer(tracerName)}
}

func (n *TracingNotifier) Notify(ctx context.Context, event domain.PublishEvent) error {
	ctx, span := n.tracer.Start(ctx, "EventNotifier.Notify",
		trace.WithAttributes(
			attribute.String("event.id", event.ID.String()),
			attribute.String("event.type", string(event.EventType)),
			attribute.String("event.status", string(event.Status)),
		),
	)

	err := n.next.Notify(ctx, event)
	endSpan(span, err)
	return err
}

// MeteredNotifier counts lifecycle events and times their delivery.
type MeteredNotifier struct {
	next     domain.EventNotifier
	events   metric.Int64Counter
	duration metric.Float64Histogram
}

var _ domain.EventNotifier = (*MeteredNotifier)(nil)

// NewMeteredNotifier creates a metrics decorator using instruments from provider.
func NewMeteredNotifier(next domain.EventNotifier, provider metric.MeterProvider) (*MeteredNotifier, error) {
	meter := provider.Meter(tracerName)

	events, err := meter.Int64Counter("jobboard.lifecycle_events",
		metric.WithDescription("Lifecycle events handed to the event sink"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating lifecycle event counter: %w", err)
	}

	duration, err := meter.Float64Histogram("jobboard.lifecycle_event.duration",
		metric.WithDescription("Time spent delivering a lifecycle event to the sink"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating lifecycle event histogram: %w", err)
	}

	return &MeteredNotifier{next: next, events: events, duration: duration}, nil
}

func (n *MeteredNotifier) Notify(ctx context.Context, event domain.PublishEvent) error {
	start := time.Now()
	err := n.next.Notify(ctx, event)

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	attrs := metric.WithAttributes(
		attribute.String("event_type", string(event.EventType)),
		attribute.String("status", string(event.Status)),
		attribute.String("outcome", outcome),
	)
	n.events.Add(ctx, 1, attrs)
	n.duration.Record(ctx, time.Since(start).Seconds(), attrs)

	return err
}
