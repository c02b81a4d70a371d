// Package telemetry records snapshot work as OpenTelemetry spans.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/filehash/internal/core/ports"
)

var (
	_ ports.Tracer = (*OTelTracer)(nil)
	_ ports.Span   = (*OTelSpan)(nil)
)

// OTelTracer is a concrete implementation of ports.Tracer using the
// OpenTelemetry SDK. Finished spans are counted by a StatsProcessor.
type OTelTracer struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
	stats    *StatsProcessor
}

// NewOTelTracer creates a new OTelTracer with the given instrumentation name.
// Extra span processors (exporters) receive every span as well.
func NewOTelTracer(name string, processors ...sdktrace.SpanProcessor) *OTelTracer {
	stats := NewStatsProcessor()
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithSpanProcessor(stats),
	}
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}

	provider := sdktrace.NewTracerProvider(opts...)
	return &OTelTracer{
		provider: provider,
		tracer:   provider.Tracer(name),
		stats:    stats,
	}
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string, attrs ...ports.Attribute) (context.Context, ports.Span) {
	ctx, span := t.tracer.Start(ctx, name)
	s := &OTelSpan{span: span}
	for _, a := range attrs {
		s.SetAttribute(a.Key, a.Value)
	}
	return ctx, s
}

// Stats returns the counters collected from finished spans.
func (t *OTelTracer) Stats() ports.SnapshotStats {
	return t.stats.Stats()
}

// Shutdown ends the tracer provider, flushing any registered processors.
func (t *OTelTracer) Shutdown(ctx context.Context) error {
	return t.provider.Shutdown(ctx)
}

// OTelSpan is a concrete implementation of ports.Span using OpenTelemetry.
type OTelSpan struct {
	span trace.Span
}

// End completes the span.
func (s *OTelSpan) End() {
	s.span.End()
}

// RecordError records err on the span and marks it failed. A nil error is ignored.
func (s *OTelSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, v))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}
