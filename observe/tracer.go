package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer starts and ends one span per operation call.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	StartSpan(ctx context.Context, meta OpMeta) (context.Context, trace.Span)
	EndSpan(span trace.Span, err error)
}

type otelTracer struct {
	tracer trace.Tracer
}

// NewTracer adapts an OpenTelemetry tracer.
func NewTracer(t trace.Tracer) Tracer {
	return &otelTracer{tracer: t}
}

func opAttributes(meta OpMeta) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("op.id", meta.ID()),
		attribute.String("op.name", meta.Name),
	}
	if meta.Component != "" {
		attrs = append(attrs, attribute.String("op.component", meta.Component))
	}
	return attrs
}

func (t *otelTracer) StartSpan(ctx context.Context, meta OpMeta) (context.Context, trace.Span) {
	attrs := opAttributes(meta)
	if meta.Version != "" {
		attrs = append(attrs, attribute.String("op.version", meta.Version))
	}
	attrs = append(attrs, attribute.Bool("op.error", false))

	return t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func (t *otelTracer) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("op.error", true))
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
