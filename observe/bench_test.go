package observe

import (
	"context"
	"io"
	"testing"

	"go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// BenchmarkLogger_Info measures one JSON log line.
func BenchmarkLogger_Info(b *testing.B) {
	logger := NewLoggerWithWriter("info", io.Discard).WithOp(OpMeta{Component: "fetch", Name: "get_json"})
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info(ctx, "message", Field{Key: "status", Value: 200})
	}
}

// BenchmarkMiddleware_Wrap measures instrumentation overhead with no-op providers.
func BenchmarkMiddleware_Wrap(b *testing.B) {
	metrics, err := NewMetrics(noop.NewMeterProvider().Meter("bench"))
	if err != nil {
		b.Fatal(err)
	}
	mw := NewMiddleware(NewTracer(tracenoop.NewTracerProvider().Tracer("bench")), metrics, NopLogger())
	wrapped := mw.Wrap(func(ctx context.Context, op OpMeta, input any) (any, error) {
		return nil, nil
	})
	op := OpMeta{Component: "fetch", Name: "get_json"}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = wrapped(ctx, op, nil)
	}
}
