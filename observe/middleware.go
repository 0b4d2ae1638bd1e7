package observe

import (
	"context"
	"time"
)

// ExecuteFunc is the operation signature Middleware wraps.
type ExecuteFunc func(ctx context.Context, op OpMeta, input any) (any, error)

// Middleware wraps operations with tracing, metrics, and logging.
//
// Contract:
//   - Concurrency: Wrap returns a function safe for concurrent use.
//   - Errors: errors from the wrapped function are recorded and returned unchanged.
//   - Ownership: input and result values pass through unmodified.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a Middleware from its parts.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	return &Middleware{tracer: tracer, metrics: metrics, logger: logger}
}

// MiddlewareFromObserver builds a Middleware from an Observer's primitives.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}
	metrics, err := NewMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}
	return NewMiddleware(NewTracer(obs.Tracer()), metrics, obs.Logger()), nil
}

// Wrap returns fn instrumented with one span, one metrics record, and one
// log line per call. A call with an unnamed OpMeta fails with
// ErrMissingOpName before fn runs or any telemetry is recorded.
func (m *Middleware) Wrap(fn ExecuteFunc) ExecuteFunc {
	return func(ctx context.Context, op OpMeta, input any) (any, error) {
		if err := op.Validate(); err != nil {
			return nil, err
		}

		ctx, span := m.tracer.StartSpan(ctx, op)
		start := time.Now()

		result, err := fn(ctx, op, input)

		duration := time.Since(start)
		m.tracer.EndSpan(span, err)
		m.metrics.RecordExecution(ctx, op, duration, err)

		logger := m.logger.WithOp(op)
		fields := []Field{{Key: "duration_ms", Value: float64(duration.Microseconds()) / 1000}}
		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			logger.Error(ctx, "operation failed", fields...)
		} else {
			logger.Debug(ctx, "operation completed", fields...)
		}

		return result, err
	}
}
