package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Metric instrument names.
const (
	MetricTotal    = "op.exec.total"
	MetricErrors   = "op.exec.errors"
	MetricDuration = "op.exec.duration_ms"
)

// Metrics records per-call counters and latency.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic.
type Metrics interface {
	RecordExecution(ctx context.Context, meta OpMeta, duration time.Duration, err error)
}

type otelMetrics struct {
	total    metric.Int64Counter
	errors   metric.Int64Counter
	duration metric.Float64Histogram
}

// NewMetrics creates the operation instruments on meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	total, err := meter.Int64Counter(MetricTotal,
		metric.WithDescription("Total number of operation calls"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	errCount, err := meter.Int64Counter(MetricErrors,
		metric.WithDescription("Total number of failed operation calls"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(MetricDuration,
		metric.WithDescription("Operation duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{total: total, errors: errCount, duration: duration}, nil
}

func (m *otelMetrics) RecordExecution(ctx context.Context, meta OpMeta, duration time.Duration, err error) {
	opt := metric.WithAttributes(opAttributes(meta)...)

	m.total.Add(ctx, 1, opt)
	if err != nil {
		m.errors.Add(ctx, 1, opt)
	}
	m.duration.Record(ctx, float64(duration.Microseconds())/1000, opt)
}
