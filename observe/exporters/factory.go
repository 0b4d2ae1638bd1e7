// Package exporters builds OpenTelemetry span exporters and metric readers
// from an exporter name.
package exporters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

var (
	// ErrUnknownExporter is returned for an unsupported exporter name.
	ErrUnknownExporter = errors.New("exporters: unknown exporter")

	// ErrEndpointNotConfigured is returned when OTLP is requested without an endpoint.
	ErrEndpointNotConfigured = errors.New("exporters: endpoint not configured")
)

// Environment variables consulted for the OTLP endpoint.
const (
	EnvOTLPEndpoint        = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvOTLPTracesEndpoint  = "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"
	EnvOTLPMetricsEndpoint = "OTEL_EXPORTER_OTLP_METRICS_ENDPOINT"
)

// otlpEndpoint returns the first non-empty of the shared and signal-specific
// endpoint variables.
func otlpEndpoint(signalEnv string) (string, error) {
	for _, key := range []string{EnvOTLPEndpoint, signalEnv} {
		if v := os.Getenv(key); v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: set %s or %s", ErrEndpointNotConfigured, EnvOTLPEndpoint, signalEnv)
}

// NewTracingExporter creates a span exporter.
// Supported names: stdout, otlp, none, "".
func NewTracingExporter(ctx context.Context, name string) (sdktrace.SpanExporter, error) {
	switch name {
	case "stdout":
		return stdouttrace.New(stdouttrace.WithWriter(os.Stdout))
	case "otlp":
		if _, err := otlpEndpoint(EnvOTLPTracesEndpoint); err != nil {
			return nil, err
		}
		return otlptracegrpc.New(ctx)
	case "none", "":
		return stdouttrace.New(stdouttrace.WithWriter(io.Discard))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExporter, name)
	}
}

// NewMetricsReader creates a metric reader.
// Supported names: stdout, otlp, prometheus, none, "".
func NewMetricsReader(ctx context.Context, name string) (sdkmetric.Reader, error) {
	switch name {
	case "stdout":
		return periodic(stdoutmetric.New(stdoutmetric.WithWriter(os.Stdout)))
	case "otlp":
		if _, err := otlpEndpoint(EnvOTLPMetricsEndpoint); err != nil {
			return nil, err
		}
		return periodic(otlpmetricgrpc.New(ctx))
	case "prometheus":
		exp, err := prometheus.New()
		if err != nil {
			return nil, fmt.Errorf("exporters: prometheus: %w", err)
		}
		return exp, nil
	case "none", "":
		return periodic(stdoutmetric.New(stdoutmetric.WithWriter(io.Discard)))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExporter, name)
	}
}

func periodic(exp sdkmetric.Exporter, err error) (sdkmetric.Reader, error) {
	if err != nil {
		return nil, fmt.Errorf("exporters: create metric exporter: %w", err)
	}
	return sdkmetric.NewPeriodicReader(exp), nil
}
