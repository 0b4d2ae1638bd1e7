package observe

import (
	"context"
	"errors"
	"testing"
)

// TestConfigValidate verifies validation rules and sentinel errors.
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid full config",
			cfg: Config{
				ServiceName: "utilkit",
				Version:     "1.0.0",
				Tracing:     TracingConfig{Enabled: true, Exporter: "stdout", SamplePct: 0.5},
				Metrics:     MetricsConfig{Enabled: true, Exporter: "prometheus"},
				Logging:     LoggingConfig{Enabled: true, Level: "debug"},
			},
		},
		{
			name: "disabled subsystems skip checks",
			cfg: Config{
				ServiceName: "utilkit",
				Tracing:     TracingConfig{Exporter: "bogus", SamplePct: 7},
				Metrics:     MetricsConfig{Exporter: "bogus"},
				Logging:     LoggingConfig{Level: "bogus"},
			},
		},
		{"missing service name", Config{}, ErrMissingServiceName},
		{
			name:    "unknown tracing exporter",
			cfg:     Config{ServiceName: "s", Tracing: TracingConfig{Enabled: true, Exporter: "zipkin"}},
			wantErr: ErrInvalidTracingExporter,
		},
		{
			name:    "sample pct above one",
			cfg:     Config{ServiceName: "s", Tracing: TracingConfig{Enabled: true, SamplePct: 1.5}},
			wantErr: ErrInvalidSamplePct,
		},
		{
			name:    "sample pct negative",
			cfg:     Config{ServiceName: "s", Tracing: TracingConfig{Enabled: true, SamplePct: -0.1}},
			wantErr: ErrInvalidSamplePct,
		},
		{
			name:    "unknown metrics exporter",
			cfg:     Config{ServiceName: "s", Metrics: MetricsConfig{Enabled: true, Exporter: "statsd"}},
			wantErr: ErrInvalidMetricsExporter,
		},
		{
			name:    "unknown log level",
			cfg:     Config{ServiceName: "s", Logging: LoggingConfig{Enabled: true, Level: "trace"}},
			wantErr: ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestNewObserver_DisabledNoop verifies disabled subsystems still return usable primitives.
func TestNewObserver_DisabledNoop(t *testing.T) {
	obs, err := NewObserver(context.Background(), Config{ServiceName: "utilkit"})
	if err != nil {
		t.Fatalf("NewObserver() error = %v", err)
	}
	if obs.Tracer() == nil || obs.Meter() == nil || obs.Logger() == nil {
		t.Fatal("expected non-nil tracer, meter, and logger")
	}

	_, span := obs.Tracer().Start(context.Background(), "noop")
	span.End()
	obs.Logger().Info(context.Background(), "discarded")

	if err := obs.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

// TestNewObserver_Enabled verifies SDK providers are created and shut down.
func TestNewObserver_Enabled(t *testing.T) {
	obs, err := NewObserver(context.Background(), Config{
		ServiceName: "utilkit",
		Version:     "test",
		Tracing:     TracingConfig{Enabled: true, Exporter: "none", SamplePct: 1.0},
		Metrics:     MetricsConfig{Enabled: true, Exporter: "none"},
		Logging:     LoggingConfig{Enabled: true, Level: "error"},
	})
	if err != nil {
		t.Fatalf("NewObserver() error = %v", err)
	}

	if _, err := MiddlewareFromObserver(obs); err != nil {
		t.Fatalf("MiddlewareFromObserver() error = %v", err)
	}

	if err := obs.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

// TestNewObserver_InvalidConfig verifies validation runs before setup.
func TestNewObserver_InvalidConfig(t *testing.T) {
	_, err := NewObserver(context.Background(), Config{})
	if !errors.Is(err, ErrMissingServiceName) {
		t.Errorf("NewObserver() error = %v, want ErrMissingServiceName", err)
	}
}

// TestMiddlewareFromObserver_Nil verifies a nil observer is rejected.
func TestMiddlewareFromObserver_Nil(t *testing.T) {
	if _, err := MiddlewareFromObserver(nil); !errors.Is(err, ErrNilObserver) {
		t.Errorf("MiddlewareFromObserver(nil) error = %v, want ErrNilObserver", err)
	}
}

func TestOpMeta(t *testing.T) {
	tests := []struct {
		meta     OpMeta
		wantID   string
		wantSpan string
	}{
		{OpMeta{Component: "fetch", Name: "get_json"}, "fetch.get_json", "op.exec.fetch.get_json"},
		{OpMeta{Name: "standalone"}, "standalone", "op.exec.standalone"},
	}

	for _, tt := range tests {
		t.Run(tt.wantID, func(t *testing.T) {
			if got := tt.meta.ID(); got != tt.wantID {
				t.Errorf("ID() = %q, want %q", got, tt.wantID)
			}
			if got := tt.meta.SpanName(); got != tt.wantSpan {
				t.Errorf("SpanName() = %q, want %q", got, tt.wantSpan)
			}
			if err := tt.meta.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}

	if err := (OpMeta{Component: "fetch"}).Validate(); !errors.Is(err, ErrMissingOpName) {
		t.Errorf("Validate() without name = %v, want ErrMissingOpName", err)
	}
}
