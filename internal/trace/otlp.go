// Package trace wires an OpenTelemetry tracer provider exporting over OTLP/HTTP.
package trace

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Config selects the collector endpoint. An empty Endpoint disables export.
type Config struct {
	Endpoint    string // host:port or a full http(s) URL
	ServiceName string
	Insecure    bool
}

// OTLPExporter owns the tracer provider.
type OTLPExporter struct {
	provider *sdktrace.TracerProvider
}

// NewOTLPExporter creates an exporter, or returns nil when cfg.Endpoint is empty.
func NewOTLPExporter(ctx context.Context, cfg Config) (*OTLPExporter, error) {
	if cfg.Endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx, exporterOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("trace: otlp exporter: %w", err)
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "cuenta"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &OTLPExporter{provider: provider}, nil
}

// exporterOptions accepts both OTEL_EXPORTER_OTLP_ENDPOINT forms: a URL,
// whose scheme decides TLS, or a bare host:port.
func exporterOptions(cfg Config) []otlptracehttp.Option {
	if strings.Contains(cfg.Endpoint, "://") {
		return []otlptracehttp.Option{otlptracehttp.WithEndpointURL(cfg.Endpoint)}
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return opts
}

// Tracer returns a named tracer. A nil exporter yields a no-op tracer.
func (e *OTLPExporter) Tracer(name string) oteltrace.Tracer {
	if e == nil {
		return noop.NewTracerProvider().Tracer(name)
	}
	return e.provider.Tracer(name)
}

// Shutdown flushes and closes the exporter.
func (e *OTLPExporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
