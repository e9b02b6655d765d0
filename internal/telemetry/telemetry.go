// Package telemetry sets up OpenTelemetry tracing for cavegen.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "cavegen"
	serviceVersion = "0.1.0"

	endpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	headersEnv  = "OTEL_EXPORTER_OTLP_HEADERS"

	honeycombEndpoint   = "https://api.honeycomb.io"
	honeycombKeyEnv     = "HONEYCOMB_CAVEGEN_API_KEY"
	honeycombDatasetEnv = "HONEYCOMB_CAVEGEN_DATASET"
)

// Enabled reports whether an OTLP endpoint has been configured.
// Without one, Setup is skipped and spans go to the global no-op provider.
func Enabled(getenv func(string) string) bool {
	return getenv(endpointEnv) != ""
}

// ConfigureHoneycomb maps HONEYCOMB_CAVEGEN_* onto the OTLP exporter
// variables. It does nothing without an API key, and an endpoint that is
// already set is kept.
func ConfigureHoneycomb(getenv func(string) string, setenv func(key, value string) error) error {
	apiKey := getenv(honeycombKeyEnv)
	if apiKey == "" {
		return nil
	}

	dataset := getenv(honeycombDatasetEnv)
	if dataset == "" {
		dataset = serviceName
	}
	if getenv(endpointEnv) == "" {
		if err := setenv(endpointEnv, honeycombEndpoint); err != nil {
			return err
		}
	}
	return setenv(headersEnv, fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}

// Option adjusts the provider built by Setup.
type Option func(*setupConfig)

type setupConfig struct {
	exporter sdktrace.SpanExporter
}

// WithExporter replaces the OTLP exporter. Spans are handed to it as each
// one ends instead of in batches.
func WithExporter(e sdktrace.SpanExporter) Option {
	return func(c *setupConfig) {
		c.exporter = e
	}
}

// Setup installs a global tracer provider. By default spans are batched to
// an OTLP/HTTP exporter configured from the OTEL_EXPORTER_OTLP_* variables.
//
// The returned function flushes pending spans and stops the provider.
func Setup(ctx context.Context, opts ...Option) (func(context.Context) error, error) {
	var cfg setupConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	res, err := newResource(ctx)
	if err != nil {
		return nil, err
	}

	var export sdktrace.TracerProviderOption
	if cfg.exporter != nil {
		export = sdktrace.WithSyncer(cfg.exporter)
	} else {
		exporter, err := otlptracehttp.New(ctx)
		if err != nil {
			return nil, err
		}
		export = sdktrace.WithBatcher(exporter)
	}

	tp := sdktrace.NewTracerProvider(export, sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// newResource describes this process. The detectors share semconv's schema
// URL, so the result is not merged with resource.Default().
func newResource(ctx context.Context) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithSchemaURL(semconv.SchemaURL),
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
		resource.WithHost(),
		resource.WithOSType(),
		resource.WithProcessRuntimeName(),
		resource.WithProcessRuntimeVersion(),
	)
}

// Tracer returns a tracer from the global provider, scoped to a component.
func Tracer(component string) trace.Tracer {
	return otel.Tracer(serviceName + "/" + component)
}

// NoopTracer returns a tracer that records nothing.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(serviceName + "/noop")
}
