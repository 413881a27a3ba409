package common

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// InitTracing installs a global tracer provider exporting spans to stdout.
// When tracing is disabled it returns a no-op tracer and a no-op shutdown.
func InitTracing(config TracingConfig) (trace.Tracer, func(context.Context) error, error) {
	name := config.ServiceName
	if name == "" {
		name = "finsight"
	}

	if !config.Enabled {
		return noop.NewTracerProvider().Tracer(name), func(context.Context) error { return nil }, nil
	}

	opts := []stdouttrace.Option{}
	if config.PrettyPrint {
		opts = append(opts, stdouttrace.WithPrettyPrint())
	}
	exporter, err := stdouttrace.New(opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceName(name),
			semconv.ServiceVersion(GetVersion()),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create trace resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	return provider.Tracer(name), provider.Shutdown, nil
}
