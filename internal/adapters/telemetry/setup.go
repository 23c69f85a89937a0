package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/steady/internal/core/domain"
)

// ShutdownFunc flushes and stops an installed provider.
type ShutdownFunc func(context.Context) error

// Install registers an SDK tracer provider as the global provider when cfg
// enables tracing. Tracers created by NewOTelTracer pick it up. Extra options
// (for example span processors) are appended to the defaults.
func Install(cfg domain.TelemetryConfig, opts ...sdktrace.TracerProviderOption) ShutdownFunc {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }
	}

	name := cfg.ServiceName
	if name == "" {
		name = "steady"
	}
	res := resource.NewSchemaless(attribute.String("service.name", name))

	all := append([]sdktrace.TracerProviderOption{sdktrace.WithResource(res)}, opts...)
	provider := sdktrace.NewTracerProvider(all...)
	otel.SetTracerProvider(provider)
	return provider.Shutdown
}
