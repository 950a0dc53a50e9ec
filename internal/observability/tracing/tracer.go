// Package tracing wires OpenTelemetry: a process-wide tracer, SDK setup and
// HTTP span middleware.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the process-wide tracer.
var tracer = otel.Tracer("crud-starter")

// Tracer returns the tracer for creating spans:
//
//	ctx, span := tracing.Tracer().Start(ctx, "operation-name")
//	defer span.End()
func Tracer() trace.Tracer {
	return tracer
}

// Init installs an SDK tracer provider with W3C context propagation and
// returns its shutdown function. Span export is left to a collector sidecar;
// without one the provider still generates valid trace IDs for log and header
// correlation.
func Init(serviceName, version string) func(context.Context) error {
	res := sdkresource.NewSchemaless(
		attribute.String("service.name", serviceName),
		attribute.String("service.version", version),
	)
	tp := sdktrace.NewTracerProvider(sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp.Shutdown
}
