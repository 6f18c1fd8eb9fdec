package config

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

const ServiceName = "pos-client"

var TracerProvider *sdktrace.TracerProvider

// InitTracing installs the global tracer provider selected by TRACE_EXPORTER.
// With "none" the otel globals stay no-op and instrumented code costs nothing.
func InitTracing() {
	exporter, err := newSpanExporter(context.Background(), AppConfig.TraceExporter)
	if err != nil {
		log.Printf("Tracing disabled: %v", err)
		return
	}
	if exporter == nil {
		log.Println("Tracing disabled")
		return
	}

	res, err := newResource()
	if err != nil {
		log.Printf("Tracing resource fallback to default: %v", err)
		res = resource.Default()
	}

	TracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(TracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	log.Printf("Tracing enabled (%s exporter)", AppConfig.TraceExporter)
}

// newResource describes this service. The schema URL must match the one the
// sdk's default resource uses or the merge fails.
func newResource() (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(ServiceName),
			semconv.DeploymentEnvironmentName(AppConfig.AppEnv),
		),
	)
}

func newSpanExporter(ctx context.Context, kind string) (sdktrace.SpanExporter, error) {
	switch kind {
	case "", "none":
		return nil, nil
	case "stdout":
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case "otlp":
		return otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(AppConfig.OTLPEndpoint),
			otlptracegrpc.WithInsecure(),
		)
	default:
		return nil, fmt.Errorf("unknown TRACE_EXPORTER %q", kind)
	}
}

func ShutdownTracing(ctx context.Context) {
	if TracerProvider == nil {
		return
	}
	if err := TracerProvider.Shutdown(ctx); err != nil {
		log.Printf("Tracer shutdown failed: %v", err)
		return
	}
	log.Println("Tracer provider stopped")
}
