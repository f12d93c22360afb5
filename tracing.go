package main

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/zap"
)

// newTracerProvider builds the service tracer with a jaeger collector
// exporter. The collector endpoint comes from OTEL_EXPORTER_JAEGER_ENDPOINT.
func newTracerProvider(name string, logger *zap.Logger) (*trace.TracerProvider, func()) {
	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint())
	if err != nil {
		logger.Fatal("Failed to create trace exporter", zap.Error(err))
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(name),
		)),
	)
	otel.SetTracerProvider(tp)

	shutdown := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error("Failed to shut down tracer provider", zap.Error(err))
		}
	}
	return tp, shutdown
}
