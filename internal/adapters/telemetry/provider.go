package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Setup installs an SDK tracer provider as the global OTel provider and
// returns its shutdown function. Without an installed provider the tracer
// adapter degrades to no-op spans, which is the right default for library
// consumers; the CLI installs one at startup.
func Setup() func(context.Context) error {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
