package telemetry

import (
	"context"

	"go.pakt.dev/pakt/internal/core/ports"
)

// NoopTracer is a Tracer that records nothing. It is the default when no
// telemetry backend is configured.
type NoopTracer struct{}

var _ ports.Tracer = NoopTracer{}

// Start returns the context unchanged and a span that ignores everything.
func (NoopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

// Shutdown implements ports.Tracer.
func (NoopTracer) Shutdown(context.Context) error {
	return nil
}

type noopSpan struct{}

func (noopSpan) End()                     {}
func (noopSpan) RecordError(error)        {}
func (noopSpan) SetAttribute(string, any) {}
