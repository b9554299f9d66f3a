package ports

import "context"

// Span is one traced unit of work.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error against the span.
	RecordError(err error)
	// SetAttribute attaches a key/value attribute to the span.
	SetAttribute(key string, value any)
}

// Tracer creates spans around package operations.
type Tracer interface {
	// Start creates a span and returns the context carrying it.
	Start(ctx context.Context, name string) (context.Context, Span)

	// Shutdown flushes and releases tracer resources.
	Shutdown(ctx context.Context) error
}
