package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Span is an operation that is being traced.
type Span struct {
	recorder *Recorder
	span     trace.Span
	name     Attr
}

// StartSpan starts a new span and records the start of an operation.
//
// The caller must call [Span.End] when the operation completes.
func (r *Recorder) StartSpan(
	ctx context.Context,
	name string,
	attrs ...Attr,
) (context.Context, *Span) {
	ctx, span := r.tracer.Start(
		ctx,
		name,
		trace.WithAttributes(asAttrKeyValues(attrs)...),
	)

	op := String("operation", name)
	r.operations(ctx, 1, op)
	r.operationsInFlight(ctx, 1, op)

	return ctx, &Span{r, span, op}
}

// SetAttributes adds attributes to the span.
func (s *Span) SetAttributes(attrs ...Attr) {
	s.span.SetAttributes(asAttrKeyValues(attrs)...)
}

// End marks the end of the span's operation.
func (s *Span) End() {
	s.span.End()
	s.recorder.operationsInFlight(context.Background(), -1, s.name)
}
