package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/trace"
)

// Event describes something that happened during an operation.
//
// It is recorded as an event on the current span and, if the logger accepts
// its severity, as a log record.
type Event struct {
	// Name is the event name, such as "rangeset.insert.ok".
	Name string

	// Message is a human-readable description of the event.
	Message string

	// Body contains the structured details of the event.
	Body []Attr
}

// Info records an informational event.
func (r *Recorder) Info(ctx context.Context, e Event) {
	r.record(ctx, log.SeverityInfo, e)
}

// Debug records a diagnostic event. It is intended for high-frequency
// operations that would be too noisy to log at [log.SeverityInfo].
func (r *Recorder) Debug(ctx context.Context, e Event) {
	r.record(ctx, log.SeverityDebug, e)
}

func (r *Recorder) record(ctx context.Context, severity log.Severity, e Event) {
	// Span events are recorded even when the logger is disabled.
	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.AddEvent(
			e.Name,
			trace.WithAttributes(attribute.String("message", e.Message)),
			trace.WithAttributes(asAttrKeyValues(e.Body)...),
		)
	}

	if !r.logger.Enabled(ctx, log.EnabledParameters{Severity: severity}) {
		return
	}

	var rec log.Record
	rec.SetEventName(e.Name)
	rec.SetSeverity(severity)
	rec.AddAttributes(log.String("message", e.Message))

	if len(e.Body) != 0 {
		rec.SetBody(log.MapValue(asLogKeyValues(e.Body)...))
	}

	r.logger.Emit(ctx, rec)
}
