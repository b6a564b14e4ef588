package rangeset

import (
	"context"
	"math"

	"github.com/dogmatiq/intervalkit/internal/telemetry"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Instrumented is a [RangeSet] that records traces, metrics and logs for each
// operation performed on it.
//
// Like [RangeSet], it is not safe for concurrent use.
type Instrumented struct {
	set       RangeSet
	telemetry *telemetry.Recorder

	intervals telemetry.Instrument[int64]
	covered   telemetry.Instrument[int64]
	spills    telemetry.Instrument[int64]
	sizes     telemetry.Instrument[int64]
}

// NewInstrumented returns an empty [Instrumented] set.
//
// name identifies the set in the recorded telemetry.
func NewInstrumented(
	name string,
	p trace.TracerProvider,
	m metric.MeterProvider,
	l log.LoggerProvider,
) *Instrumented {
	provider := telemetry.Provider{
		TracerProvider: p,
		MeterProvider:  m,
		LoggerProvider: l,
	}

	telem := provider.Recorder(
		"github.com/dogmatiq/intervalkit/rangeset",
		telemetry.String("rangeset.name", name),
		telemetry.Handle("rangeset.handle"),
	)

	return &Instrumented{
		telemetry: telem,
		intervals: telem.UpDownCounter("intervals", "{interval}", "The number of disjoint intervals in the set."),
		covered:   telem.UpDownCounter("points.covered", "{point}", "The number of points covered by the set."),
		spills:    telem.Counter("spills", "{spill}", "The number of times the set's storage has moved from inline to heap-allocated storage."),
		sizes:     telem.Histogram("interval.size", "{point}", "The sizes of the intervals that have been inserted into or removed from the set."),
	}
}

// Len returns the number of disjoint intervals in the set.
func (s *Instrumented) Len() int {
	return s.set.Len()
}

// Snapshot returns an independent copy of the underlying set.
func (s *Instrumented) Snapshot() RangeSet {
	return s.set.Clone()
}

// Contains returns true if p is a member of the set.
func (s *Instrumented) Contains(ctx context.Context, p uint64) bool {
	ctx, span := s.telemetry.StartSpan(
		ctx,
		"rangeset.contains",
		telemetry.Uint("point", p),
	)
	defer span.End()

	ok := s.set.Contains(p)

	span.SetAttributes(
		telemetry.Bool("point_present", ok),
	)

	message := "point is not present in set"
	if ok {
		message = "point is present in set"
	}

	s.telemetry.Debug(ctx, telemetry.Event{
		Name:    "rangeset.contains.ok",
		Message: message,
	})

	return ok
}

// Insert adds all of the points in iv to the set.
func (s *Instrumented) Insert(ctx context.Context, iv Interval) {
	s.mutate(ctx, "insert", iv, s.set.Insert)
}

// Remove removes all of the points in iv from the set.
func (s *Instrumented) Remove(ctx context.Context, iv Interval) {
	s.mutate(ctx, "remove", iv, s.set.Remove)
}

// ShrinkToFit releases any storage not needed to hold the current intervals.
func (s *Instrumented) ShrinkToFit(ctx context.Context) {
	ctx, span := s.telemetry.StartSpan(ctx, "rangeset.shrink_to_fit")
	defer span.End()

	wasInline := s.set.intervals.IsInline()
	s.set.ShrinkToFit()
	isInline := s.set.intervals.IsInline()

	span.SetAttributes(
		telemetry.Bool("inline", isInline),
	)

	e := telemetry.Event{
		Name:    "rangeset.shrink_to_fit.ok",
		Message: "released excess heap storage",
		Body:    []telemetry.Attr{telemetry.Int("intervals", s.set.Len())},
	}

	switch {
	case wasInline:
		e.Name = "rangeset.shrink_to_fit.noop"
		e.Message = "storage is already inline"
	case isInline:
		e.Message = "moved intervals back to inline storage"
	}

	s.telemetry.Info(ctx, e)
}

// mutate applies fn to the underlying set and records the resulting changes.
func (s *Instrumented) mutate(
	ctx context.Context,
	op string,
	iv Interval,
	fn func(Interval),
) {
	ctx, span := s.telemetry.StartSpan(
		ctx,
		"rangeset."+op,
		telemetry.Interval("interval", iv.Begin, iv.End)...,
	)
	defer span.End()

	if iv.IsEmpty() {
		s.telemetry.Info(ctx, telemetry.Event{
			Name:    "rangeset." + op + ".noop",
			Message: "ignored empty interval",
			Body:    telemetry.Interval("interval", iv.Begin, iv.End),
		})
		return
	}

	s.sizes(ctx, delta(0, iv.Len()), telemetry.String("operation", op))

	wasInline := s.set.intervals.IsInline()
	lenBefore := s.set.Len()
	coveredBefore := s.set.Covered()

	fn(iv)

	lenAfter := s.set.Len()
	coveredAfter := s.set.Covered()
	spilled := wasInline && !s.set.intervals.IsInline()

	s.intervals(ctx, int64(lenAfter-lenBefore))
	s.covered(ctx, delta(coveredBefore, coveredAfter))
	if spilled {
		s.spills(ctx, 1)
	}

	span.SetAttributes(
		telemetry.Int("intervals", lenAfter),
		telemetry.Uint("points_covered", coveredAfter),
		telemetry.Bool("spilled", spilled),
	)

	s.telemetry.Info(ctx, telemetry.Event{
		Name:    "rangeset." + op + ".ok",
		Message: op + " applied to set",
		Body: append(
			telemetry.Interval("interval", iv.Begin, iv.End),
			telemetry.Int("intervals_delta", lenAfter-lenBefore),
			telemetry.If(spilled, telemetry.Bool("spilled", true)),
		),
	})
}

// delta returns after - before, clamped to the range of an int64.
func delta(before, after uint64) int64 {
	if after >= before {
		return int64(min(after-before, math.MaxInt64))
	}
	return -int64(min(before-after, math.MaxInt64))
}
