package telemetry

import (
	"runtime/debug"
	"sync"

	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Provider provides Recorder instances scoped to particular subsystems.
type Provider struct {
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
	LoggerProvider log.LoggerProvider
}

// Recorder records traces, metrics and logs for a particular subsystem.
type Recorder struct {
	tracer trace.Tracer
	meter  metric.Meter
	logger log.Logger

	operations         Instrument[int64]
	operationsInFlight Instrument[int64]
}

// Recorder returns a new Recorder instance.
//
// pkg is the path to the Go package that is performing the instrumentation.
// attrs are attached to every span, metric and log record that the Recorder
// produces.
func (p *Provider) Recorder(pkg string, attrs ...Attr) *Recorder {
	version := moduleVersion()
	kvs := asAttrKeyValues(attrs)

	r := &Recorder{
		tracer: p.TracerProvider.Tracer(
			pkg,
			trace.WithInstrumentationVersion(version),
			trace.WithInstrumentationAttributes(kvs...),
		),
		meter: p.MeterProvider.Meter(
			pkg,
			metric.WithInstrumentationVersion(version),
			metric.WithInstrumentationAttributes(kvs...),
		),
		logger: p.LoggerProvider.Logger(
			pkg,
			log.WithInstrumentationVersion(version),
			log.WithInstrumentationAttributes(kvs...),
		),
	}

	r.operations = r.Counter("operations", "{operation}", "The number of operations that have been performed, by operation name.")
	r.operationsInFlight = r.UpDownCounter("operations.in_flight", "{operation}", "The number of operations that are currently in progress.")

	return r
}

// moduleVersion returns the version of this module as recorded in the binary's
// build information, or "unknown" if it is not available.
var moduleVersion = sync.OnceValue(func() string {
	const modulePath = "github.com/dogmatiq/intervalkit"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	if info.Main.Path == modulePath && info.Main.Version != "" {
		return info.Main.Version
	}

	for _, dep := range info.Deps {
		if dep.Path == modulePath {
			return dep.Version
		}
	}

	return "unknown"
})
