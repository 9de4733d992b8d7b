// Package telemetry provides timing collection for toolchain stages. The
// collector travels through context so instrumentation stays non-intrusive;
// without one in context, timing calls are no-ops.
package telemetry

import (
	"context"
	"io"
)

type contextKey struct{}

var collectorKey = contextKey{}

// Collector gathers stage timings for one command invocation.
type Collector interface {
	// Start begins timing a stage. End the returned timer when the
	// stage completes.
	Start(name string) Timer

	// Report writes the collected timings.
	Report(w io.Writer)
}

// Timer tracks a single stage.
type Timer interface {
	End()
}

// WithCollector returns a context carrying the collector.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext extracts the collector, or a no-op one if none is present.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}
