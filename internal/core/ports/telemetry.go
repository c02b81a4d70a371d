package ports

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
	// Stats returns counters collected from finished spans.
	Stats() SnapshotStats
}

// Span represents a unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// Attribute is a key-value pair attached to a span when it starts.
type Attribute struct {
	Key   string
	Value any
}

// SnapshotStats summarises the work done during a run.
type SnapshotStats struct {
	// Snapshots is the number of snapshot operations.
	Snapshots int64
	// Hashed is the number of files whose content was hashed.
	Hashed int64
	// Failed is the number of snapshot operations that returned an error.
	Failed int64
}
