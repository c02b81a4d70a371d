package telemetry

import (
	"context"
	"sync/atomic"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/filehash/internal/core/domain"
	"go.trai.ch/filehash/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*StatsProcessor)(nil)

// StatsProcessor implements sdktrace.SpanProcessor by counting finished
// snapshot and hash spans.
type StatsProcessor struct {
	snapshots atomic.Int64
	hashed    atomic.Int64
	failed    atomic.Int64
}

// NewStatsProcessor returns a new StatsProcessor.
func NewStatsProcessor() *StatsProcessor {
	return &StatsProcessor{}
}

// OnStart does nothing.
func (p *StatsProcessor) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (p *StatsProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	switch s.Name() {
	case domain.SpanSnapshot:
		p.snapshots.Add(1)
		if s.Status().Code == codes.Error {
			p.failed.Add(1)
		}
	case domain.SpanHash:
		if s.Status().Code != codes.Error {
			p.hashed.Add(1)
		}
	}
}

// Stats returns the current counters.
func (p *StatsProcessor) Stats() ports.SnapshotStats {
	return ports.SnapshotStats{
		Snapshots: p.snapshots.Load(),
		Hashed:    p.hashed.Load(),
		Failed:    p.failed.Load(),
	}
}

// ForceFlush does nothing.
func (p *StatsProcessor) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (p *StatsProcessor) Shutdown(_ context.Context) error {
	return nil
}
