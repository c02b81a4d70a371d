package telemetry

import (
	"context"

	"go.trai.ch/filehash/internal/core/domain"
	"go.trai.ch/filehash/internal/core/ports"
)

var _ ports.Hasher = (*TracingHasher)(nil)

// TracingHasher wraps every call of the underlying hasher in a hash span.
type TracingHasher struct {
	next   ports.Hasher
	tracer ports.Tracer
}

// NewTracingHasher creates a TracingHasher decorating next.
func NewTracingHasher(next ports.Hasher, tracer ports.Tracer) *TracingHasher {
	return &TracingHasher{next: next, tracer: tracer}
}

// Hash hashes file with the underlying hasher.
func (h *TracingHasher) Hash(file string) ([]byte, error) {
	_, span := h.tracer.Start(context.Background(), domain.SpanHash, ports.Attribute{Key: domain.AttrPath, Value: file})
	defer span.End()

	sum, err := h.next.Hash(file)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("bytes", len(sum))
	return sum, nil
}
