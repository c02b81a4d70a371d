package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/filehash/internal/adapters/fs" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/filehash/internal/core/ports"
)

const (
	// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
	TracerNodeID graft.ID = "adapter.telemetry"

	// HasherNodeID is the unique identifier for the traced hasher Graft node.
	HasherNodeID graft.ID = "adapter.telemetry.hasher"
)

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			return NewOTelTracer("filehash"), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID, TracerNodeID},
		Run: func(ctx context.Context) (ports.Hasher, error) {
			hasher, err := graft.Dep[*fs.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewTracingHasher(hasher, tracer), nil
		},
	})
}
