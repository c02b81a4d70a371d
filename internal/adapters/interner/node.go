package interner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/filehash/internal/core/ports"
)

const NodeID graft.ID = "adapter.interner"

func init() {
	graft.Register(graft.Node[ports.Interner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Interner, error) {
			return NewPool(), nil
		},
	})
}
