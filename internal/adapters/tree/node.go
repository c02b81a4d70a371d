package tree

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/filehash/internal/core/ports"
)

const NodeID graft.ID = "adapter.tree"

func init() {
	graft.Register(graft.Node[ports.TreeFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TreeFactory, error) {
			return NewFactory(), nil
		},
	})
}
