package snapshot

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/filehash/internal/adapters/interner"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/filehash/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/filehash/internal/core/ports"
)

// NodeID is the unique identifier for the snapshot engine Graft node.
const NodeID graft.ID = "engine.snapshot"

// Factory builds Snapshotters over a store that is only known once the
// configuration has been loaded.
type Factory struct {
	hasher   ports.Hasher
	interner ports.Interner
}

// NewFactory creates a Factory sharing hasher and interner across Snapshotters.
func NewFactory(hasher ports.Hasher, interner ports.Interner) *Factory {
	return &Factory{hasher: hasher, interner: interner}
}

// New returns a Snapshotter backed by store.
func (f *Factory) New(store ports.FingerprintStore) *Snapshotter {
	return New(f.hasher, store, f.interner)
}

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			telemetry.HasherNodeID,
			interner.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			pool, err := graft.Dep[ports.Interner](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(hasher, pool), nil
		},
	})
}
