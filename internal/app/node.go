package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/filehash/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/filehash/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/filehash/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/filehash/internal/adapters/store"     //nolint:depguard // Wired in app layer
	"go.trai.ch/filehash/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/filehash/internal/adapters/tree"      //nolint:depguard // Wired in app layer
	"go.trai.ch/filehash/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/filehash/internal/core/ports"
	"go.trai.ch/filehash/internal/engine/snapshot"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			fs.ResolverNodeID,
			tree.NodeID,
			store.NodeID,
			snapshot.NodeID,
			telemetry.TracerNodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.InputResolver](ctx)
	if err != nil {
		return nil, err
	}

	trees, err := graft.Dep[ports.TreeFactory](ctx)
	if err != nil {
		return nil, err
	}

	stores, err := graft.Dep[ports.StoreOpener](ctx)
	if err != nil {
		return nil, err
	}

	snapshots, err := graft.Dep[*snapshot.Factory](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, resolver, trees, stores, snapshots, tracer, w), nil
}
