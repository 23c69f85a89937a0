package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/steady/internal/adapters/codec"     //nolint:depguard // Wired in app layer
	"go.trai.ch/steady/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/steady/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/steady/internal/adapters/simengine" //nolint:depguard // Wired in app layer
	"go.trai.ch/steady/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/steady/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/steady/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			simengine.NodeID,
			codec.NodeID,
			watcher.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			factory, err := graft.Dep[ports.EngineFactory](ctx)
			if err != nil {
				return nil, err
			}
			c, err := graft.Dep[ports.InstanceCodec](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, log, tracer, factory, c, w, afero.NewOsFs()), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}
