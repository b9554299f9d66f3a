package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.pakt.dev/pakt/internal/adapters/config"
	"go.pakt.dev/pakt/internal/adapters/logger"
	"go.pakt.dev/pakt/internal/adapters/telemetry"
	"go.pakt.dev/pakt/internal/core/ports"
)

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

// Components bundles the fully wired application for the CLI entry point.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.SolutionLoader](ctx)
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
			return &Components{
				App:    New(loader, log, tracer),
				Logger: log,
			}, nil
		},
	})
}
