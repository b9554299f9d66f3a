package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.pakt.dev/pakt/internal/adapters/logger"
	"go.pakt.dev/pakt/internal/core/ports"
)

// NodeID is the unique identifier for the solution loader Graft node.
const NodeID graft.ID = "adapter.solution_loader"

func init() {
	graft.Register(graft.Node[ports.SolutionLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SolutionLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
