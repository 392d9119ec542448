package lint

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/repin-dev/repin/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"github.com/repin-dev/repin/internal/core/ports"
)

// NodeID is the unique identifier for the lint engine Graft node.
const NodeID graft.ID = "engine.lint"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Engine, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
