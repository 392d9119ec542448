package resolve

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"github.com/repin-dev/repin/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"github.com/repin-dev/repin/internal/adapters/pypi"   //nolint:depguard // Wired in engine wiring
	"github.com/repin-dev/repin/internal/adapters/telemetry/progrock"
	"github.com/repin-dev/repin/internal/core/ports"
)

// NodeID is the unique identifier for the resolve engine Graft node.
const NodeID graft.ID = "engine.resolve"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			pypi.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			index, err := graft.Dep[ports.PackageIndex](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(index, telemetry, log, clockwork.NewRealClock()), nil
		},
	})
}
