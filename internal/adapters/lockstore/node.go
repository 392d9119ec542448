package lockstore

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/repin-dev/repin/internal/core/ports"
)

// NodeID is the unique identifier for the lock store factory Graft node.
const NodeID graft.ID = "adapter.lock_stores"

func init() {
	graft.Register(graft.Node[ports.LockStores]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockStores, error) {
			return NewFactory(), nil
		},
	})
}
