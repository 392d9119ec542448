package pypi

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/repin-dev/repin/internal/adapters/settings"
	"github.com/repin-dev/repin/internal/core/ports"
)

const NodeID graft.ID = "adapter.package_index"

func init() {
	graft.Register(graft.Node[ports.PackageIndex]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.PackageIndex, error) {
			loader, err := graft.Dep[ports.SettingsLoader](ctx)
			if err != nil {
				return nil, err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}

			s, err := loader.Load(cwd)
			if err != nil {
				return nil, err
			}

			return NewIndexFromSettings(s)
		},
	})
}
