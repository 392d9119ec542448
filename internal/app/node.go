package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/repin-dev/repin/internal/adapters/lockstore" //nolint:depguard // Wired in app layer
	"github.com/repin-dev/repin/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/repin-dev/repin/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"github.com/repin-dev/repin/internal/adapters/settings"  //nolint:depguard // Wired in app layer
	"github.com/repin-dev/repin/internal/core/ports"
	"github.com/repin-dev/repin/internal/engine/lint"
	"github.com/repin-dev/repin/internal/engine/resolve"
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
			manifest.NodeID,
			settings.NodeID,
			lockstore.NodeID,
			lint.NodeID,
			resolve.NodeID,
			logger.NodeID,
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
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	manifests, err := graft.Dep[ports.ManifestLoader](ctx)
	if err != nil {
		return nil, err
	}

	settingsLoader, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	lockStores, err := graft.Dep[ports.LockStores](ctx)
	if err != nil {
		return nil, err
	}

	linter, err := graft.Dep[*lint.Engine](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[*resolve.Engine](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(manifests, settingsLoader, lockStores, linter, resolver, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(application, log), nil
}
