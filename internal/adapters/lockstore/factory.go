package lockstore

import (
	"github.com/repin-dev/repin/internal/core/ports"
)

var _ ports.LockStores = (*Factory)(nil)

// Factory implements ports.LockStores, opening one Store per manifest.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// For opens the lock store for the manifest at the given path.
func (f *Factory) For(manifestPath string) (ports.LockStore, error) {
	return NewStore(PathFor(manifestPath))
}
