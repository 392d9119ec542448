package ports

import "github.com/repin-dev/repin/internal/core/domain"

// LockStore defines the interface for storing and retrieving the lockfile.
//
//go:generate mockgen -source=lock_store.go -destination=mocks/mock_lock_store.go -package=mocks
type LockStore interface {
	// Get retrieves the current lockfile.
	// Returns nil, nil if no lockfile exists yet.
	Get() (*domain.Lockfile, error)

	// Put stores the lockfile.
	Put(l *domain.Lockfile) error
}

// LockStores creates LockStore instances for a given manifest. The lockfile
// lives next to the manifest, so the store can only be opened once the
// manifest path is known.
type LockStores interface {
	// For opens the lock store associated with the manifest at the given path.
	For(manifestPath string) (LockStore, error)
}
