package ports

import (
	"context"

	"github.com/repin-dev/repin/internal/core/domain"
)

// PackageIndex handles looking up the published releases of a package.
//
//go:generate mockgen -source=index.go -destination=mocks/mock_index.go -package=mocks
type PackageIndex interface {
	// Releases returns all published versions for the canonical package
	// name. It should check the local cache first, then query the remote
	// index. Returns ErrUnknownPackage if the index has no such project.
	Releases(ctx context.Context, name string) ([]domain.Version, error)
}
