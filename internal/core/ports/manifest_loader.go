package ports

import "github.com/repin-dev/repin/internal/core/domain"

// ManifestLoader defines the interface for loading requirements manifests.
//
//go:generate mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads and parses the manifest at the given path.
	// Unparseable entries are kept as diagnostics on the manifest rather
	// than failing the load, so the linter can report them with line
	// numbers.
	Load(path string) (*domain.Manifest, []domain.ParseIssue, error)

	// Discover walks up from cwd to find the nearest requirements
	// manifest. Returns ErrManifestNotFound if none exists.
	Discover(cwd string) (string, error)
}
