package manifest

import (
	"os"
	"path/filepath"

	"github.com/repin-dev/repin/internal/core/domain"
	"github.com/repin-dev/repin/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestLoader = (*Loader)(nil)

// Loader implements ports.ManifestLoader for plain-text requirements files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads and parses the manifest at the given path.
func (l *Loader) Load(path string) (*domain.Manifest, []domain.ParseIssue, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, zerr.With(domain.ErrManifestNotFound, "path", path)
		}
		return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	m, issues := Parse(path, data)
	return m, issues, nil
}

// Discover walks up from cwd and returns the nearest requirements manifest.
func (l *Loader) Discover(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.DefaultManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrManifestNotFound, "cwd", cwd)
}
