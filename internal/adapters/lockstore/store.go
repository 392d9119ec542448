// Package lockstore implements lockfile persistence using a flat JSON file.
package lockstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/repin-dev/repin/internal/core/domain"
	"github.com/repin-dev/repin/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockStore = (*Store)(nil)

// Store implements ports.LockStore backed by a JSON file next to the
// manifest.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache *domain.Lockfile
}

// NewStore creates a new LockStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path: filepath.Clean(path),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// PathFor returns the lockfile path for a manifest path, e.g.
// requirements.txt -> requirements.lock.json in the same directory.
func PathFor(manifestPath string) string {
	return filepath.Join(filepath.Dir(manifestPath), domain.DefaultLockfileName)
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, domain.ErrLockStoreReadFailed.Error())
	}

	if len(data) == 0 {
		return nil
	}

	var lf domain.Lockfile
	if err := json.Unmarshal(data, &lf); err != nil {
		return zerr.Wrap(err, domain.ErrLockStoreUnmarshalFailed.Error())
	}
	s.cache = &lf

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrLockStoreMarshalFailed.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrLockStoreWriteFailed.Error())
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, append(data, '\n'), domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrLockStoreWriteFailed.Error())
	}

	return nil
}

// Get retrieves the stored lockfile, or nil if none has been written yet.
func (s *Store) Get() (*domain.Lockfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cache == nil {
		return nil, nil
	}
	lf := *s.cache
	return &lf, nil
}

// Put stores the lockfile.
func (s *Store) Put(lf *domain.Lockfile) error {
	// Update cache first
	s.mu.Lock()
	s.cache = lf
	s.mu.Unlock()

	// Then save to disk
	return s.save()
}
