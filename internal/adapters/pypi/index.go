// Package pypi implements the PackageIndex port against the PyPI JSON API
// with local on-disk caching.
package pypi

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/jonboulle/clockwork"
	"github.com/repin-dev/repin/internal/core/domain"
	"github.com/repin-dev/repin/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

const (
	pypiAPIBase       = "https://pypi.org/pypi"
	httpClientTimeout = 30 * time.Second
	httpRetryMax      = 3

	// cacheTTL bounds how long a cached release list is served before the
	// index is queried again. Release lists only grow, so a stale entry can
	// at worst miss the newest uploads.
	cacheTTL = 15 * time.Minute
)

var _ ports.PackageIndex = (*Index)(nil)

// Index implements ports.PackageIndex using the PyPI JSON API with local caching.
type Index struct {
	apiBase    string
	cacheDir   string
	httpClient *http.Client
	clock      clockwork.Clock

	// requestGroup collapses concurrent lookups for the same package into a
	// single API call.
	requestGroup singleflight.Group
}

// NewIndex creates a new PackageIndex backed by the PyPI JSON API.
func NewIndex() (*Index, error) {
	return newIndex(pypiAPIBase, domain.DefaultIndexCachePath(), newRetryClient(), clockwork.NewRealClock())
}

// NewIndexFromSettings creates a PackageIndex honoring the workspace
// settings for endpoint and cache location.
func NewIndexFromSettings(s domain.Settings) (*Index, error) {
	apiBase := s.IndexURL
	if apiBase == "" {
		apiBase = pypiAPIBase
	}
	cacheDir := s.CacheDir
	if cacheDir == "" {
		cacheDir = domain.DefaultIndexCachePath()
	}
	return newIndex(apiBase, cacheDir, newRetryClient(), clockwork.NewRealClock())
}

// newIndex creates an Index with custom endpoint, cache path, client, and
// clock (used for testing).
func newIndex(apiBase, cachePath string, client *http.Client, clock clockwork.Clock) (*Index, error) {
	cleanPath := filepath.Clean(cachePath)
	if err := os.MkdirAll(cleanPath, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, domain.ErrIndexCacheCreateFailed.Error())
	}

	return &Index{
		apiBase:    apiBase,
		cacheDir:   cleanPath,
		httpClient: client,
		clock:      clock,
	}, nil
}

// newRetryClient builds the HTTP client used against the index, with
// automatic retries on transient failures.
func newRetryClient() *http.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = httpRetryMax
	rc.HTTPClient.Timeout = httpClientTimeout
	rc.Logger = nil
	return rc.StandardClient()
}

// Releases returns the published versions of a package, sorted ascending.
// Version strings the identifier grammar cannot represent (ancient uploads
// with date-based or otherwise malformed versions) are skipped rather than
// failing the whole lookup.
func (i *Index) Releases(ctx context.Context, name string) ([]domain.Version, error) {
	canonical := domain.CanonicalizeName(name)

	result, err, _ := i.requestGroup.Do(canonical, func() (any, error) {
		cachePath := i.getCachePath(canonical)
		if versions, err := i.loadFromCache(cachePath); err == nil {
			return versions, nil
		}

		raw, err := i.queryIndex(ctx, canonical)
		if err != nil {
			return nil, err
		}

		versions := parseVersions(raw)
		if len(versions) == 0 {
			return nil, zerr.With(domain.ErrUnknownPackage, "package", canonical)
		}

		if err := i.saveToCache(cachePath, canonical, raw); err != nil {
			// Cache write failure is not critical for the lookup
			_ = err
		}

		return versions, nil
	})
	if err != nil {
		return nil, err
	}

	versions, ok := result.([]domain.Version)
	if !ok {
		return nil, zerr.With(domain.ErrIndexParseFailed, "package", canonical)
	}
	return slices.Clone(versions), nil
}

// getHash generates a SHA-256 hash for a canonical package name, used as a
// deterministic cache filename.
func getHash(name string) string {
	hash := sha256.Sum256([]byte(name))
	return hex.EncodeToString(hash[:])
}

// getCachePath returns the file path for the cache entry.
func (i *Index) getCachePath(name string) string {
	return filepath.Join(i.cacheDir, getHash(name)+".json")
}

// loadFromCache attempts to load a fresh cached release list.
func (i *Index) loadFromCache(path string) ([]domain.Version, error) {
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrIndexCacheReadFailed
		}
		return nil, zerr.Wrap(err, domain.ErrIndexCacheReadFailed.Error())
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, zerr.Wrap(err, domain.ErrIndexCacheUnmarshalFailed.Error())
	}

	if i.clock.Since(entry.Timestamp) > cacheTTL {
		return nil, domain.ErrIndexCacheReadFailed
	}

	return parseVersions(entry.Versions), nil
}

// saveToCache saves a release list to the cache.
func (i *Index) saveToCache(path, name string, versions []string) error {
	entry := cacheEntry{
		Name:      name,
		Versions:  versions,
		Timestamp: i.clock.Now(),
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrIndexCacheMarshalFailed.Error())
	}

	if err := atomicWriteFile(path, data); err != nil {
		return zerr.Wrap(err, domain.ErrIndexCacheWriteFailed.Error())
	}

	return nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp file
// and renaming it.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "index-cache-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

// queryIndex queries the PyPI JSON API for a project's release list.
func (i *Index) queryIndex(ctx context.Context, name string) ([]string, error) {
	url := fmt.Sprintf("%s/%s/json", i.apiBase, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrIndexRequestFailed.Error())
	}
	req.Header.Set("Accept", "application/json")

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrIndexRequestFailed.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, zerr.With(domain.ErrUnknownPackage, "package", name)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := zerr.With(domain.ErrIndexRequestFailed, "status_code", resp.StatusCode)
		return nil, zerr.With(apiErr, "package", name)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrIndexRequestFailed.Error())
	}

	var project ProjectResponse
	if err := json.Unmarshal(body, &project); err != nil {
		return nil, zerr.Wrap(err, domain.ErrIndexParseFailed.Error())
	}

	releases := make([]string, 0, len(project.Releases))
	for version := range project.Releases {
		releases = append(releases, version)
	}
	slices.Sort(releases)

	return releases, nil
}

// parseVersions converts raw version strings into sorted Version values,
// dropping entries that do not parse.
func parseVersions(raw []string) []domain.Version {
	versions := make([]domain.Version, 0, len(raw))
	for _, s := range raw {
		v, err := domain.ParseVersion(s)
		if err != nil {
			continue
		}
		versions = append(versions, v)
	}

	slices.SortFunc(versions, func(a, b domain.Version) int {
		return a.Compare(b)
	})
	return versions
}
