package lockstore_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/repin-dev/repin/internal/adapters/lockstore"
	"github.com/repin-dev/repin/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, domain.DefaultLockfileName)

	store, err := lockstore.NewStore(path)
	require.NoError(t, err)

	// Truncate because JSON round-trips lose monotonic clock precision
	now := time.Now().UTC().Truncate(time.Second)
	lf := domain.NewLockfile("abc123", now)
	lf.Pin(domain.PinnedPackage{Name: "numpy", Version: "1.26.2", Requested: "~=1.26.0"})

	require.NoError(t, store.Put(lf))

	got, err := store.Get()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "abc123", got.ManifestHash)

	pin, ok := got.Get("numpy")
	require.True(t, ok)
	assert.Equal(t, "1.26.2", pin.Version)
}

func TestStore_Get_Missing(t *testing.T) {
	t.Parallel()

	store, err := lockstore.NewStore(filepath.Join(t.TempDir(), domain.DefaultLockfileName))
	require.NoError(t, err)

	got, err := store.Get()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_SurvivesReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), domain.DefaultLockfileName)

	store, err := lockstore.NewStore(path)
	require.NoError(t, err)

	lf := domain.NewLockfile("hash-1", time.Now().UTC().Truncate(time.Second))
	lf.Pin(domain.PinnedPackage{Name: "pandas", Version: "2.1.4", Requested: "==2.1.4"})
	require.NoError(t, store.Put(lf))

	reopened, err := lockstore.NewStore(path)
	require.NoError(t, err)

	got, err := reopened.Get()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Fresh("hash-1"))
}

func TestStore_Corrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), domain.DefaultLockfileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := lockstore.NewStore(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal lockfile")
}

func TestPathFor(t *testing.T) {
	t.Parallel()

	got := lockstore.PathFor(filepath.Join("proj", "requirements.txt"))
	assert.Equal(t, filepath.Join("proj", domain.DefaultLockfileName), got)
}

func TestFactory_For(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	manifestPath := filepath.Join(tmpDir, domain.DefaultManifestName)

	store, err := lockstore.NewFactory().For(manifestPath)
	require.NoError(t, err)

	got, err := store.Get()
	require.NoError(t, err)
	assert.Nil(t, got)
}
