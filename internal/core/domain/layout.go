package domain

import "path/filepath"

const (
	// RepinDirName is the name of the internal metadata directory.
	RepinDirName = ".repin"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// IndexDirName is the name of the package index cache directory.
	IndexDirName = "index"

	// SettingsFileName is the name of the settings file.
	SettingsFileName = ".repin.yaml"

	// DefaultManifestName is the default requirements manifest file name.
	DefaultManifestName = "requirements.txt"

	// DefaultLockfileName is the default lockfile name.
	DefaultLockfileName = "requirements.lock.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultIndexCachePath returns the default path for the package index cache.
// It joins .repin, cache, and index.
func DefaultIndexCachePath() string {
	return filepath.Join(RepinDirName, CacheDirName, IndexDirName)
}
