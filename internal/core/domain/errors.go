package domain

import "errors"

// Sentinels are plain errors: zerr.With and zerr.Wrap chain them as the
// cause, so errors.Is keeps matching after context is attached.
var (
	// ErrManifestNotFound is returned when no manifest file can be located.
	ErrManifestNotFound = errors.New("could not find requirements manifest")

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = errors.New("failed to read manifest")

	// ErrInvalidRequirement is returned when a manifest line is not a valid requirement entry.
	ErrInvalidRequirement = errors.New("invalid requirement entry")

	// ErrEmptyEntry is returned when a requirement line contains only an inline comment.
	ErrEmptyEntry = errors.New("empty requirement entry")

	// ErrUnsupportedDirective is returned when a manifest line is an installer directive rather than a requirement.
	ErrUnsupportedDirective = errors.New("installer directives are not supported")

	// ErrInvalidName is returned when a package name contains invalid characters.
	ErrInvalidName = errors.New("invalid package name")

	// ErrInvalidVersion is returned when a version string is not a valid version identifier.
	ErrInvalidVersion = errors.New("invalid version identifier")

	// ErrInvalidOperator is returned when a constraint clause does not start with a known operator.
	ErrInvalidOperator = errors.New("invalid constraint operator")

	// ErrInvalidSpecifier is returned when a constraint clause is malformed.
	ErrInvalidSpecifier = errors.New("invalid version specifier")

	// ErrCompatibleReleasePrecision is returned when a compatible-release clause has fewer than two release segments.
	ErrCompatibleReleasePrecision = errors.New("compatible-release constraint requires at least two version segments")

	// ErrDuplicateRequirement is returned when a package is declared more than once.
	ErrDuplicateRequirement = errors.New("duplicate requirement")

	// ErrNoManifestSpecified is returned when no manifest path is given and none can be discovered.
	ErrNoManifestSpecified = errors.New("no manifest specified")

	// ErrLintFailed is returned when linting reports findings at or above the failure severity.
	ErrLintFailed = errors.New("lint failed")

	// ErrFormatCheckFailed is returned when a format check finds a manifest that is not canonically formatted.
	ErrFormatCheckFailed = errors.New("manifest is not canonically formatted")

	// ErrUnknownPackage is returned when the package index has no project with the requested name.
	ErrUnknownPackage = errors.New("package not found in index")

	// ErrNoMatchingVersion is returned when no published release satisfies a requirement.
	ErrNoMatchingVersion = errors.New("no published version satisfies constraint")

	// ErrResolutionFailed is returned when resolving the manifest against the index fails.
	ErrResolutionFailed = errors.New("resolution failed")

	// ErrIndexRequestFailed is returned when a package index request fails.
	ErrIndexRequestFailed = errors.New("failed to query package index")

	// ErrIndexParseFailed is returned when a package index response cannot be parsed.
	ErrIndexParseFailed = errors.New("failed to parse package index response")

	// ErrIndexCacheCreateFailed is returned when the index cache directory cannot be created.
	ErrIndexCacheCreateFailed = errors.New("failed to create index cache directory")

	// ErrIndexCacheReadFailed is returned when reading from the index cache fails.
	ErrIndexCacheReadFailed = errors.New("failed to read from index cache")

	// ErrIndexCacheWriteFailed is returned when writing to the index cache fails.
	ErrIndexCacheWriteFailed = errors.New("failed to write to index cache")

	// ErrIndexCacheMarshalFailed is returned when marshaling index cache data fails.
	ErrIndexCacheMarshalFailed = errors.New("failed to marshal index cache data")

	// ErrIndexCacheUnmarshalFailed is returned when unmarshaling index cache data fails.
	ErrIndexCacheUnmarshalFailed = errors.New("failed to unmarshal index cache data")

	// ErrLockfileNotFound is returned when a verify run finds no lockfile.
	ErrLockfileNotFound = errors.New("lockfile not found, run resolve first")

	// ErrLockfileStale is returned when the lockfile does not match the current manifest.
	ErrLockfileStale = errors.New("lockfile is stale, manifest has changed since resolve")

	// ErrLockfileViolation is returned when a pinned version no longer satisfies its constraint.
	ErrLockfileViolation = errors.New("pinned version violates manifest constraint")

	// ErrLockStoreReadFailed is returned when the lockfile cannot be read.
	ErrLockStoreReadFailed = errors.New("failed to read lockfile")

	// ErrLockStoreUnmarshalFailed is returned when the lockfile cannot be unmarshaled.
	ErrLockStoreUnmarshalFailed = errors.New("failed to unmarshal lockfile")

	// ErrLockStoreMarshalFailed is returned when the lockfile cannot be marshaled.
	ErrLockStoreMarshalFailed = errors.New("failed to marshal lockfile")

	// ErrLockStoreWriteFailed is returned when the lockfile cannot be written.
	ErrLockStoreWriteFailed = errors.New("failed to write lockfile")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = errors.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = errors.New("failed to parse settings file")

	// ErrUnknownRule is returned when a severity override names a rule that does not exist.
	ErrUnknownRule = errors.New("unknown lint rule")

	// ErrUnknownSeverity is returned when a severity value is not one of info, warning, or error.
	ErrUnknownSeverity = errors.New("invalid severity, expected 'info', 'warning' or 'error'")
)
