package domain

import (
	"slices"
	"time"
)

// LockfileVersion is the current lockfile format version. It allows for
// future schema migrations and backward compatibility.
const LockfileVersion = 1

// PinnedPackage is one resolved manifest entry: the exact version chosen
// for the requested constraint.
type PinnedPackage struct {
	// Name is the canonical package name.
	Name string `json:"name"`

	// Version is the resolved exact version.
	Version string `json:"version"`

	// Requested is the constraint string the version was resolved from,
	// e.g. "~=1.26.0".
	Requested string `json:"requested"`
}

// Lockfile is a reproducible snapshot of resolved manifest constraints.
type Lockfile struct {
	// Version is the lockfile format version.
	Version int `json:"version"`

	// ManifestHash fingerprints the manifest the lockfile was resolved
	// from, so staleness is detectable without re-resolving.
	ManifestHash string `json:"manifest_hash"`

	// ResolvedAt records when the resolution ran.
	ResolvedAt time.Time `json:"resolved_at"`

	// Packages maps canonical package names to their pins.
	Packages map[string]PinnedPackage `json:"packages"`
}

// NewLockfile creates an empty lockfile for a manifest fingerprint.
func NewLockfile(manifestHash string, resolvedAt time.Time) *Lockfile {
	return &Lockfile{
		Version:      LockfileVersion,
		ManifestHash: manifestHash,
		ResolvedAt:   resolvedAt,
		Packages:     make(map[string]PinnedPackage),
	}
}

// Pin records a resolved package, replacing any previous pin.
func (l *Lockfile) Pin(p PinnedPackage) {
	l.Packages[p.Name] = p
}

// Get returns the pin for a canonical package name.
func (l *Lockfile) Get(name string) (PinnedPackage, bool) {
	p, ok := l.Packages[name]
	return p, ok
}

// Fresh reports whether the lockfile was resolved from a manifest with
// the given fingerprint.
func (l *Lockfile) Fresh(manifestHash string) bool {
	return l.ManifestHash == manifestHash
}

// Len returns the number of pinned packages.
func (l *Lockfile) Len() int {
	return len(l.Packages)
}

// Names returns the pinned package names in sorted order.
func (l *Lockfile) Names() []string {
	names := make([]string, 0, len(l.Packages))
	for name := range l.Packages {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
