package domain

import (
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// preRank orders pre-release phases below final releases.
// dev-only versions sort below any pre-release of the same release segment.
const (
	rankDev   = 0
	rankAlpha = 1
	rankBeta  = 2
	rankRC    = 3
	rankFinal = 4
)

var versionRegex = regexp.MustCompile(
	`^(?:(\d+)!)?(\d+(?:\.\d+)*)(?:(a|b|rc)(\d+))?(?:\.post(\d+))?(?:\.dev(\d+))?(?:\+([a-z0-9]+(?:[._-][a-z0-9]+)*))?$`,
)

// Version is a parsed dotted version identifier.
// It covers the subset of the versioning scheme that appears in package
// manifests: optional epoch, dotted release segments, pre-release phase,
// post-release and dev-release counters, and a local version label.
type Version struct {
	Epoch    int
	Release  []int
	PrePhase string // "a", "b", "rc", or "" for final releases
	PreNum   int
	Post     int // -1 when absent
	Dev      int // -1 when absent
	Local    string

	original string
}

// ParseVersion parses a version string into a Version.
// Input is case-insensitive and surrounding whitespace is ignored.
func ParseVersion(s string) (Version, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	m := versionRegex.FindStringSubmatch(normalized)
	if m == nil {
		return Version{}, zerr.With(ErrInvalidVersion, "version", s)
	}

	v := Version{Post: -1, Dev: -1, original: strings.TrimSpace(s)}

	if m[1] != "" {
		v.Epoch, _ = strconv.Atoi(m[1])
	}

	for _, part := range strings.Split(m[2], ".") {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, zerr.With(ErrInvalidVersion, "version", s)
		}
		v.Release = append(v.Release, n)
	}

	if m[3] != "" {
		v.PrePhase = m[3]
		v.PreNum, _ = strconv.Atoi(m[4])
	}
	if m[5] != "" {
		v.Post, _ = strconv.Atoi(m[5])
	}
	if m[6] != "" {
		v.Dev, _ = strconv.Atoi(m[6])
	}
	v.Local = m[7]

	return v, nil
}

// IsValidVersion reports whether s parses as a version identifier.
func IsValidVersion(s string) bool {
	_, err := ParseVersion(s)
	return err == nil
}

// String returns the version as written, without normalization.
func (v Version) String() string {
	return v.original
}

// IsPreRelease reports whether the version is a dev or pre-release.
func (v Version) IsPreRelease() bool {
	return v.PrePhase != "" || v.Dev >= 0
}

func (v Version) preRank() int {
	switch v.PrePhase {
	case "a":
		return rankAlpha
	case "b":
		return rankBeta
	case "rc":
		return rankRC
	default:
		// No pre-release phase: a dev-only version (1.0.dev1) sorts below
		// every pre-release of the same release segment. A post-release
		// dev (1.0.post1.dev1) still sorts with the finals; the post and
		// dev counters order it there.
		if v.Dev >= 0 && v.Post < 0 {
			return rankDev
		}
		return rankFinal
	}
}

// Compare returns -1, 0, or 1 if v sorts before, equal to, or after o.
// Release segments compare numerically with missing trailing segments
// treated as zero, so 1.0 and 1.0.0 are equal.
func (v Version) Compare(o Version) int {
	if v.Epoch != o.Epoch {
		return cmpInt(v.Epoch, o.Epoch)
	}

	if c := compareRelease(v.Release, o.Release); c != 0 {
		return c
	}

	if c := cmpInt(v.preRank(), o.preRank()); c != 0 {
		return c
	}
	if c := cmpInt(v.PreNum, o.PreNum); c != 0 {
		return c
	}

	// A missing post-release sorts below any post-release.
	if c := cmpInt(v.Post, o.Post); c != 0 {
		return c
	}

	// A missing dev-release sorts above any dev-release.
	if v.Dev != o.Dev {
		if v.Dev < 0 {
			return 1
		}
		if o.Dev < 0 {
			return -1
		}
		return cmpInt(v.Dev, o.Dev)
	}

	return strings.Compare(v.Local, o.Local)
}

// ReleasePrefixMatches reports whether v's release segments start with the
// given prefix. Used for compatible-release and wildcard matching.
func (v Version) ReleasePrefixMatches(prefix []int) bool {
	for i, want := range prefix {
		got := 0
		if i < len(v.Release) {
			got = v.Release[i]
		}
		if got != want {
			return false
		}
	}
	return true
}

func compareRelease(a, b []int) int {
	n := max(len(a), len(b))
	for i := 0; i < n; i++ {
		av, bv := 0, 0
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if av != bv {
			return cmpInt(av, bv)
		}
	}
	return 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
