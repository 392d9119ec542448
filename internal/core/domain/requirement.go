package domain

import (
	"regexp"
	"strings"
)

var (
	nameRegex       = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?$`)
	canonicalFolder = regexp.MustCompile(`[-_.]+`)
)

// Requirement is a single package constraint entry from a manifest.
// It uses InternedString for the name since manifests across a workspace
// repeat the same package names.
type Requirement struct {
	// Name is the package name as written in the manifest.
	Name InternedString

	// Extras are the optional extras requested in brackets, e.g. lxml[html5].
	Extras []string

	// Specifiers are the version constraint clauses, in manifest order.
	Specifiers []Specifier

	// Comment is the inline annotation following the entry, without the
	// leading "#" (e.g. "Available on pip but not conda").
	Comment string

	// Line is the 1-based manifest line the entry was parsed from.
	Line int
}

// IsValidName reports whether s is a well-formed package name.
func IsValidName(s string) bool {
	return nameRegex.MatchString(s)
}

// CanonicalizeName normalizes a package name: lowercase, with runs of
// ".", "-" and "_" folded to a single "-". "Python-DateUtil" and
// "python_dateutil" normalize to the same name.
func CanonicalizeName(name string) string {
	return canonicalFolder.ReplaceAllString(strings.ToLower(name), "-")
}

// CanonicalName returns the normalized package name used for identity.
func (r Requirement) CanonicalName() string {
	return CanonicalizeName(r.Name.String())
}

// IsCanonical reports whether the name is already in canonical form.
func (r Requirement) IsCanonical() bool {
	return r.Name.String() == r.CanonicalName()
}

// Pinned returns the exact version and true if the requirement pins a
// single version with a non-wildcard == clause.
func (r Requirement) Pinned() (string, bool) {
	if len(r.Specifiers) != 1 {
		return "", false
	}
	s := r.Specifiers[0]
	if s.Op != OpEqual || s.IsWildcard() {
		return "", false
	}
	return s.Raw, true
}

// MatchesAll reports whether the candidate version satisfies every
// specifier of the requirement.
func (r Requirement) MatchesAll(v Version) bool {
	for _, s := range r.Specifiers {
		if !s.Matches(v) {
			return false
		}
	}
	return true
}

// Satisfiable reports whether the requirement's own specifier set can
// admit at least one version. It catches the self-contradictions a linter
// cares about: conflicting exact pins, a pin excluded by another clause,
// and inverted bounds. It does not prove satisfiability against an index.
func (r Requirement) Satisfiable() bool {
	var pinned *Version
	for _, s := range r.Specifiers {
		if s.Op == OpEqual && !s.IsWildcard() {
			v := s.Version()
			if pinned != nil && pinned.Compare(v) != 0 {
				return false
			}
			pinned = &v
		}
	}

	if pinned != nil {
		return r.MatchesAll(*pinned)
	}

	lower, upper := r.bounds()
	if lower != nil && upper != nil && lower.Compare(*upper) > 0 {
		return false
	}
	return true
}

// bounds extracts the tightest inclusive lower and exclusive-ish upper
// bound versions from range clauses. Wildcards and exclusions are ignored.
func (r Requirement) bounds() (lower, upper *Version) {
	for _, s := range r.Specifiers {
		v := s.Version()
		switch s.Op {
		case OpGreater, OpGreaterEqual, OpCompatible:
			if lower == nil || v.Compare(*lower) > 0 {
				lower = &v
			}
		case OpLess, OpLessEqual:
			if upper == nil || v.Compare(*upper) < 0 {
				upper = &v
			}
		}
	}
	return lower, upper
}

// ConstraintString renders the specifier list in canonical form, e.g.
// "~=1.26.0" or ">=2.0,<3.0".
func (r Requirement) ConstraintString() string {
	parts := make([]string, 0, len(r.Specifiers))
	for _, s := range r.Specifiers {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, ",")
}

// String renders the full entry in canonical form, without the inline
// comment.
func (r Requirement) String() string {
	var b strings.Builder
	b.WriteString(r.Name.String())
	if len(r.Extras) > 0 {
		b.WriteString("[")
		b.WriteString(strings.Join(r.Extras, ","))
		b.WriteString("]")
	}
	b.WriteString(r.ConstraintString())
	return b.String()
}
