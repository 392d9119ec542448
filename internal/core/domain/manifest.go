// Package domain contains the core domain models for requirement manifests.
package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// EntryKind discriminates the line types of a manifest.
type EntryKind uint8

const (
	// EntryRequirement is a package constraint line.
	EntryRequirement EntryKind = iota
	// EntryComment is a full-line comment, including SPDX header lines.
	EntryComment
	// EntryBlank is an empty line.
	EntryBlank
)

// Entry is one line of a manifest. Comments and blank lines are kept so
// that a manifest can be rendered back without losing its annotations.
type Entry struct {
	Kind EntryKind

	// Requirement is set for EntryRequirement entries.
	Requirement *Requirement

	// Text is the comment text without the leading "#", for EntryComment.
	Text string

	// Line is the 1-based source line number.
	Line int
}

// ParseIssue records a manifest line that could not be parsed as a
// requirement entry. Issues are collected rather than aborting the load,
// so a single bad line does not hide the rest of the manifest.
type ParseIssue struct {
	// Line is the 1-based source line number.
	Line int
	// Text is the offending line as written.
	Text string
	// Err is the parse error.
	Err error
}

// Duplicate reports a package name declared by more than one entry.
type Duplicate struct {
	Name  string // canonical name
	Lines []int  // all declaring lines, in manifest order
}

// Manifest is an ordered requirements manifest.
type Manifest struct {
	Path    string
	Entries []Entry
}

// NewManifest creates an empty manifest for the given path.
func NewManifest(path string) *Manifest {
	return &Manifest{Path: path}
}

// Append adds an entry to the manifest.
func (m *Manifest) Append(e Entry) {
	m.Entries = append(m.Entries, e)
}

// AddRequirement appends a requirement entry. It returns an error if a
// requirement with the same canonical name already exists; manifests with
// duplicates can still be constructed entry-by-entry via Append for the
// linter to report.
func (m *Manifest) AddRequirement(r *Requirement) error {
	for req := range m.Requirements() {
		if req.CanonicalName() == r.CanonicalName() {
			return zerr.With(ErrDuplicateRequirement, "name", r.CanonicalName())
		}
	}
	m.Append(Entry{Kind: EntryRequirement, Requirement: r, Line: r.Line})
	return nil
}

// Requirements returns an iterator over the requirement entries in
// manifest order.
func (m *Manifest) Requirements() iter.Seq[*Requirement] {
	return func(yield func(*Requirement) bool) {
		for i := range m.Entries {
			if m.Entries[i].Kind != EntryRequirement {
				continue
			}
			if !yield(m.Entries[i].Requirement) {
				return
			}
		}
	}
}

// RequirementCount returns the number of requirement entries.
func (m *Manifest) RequirementCount() int {
	n := 0
	for range m.Requirements() {
		n++
	}
	return n
}

// Lookup returns the first requirement with the given canonical name.
func (m *Manifest) Lookup(canonicalName string) (*Requirement, bool) {
	for req := range m.Requirements() {
		if req.CanonicalName() == canonicalName {
			return req, true
		}
	}
	return nil, false
}

// Duplicates returns the canonical names declared more than once, each
// with all declaring line numbers. Order follows first declaration.
func (m *Manifest) Duplicates() []Duplicate {
	lines := make(map[string][]int)
	var order []string

	for req := range m.Requirements() {
		name := req.CanonicalName()
		if _, seen := lines[name]; !seen {
			order = append(order, name)
		}
		lines[name] = append(lines[name], req.Line)
	}

	var dups []Duplicate
	for _, name := range order {
		if len(lines[name]) > 1 {
			dups = append(dups, Duplicate{Name: name, Lines: slices.Clone(lines[name])})
		}
	}
	return dups
}
