package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/repin-dev/repin/internal/core/domain"
)

func entryFor(t *testing.T, name string, line int, clauses ...string) domain.Entry {
	t.Helper()
	r := mustRequirement(t, name, clauses...)
	r.Line = line
	return domain.Entry{Kind: domain.EntryRequirement, Requirement: r, Line: line}
}

func TestManifest_Requirements(t *testing.T) {
	m := domain.NewManifest("requirements.txt")
	m.Append(domain.Entry{Kind: domain.EntryComment, Text: " SPDX-License-Identifier: Apache-2.0", Line: 1})
	m.Append(domain.Entry{Kind: domain.EntryBlank, Line: 2})
	m.Append(entryFor(t, "numpy", 3, "~=1.26.0"))
	m.Append(entryFor(t, "pandas", 4, "~=2.1.0"))

	var names []string
	for req := range m.Requirements() {
		names = append(names, req.Name.String())
	}

	assert.Equal(t, []string{"numpy", "pandas"}, names)
	assert.Equal(t, 2, m.RequirementCount())
}

func TestManifest_Lookup(t *testing.T) {
	m := domain.NewManifest("requirements.txt")
	m.Append(entryFor(t, "Python-DateUtil", 1, "~=2.8.2"))

	req, ok := m.Lookup("python-dateutil")
	require.True(t, ok)
	assert.Equal(t, "Python-DateUtil", req.Name.String())

	_, ok = m.Lookup("requests")
	assert.False(t, ok)
}

func TestManifest_Duplicates(t *testing.T) {
	m := domain.NewManifest("requirements.txt")
	m.Append(entryFor(t, "requests", 1, "~=2.31.0"))
	m.Append(entryFor(t, "numpy", 2, "~=1.26.0"))
	m.Append(entryFor(t, "Requests", 4, "==2.32.3"))
	m.Append(entryFor(t, "numpy", 6, "==1.26.4"))
	m.Append(entryFor(t, "requests", 9, ">=2.0"))

	dups := m.Duplicates()
	require.Len(t, dups, 2)

	assert.Equal(t, "requests", dups[0].Name)
	assert.Equal(t, []int{1, 4, 9}, dups[0].Lines)
	assert.Equal(t, "numpy", dups[1].Name)
	assert.Equal(t, []int{2, 6}, dups[1].Lines)
}

func TestManifest_DuplicatesEmpty(t *testing.T) {
	m := domain.NewManifest("requirements.txt")
	m.Append(entryFor(t, "numpy", 1, "~=1.26.0"))

	assert.Empty(t, m.Duplicates())
}

func TestManifest_AddRequirement(t *testing.T) {
	m := domain.NewManifest("requirements.txt")

	require.NoError(t, m.AddRequirement(mustRequirement(t, "pytz", "~=2023.3")))

	err := m.AddRequirement(mustRequirement(t, "PyTZ", "==2024.1"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicateRequirement))
	assert.Equal(t, 1, m.RequirementCount())
}
