package manifest_test

import (
	"testing"

	"github.com/repin-dev/repin/internal/adapters/manifest"
	"github.com/repin-dev/repin/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Success(t *testing.T) {
	content := `# SPDX-License-Identifier: MIT

numpy~=1.26.0
pandas==2.1.4  # pinned for the 2024 archive rebuild
cfgrib~=0.9.10  # Available on pip but not conda
python-dateutil>=2.8,<3.0
lxml[html5]~=4.9.0
requests
`
	m, issues := manifest.Parse("requirements.txt", []byte(content))
	require.Empty(t, issues)
	require.Len(t, m.Entries, 8)

	assert.Equal(t, domain.EntryComment, m.Entries[0].Kind)
	assert.Equal(t, " SPDX-License-Identifier: MIT", m.Entries[0].Text)
	assert.Equal(t, domain.EntryBlank, m.Entries[1].Kind)

	numpy := m.Entries[2].Requirement
	require.NotNil(t, numpy)
	assert.Equal(t, "numpy", numpy.Name.String())
	require.Len(t, numpy.Specifiers, 1)
	assert.Equal(t, domain.OpCompatible, numpy.Specifiers[0].Op)
	assert.Equal(t, "1.26.0", numpy.Specifiers[0].Raw)
	assert.Equal(t, 3, numpy.Line)

	pandas := m.Entries[3].Requirement
	require.NotNil(t, pandas)
	assert.Equal(t, "pinned for the 2024 archive rebuild", pandas.Comment)
	pin, ok := pandas.Pinned()
	require.True(t, ok)
	assert.Equal(t, "2.1.4", pin)

	cfgrib := m.Entries[4].Requirement
	require.NotNil(t, cfgrib)
	assert.Equal(t, "Available on pip but not conda", cfgrib.Comment)

	dateutil := m.Entries[5].Requirement
	require.NotNil(t, dateutil)
	require.Len(t, dateutil.Specifiers, 2)
	assert.Equal(t, domain.OpGreaterEqual, dateutil.Specifiers[0].Op)
	assert.Equal(t, domain.OpLess, dateutil.Specifiers[1].Op)

	lxml := m.Entries[6].Requirement
	require.NotNil(t, lxml)
	assert.Equal(t, []string{"html5"}, lxml.Extras)

	requests := m.Entries[7].Requirement
	require.NotNil(t, requests)
	assert.Empty(t, requests.Specifiers)
}

func TestParse_WhitespaceTolerance(t *testing.T) {
	content := "numpy ~= 1.26.0\r\n  pandas == 2.1.4  \n"

	m, issues := manifest.Parse("requirements.txt", []byte(content))
	require.Empty(t, issues)
	require.Equal(t, 2, m.RequirementCount())

	numpy, ok := m.Lookup("numpy")
	require.True(t, ok)
	assert.Equal(t, "~=1.26.0", numpy.ConstraintString())

	pandas, ok := m.Lookup("pandas")
	require.True(t, ok)
	assert.Equal(t, "==2.1.4", pandas.ConstraintString())
}

func TestParse_Issues(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{
			name:    "unknown operator",
			line:    "numpy=>1.26.0",
			wantErr: domain.ErrInvalidOperator,
		},
		{
			name:    "bad version",
			line:    "numpy==1..26",
			wantErr: domain.ErrInvalidVersion,
		},
		{
			name:    "bad name",
			line:    "-numpy==1.26.0",
			wantErr: domain.ErrUnsupportedDirective,
		},
		{
			name:    "trailing separator in name",
			line:    "numpy-==1.26.0",
			wantErr: domain.ErrInvalidName,
		},
		{
			name:    "installer directive",
			line:    "-r base.txt",
			wantErr: domain.ErrUnsupportedDirective,
		},
		{
			name:    "comment only after whitespace",
			line:    " # not a requirement",
			wantErr: nil, // leading whitespace comment parses as a comment entry
		},
		{
			name:    "single segment compatible release",
			line:    "numpy~=2",
			wantErr: domain.ErrCompatibleReleasePrecision,
		},
		{
			name:    "unterminated extras",
			line:    "lxml[html5==4.9.0",
			wantErr: domain.ErrInvalidRequirement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, issues := manifest.Parse("requirements.txt", []byte(tt.line+"\n"))
			if tt.wantErr == nil {
				assert.Empty(t, issues)
				return
			}

			require.Len(t, issues, 1)
			assert.Equal(t, 1, issues[0].Line)
			assert.ErrorIs(t, issues[0].Err, tt.wantErr)
			assert.Equal(t, 0, m.RequirementCount())
		})
	}
}

func TestParse_IssueDoesNotHideLaterEntries(t *testing.T) {
	content := "numpy==1..26\npandas==2.1.4\n"

	m, issues := manifest.Parse("requirements.txt", []byte(content))
	require.Len(t, issues, 1)
	assert.Equal(t, 1, issues[0].Line)

	require.Equal(t, 1, m.RequirementCount())
	_, ok := m.Lookup("pandas")
	assert.True(t, ok)
}

func TestParse_WildcardEquality(t *testing.T) {
	m, issues := manifest.Parse("requirements.txt", []byte("xarray==2023.*\n"))
	require.Empty(t, issues)

	req, ok := m.Lookup("xarray")
	require.True(t, ok)
	require.Len(t, req.Specifiers, 1)
	assert.True(t, req.Specifiers[0].IsWildcard())
}

func TestParse_HashInsideEntryIsNotAComment(t *testing.T) {
	// A "#" not preceded by whitespace belongs to the entry and renders
	// the line invalid, not silently truncated.
	_, issues := manifest.Parse("requirements.txt", []byte("numpy==1.26.0#comment\n"))
	require.Len(t, issues, 1)
	assert.ErrorIs(t, issues[0].Err, domain.ErrInvalidVersion)
}
