package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/repin-dev/repin/internal/core/domain"
)

func TestSplitOperator(t *testing.T) {
	tests := []struct {
		clause  string
		wantOp  domain.Operator
		wantVer string
		wantErr bool
	}{
		{"~=1.4.2", domain.OpCompatible, "1.4.2", false},
		{"==2.32.3", domain.OpEqual, "2.32.3", false},
		{"===2.32.3", domain.OpArbitrary, "2.32.3", false},
		{"!=1.0", domain.OpNotEqual, "1.0", false},
		{"<=3", domain.OpLessEqual, "3", false},
		{">=1.21.0", domain.OpGreaterEqual, "1.21.0", false},
		{"<2", domain.OpLess, "2", false},
		{">1", domain.OpGreater, "1", false},
		{"== 2.0", domain.OpEqual, "2.0", false},
		{"=1.0", "", "", true},
		{"1.0", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.clause, func(t *testing.T) {
			op, ver, err := domain.SplitOperator(tt.clause)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidOperator))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOp, op)
			assert.Equal(t, tt.wantVer, ver)
		})
	}
}

func TestParseSpecifier_Errors(t *testing.T) {
	tests := []struct {
		name   string
		clause string
		want   error
	}{
		{"no operator", "numpy", domain.ErrInvalidOperator},
		{"operator only", "==", domain.ErrInvalidSpecifier},
		{"bad version", "==not-a-version", domain.ErrInvalidVersion},
		{"compatible needs two segments", "~=2", domain.ErrCompatibleReleasePrecision},
		{"compatible with local", "~=1.0+local", domain.ErrInvalidSpecifier},
		{"wildcard with range operator", ">=1.2.*", domain.ErrInvalidSpecifier},
		{"wildcard with pre-release", "==1.0a1.*", domain.ErrInvalidSpecifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseSpecifier(tt.clause)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestSpecifier_Matches(t *testing.T) {
	tests := []struct {
		clause  string
		version string
		want    bool
	}{
		// Exact equality.
		{"==2.32.3", "2.32.3", true},
		{"==2.32.3", "2.32.4", false},
		{"==1.0", "1.0.0", true},

		// Wildcard equality.
		{"==1.26.*", "1.26.0", true},
		{"==1.26.*", "1.26.18", true},
		{"==1.26.*", "1.27.0", false},
		{"!=1.26.*", "1.27.0", true},
		{"!=1.26.*", "1.26.5", false},

		// Compatible release: ~=X.Y.Z means >=X.Y.Z with X.Y fixed.
		{"~=1.26.0", "1.26.0", true},
		{"~=1.26.0", "1.26.18", true},
		{"~=1.26.0", "1.25.9", false},
		{"~=1.26.0", "1.27.0", false},
		// ~=X.Y means >=X.Y with X fixed.
		{"~=2.1", "2.9", true},
		{"~=2.1", "2.0", false},
		{"~=2.1", "3.0", false},

		// Ranges.
		{">=1.21.0", "1.21.0", true},
		{">=1.21.0", "1.20.9", false},
		{"<2", "1.9.9", true},
		{"<2", "2.0", false},
		{"<=2.0", "2.0", true},
		{">1.0", "1.0", false},
		{"!=1.5", "1.5", false},
		{"!=1.5", "1.6", true},

		// Arbitrary equality compares strings.
		{"===1.0", "1.0", true},
		{"===1.0", "1.0.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.clause+" vs "+tt.version, func(t *testing.T) {
			spec, err := domain.ParseSpecifier(tt.clause)
			require.NoError(t, err)
			v, err := domain.ParseVersion(tt.version)
			require.NoError(t, err)

			assert.Equal(t, tt.want, spec.Matches(v))
		})
	}
}

func TestSpecifier_String(t *testing.T) {
	spec, err := domain.ParseSpecifier("~= 1.4.2")
	require.NoError(t, err)
	assert.Equal(t, "~=1.4.2", spec.String())
	assert.False(t, spec.IsWildcard())

	wild, err := domain.ParseSpecifier("==2.*")
	require.NoError(t, err)
	assert.Equal(t, "==2.*", wild.String())
	assert.True(t, wild.IsWildcard())
}
