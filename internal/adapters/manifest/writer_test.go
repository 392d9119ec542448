package manifest_test

import (
	"testing"

	"github.com/repin-dev/repin/internal/adapters/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Canonical(t *testing.T) {
	content := "# SPDX-License-Identifier: MIT\n\nnumpy ~= 1.26.0\ncfgrib~=0.9.10  # Available on pip but not conda\n"

	m, issues := manifest.Parse("requirements.txt", []byte(content))
	require.Empty(t, issues)

	want := "# SPDX-License-Identifier: MIT\n\nnumpy~=1.26.0\ncfgrib~=0.9.10  # Available on pip but not conda\n"
	assert.Equal(t, want, string(manifest.Render(m)))
}

func TestRender_Idempotent(t *testing.T) {
	content := "numpy ~= 1.26.0\npandas == 2.1.4  # pinned\n"

	m, issues := manifest.Parse("requirements.txt", []byte(content))
	require.Empty(t, issues)

	once := manifest.Render(m)
	m2, issues := manifest.Parse("requirements.txt", once)
	require.Empty(t, issues)
	assert.Equal(t, string(once), string(manifest.Render(m2)))
}

func TestFingerprint_IgnoresCosmeticEdits(t *testing.T) {
	base, issues := manifest.Parse("a.txt", []byte("numpy~=1.26.0\npandas==2.1.4\n"))
	require.Empty(t, issues)

	commented, issues := manifest.Parse("b.txt", []byte("# archive stack\n\npandas==2.1.4\nnumpy ~= 1.26.0  # core\n"))
	require.Empty(t, issues)

	assert.Equal(t, manifest.Fingerprint(base), manifest.Fingerprint(commented))
}

func TestFingerprint_ChangesWithConstraints(t *testing.T) {
	a, issues := manifest.Parse("a.txt", []byte("numpy~=1.26.0\n"))
	require.Empty(t, issues)

	b, issues := manifest.Parse("b.txt", []byte("numpy~=1.27.0\n"))
	require.Empty(t, issues)

	assert.NotEqual(t, manifest.Fingerprint(a), manifest.Fingerprint(b))
}
