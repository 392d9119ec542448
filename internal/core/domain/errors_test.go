package domain_test

import (
	"errors"
	"testing"

	"github.com/repin-dev/repin/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

// Attaching context to a sentinel must not break errors.Is: the whole
// error classification (lint rule mapping, CLI exit codes) relies on it.
func TestSentinels_SurviveContext(t *testing.T) {
	t.Run("zerr.With keeps the sentinel in the chain", func(t *testing.T) {
		err := zerr.With(domain.ErrInvalidVersion, "version", "1..26")
		assert.ErrorIs(t, err, domain.ErrInvalidVersion)
		assert.Contains(t, err.Error(), "invalid version identifier")
	})

	t.Run("stacked zerr.With calls keep the sentinel", func(t *testing.T) {
		err := zerr.With(domain.ErrLockfileViolation, "package", "numpy")
		err = zerr.With(err, "pinned", "1.27.0")
		err = zerr.With(err, "constraint", "~=1.26.0")
		assert.ErrorIs(t, err, domain.ErrLockfileViolation)
	})

	t.Run("zerr.Wrap around a contextualized sentinel keeps it", func(t *testing.T) {
		inner := zerr.With(domain.ErrNoMatchingVersion, "package", "numpy")
		err := zerr.Wrap(inner, domain.ErrResolutionFailed.Error())
		assert.ErrorIs(t, err, domain.ErrNoMatchingVersion)
		assert.Contains(t, err.Error(), "resolution failed")
	})

	t.Run("parse errors classify by sentinel", func(t *testing.T) {
		_, err := domain.ParseVersion("1..26")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidVersion)

		_, _, err = domain.SplitOperator("=>1.0")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidOperator)
	})

	t.Run("errors.Is distinguishes sentinels", func(t *testing.T) {
		err := zerr.With(domain.ErrInvalidVersion, "version", "x")
		assert.False(t, errors.Is(err, domain.ErrInvalidSpecifier))
	})
}
