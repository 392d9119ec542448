// Package settings provides the workspace settings loader.
package settings

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/repin-dev/repin/internal/core/domain"
	"github.com/repin-dev/repin/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds the settings file by walking up from cwd and parses it.
// When no file exists, defaults are returned.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	path, found := findSettings(cwd)
	if !found {
		return domain.DefaultSettings(), nil
	}

	//nolint:gosec // Path is discovered under the caller's working tree
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
	}

	var file settingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrSettingsParseFailed.Error()), "path", path)
	}

	s, err := applyFile(domain.DefaultSettings(), &file)
	if err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}

	// A relative manifest path is anchored at the settings file's directory.
	if s.ManifestPath != "" && !filepath.IsAbs(s.ManifestPath) {
		s.ManifestPath = filepath.Join(filepath.Dir(path), s.ManifestPath)
	}

	return s, nil
}

// findSettings walks up from cwd looking for the settings file.
func findSettings(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.SettingsFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

// applyFile validates the parsed file and layers it over the defaults.
func applyFile(s domain.Settings, file *settingsFile) (domain.Settings, error) {
	if file.Manifest != "" {
		s.ManifestPath = file.Manifest
	}
	if file.Index.URL != "" {
		s.IndexURL = file.Index.URL
	}
	if file.Index.CacheDir != "" {
		s.CacheDir = file.Index.CacheDir
	}
	s.AllowPrereleases = file.Resolve.AllowPrereleases

	if file.Lint.FailOn != "" {
		sev, err := domain.ParseSeverity(file.Lint.FailOn)
		if err != nil {
			return domain.Settings{}, err
		}
		s.FailOn = sev
	}

	if len(file.Lint.AllowedOperators) > 0 {
		ops := make([]domain.Operator, 0, len(file.Lint.AllowedOperators))
		for _, raw := range file.Lint.AllowedOperators {
			op, rest, err := domain.SplitOperator(raw)
			if err != nil || rest != "" {
				return domain.Settings{}, zerr.With(domain.ErrInvalidOperator, "operator", raw)
			}
			ops = append(ops, op)
		}
		s.AllowedOperators = ops
	}

	for name, rawSev := range file.Lint.Rules {
		if !domain.IsKnownRule(name) {
			return domain.Settings{}, zerr.With(domain.ErrUnknownRule, "rule", name)
		}
		sev, err := domain.ParseSeverity(rawSev)
		if err != nil {
			return domain.Settings{}, zerr.With(err, "rule", name)
		}
		s.RuleSeverity[domain.RuleID(name)] = sev
	}

	return s, nil
}
