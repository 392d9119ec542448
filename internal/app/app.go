// Package app implements the application layer for repin.
package app

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/repin-dev/repin/internal/adapters/manifest"
	"github.com/repin-dev/repin/internal/core/domain"
	"github.com/repin-dev/repin/internal/core/ports"
	"github.com/repin-dev/repin/internal/engine/lint"
	"github.com/repin-dev/repin/internal/engine/resolve"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	manifests  ports.ManifestLoader
	settings   ports.SettingsLoader
	lockStores ports.LockStores
	linter     *lint.Engine
	resolver   *resolve.Engine
	log        ports.Logger
}

// New creates a new App instance.
func New(
	manifests ports.ManifestLoader,
	settings ports.SettingsLoader,
	lockStores ports.LockStores,
	linter *lint.Engine,
	resolver *resolve.Engine,
	log ports.Logger,
) *App {
	return &App{
		manifests:  manifests,
		settings:   settings,
		lockStores: lockStores,
		linter:     linter,
		resolver:   resolver,
		log:        log,
	}
}

// LintResult is the outcome of a lint run.
type LintResult struct {
	ManifestPath string
	Findings     []domain.Finding
}

// ResolveResult is the outcome of a resolve run.
type ResolveResult struct {
	ManifestPath string
	Lockfile     *domain.Lockfile
}

// ListResult is the manifest contents with any known pins.
type ListResult struct {
	ManifestPath string
	Requirements []*domain.Requirement
	Pins         map[string]string
}

// Lint loads the manifest and runs every lint rule over it. When findings
// reach the configured failure severity the result is returned together
// with ErrLintFailed so callers can both report and fail.
func (a *App) Lint(ctx context.Context, cwd, manifestOverride string) (LintResult, error) {
	settings, path, err := a.locate(cwd, manifestOverride)
	if err != nil {
		return LintResult{}, err
	}

	m, issues, err := a.manifests.Load(path)
	if err != nil {
		return LintResult{}, err
	}

	res := LintResult{
		ManifestPath: path,
		Findings:     a.linter.Run(m, issues, settings),
	}

	if lint.Failed(res.Findings, settings) {
		return res, zerr.With(domain.ErrLintFailed, "findings", len(res.Findings))
	}
	return res, nil
}

// Resolve pins every manifest requirement against the package index and
// writes the lockfile next to the manifest. A manifest that fails linting
// is refused.
func (a *App) Resolve(ctx context.Context, cwd, manifestOverride string) (ResolveResult, error) {
	settings, path, err := a.locate(cwd, manifestOverride)
	if err != nil {
		return ResolveResult{}, err
	}

	m, issues, err := a.manifests.Load(path)
	if err != nil {
		return ResolveResult{}, err
	}

	findings := a.linter.Run(m, issues, settings)
	if lint.Failed(findings, settings) {
		return ResolveResult{}, zerr.With(domain.ErrLintFailed, "manifest", path)
	}

	lockfile, err := a.resolver.Resolve(ctx, m, manifest.Fingerprint(m), settings)
	if err != nil {
		return ResolveResult{}, err
	}

	store, err := a.lockStores.For(path)
	if err != nil {
		return ResolveResult{}, err
	}
	if err := store.Put(lockfile); err != nil {
		return ResolveResult{}, err
	}

	return ResolveResult{ManifestPath: path, Lockfile: lockfile}, nil
}

// Verify checks that the lockfile exists, matches the current manifest, and
// that every pin still satisfies its requested constraint.
func (a *App) Verify(ctx context.Context, cwd, manifestOverride string) error {
	_, path, err := a.locate(cwd, manifestOverride)
	if err != nil {
		return err
	}

	m, issues, err := a.manifests.Load(path)
	if err != nil {
		return err
	}
	if len(issues) > 0 {
		return zerr.With(domain.ErrInvalidRequirement, "line", issues[0].Line)
	}

	store, err := a.lockStores.For(path)
	if err != nil {
		return err
	}

	lockfile, err := store.Get()
	if err != nil {
		return err
	}
	if lockfile == nil {
		return zerr.With(domain.ErrLockfileNotFound, "manifest", path)
	}

	if !lockfile.Fresh(manifest.Fingerprint(m)) {
		return zerr.With(domain.ErrLockfileStale, "manifest", path)
	}

	for req := range m.Requirements() {
		name := req.CanonicalName()

		pin, ok := lockfile.Get(name)
		if !ok {
			return zerr.With(domain.ErrLockfileStale, "package", name)
		}

		v, err := domain.ParseVersion(pin.Version)
		if err != nil {
			return zerr.With(err, "package", name)
		}

		if !req.MatchesAll(v) {
			violation := zerr.With(domain.ErrLockfileViolation, "package", name)
			violation = zerr.With(violation, "pinned", pin.Version)
			return zerr.With(violation, "constraint", req.ConstraintString())
		}
	}

	a.log.Info(fmt.Sprintf("lockfile verified, %d packages in sync", lockfile.Len()))
	return nil
}

// Format rewrites the manifest in canonical form. In check mode nothing is
// written; a non-canonical manifest returns ErrFormatCheckFailed instead.
// Returns whether the manifest content changed (or would change).
func (a *App) Format(ctx context.Context, cwd, manifestOverride string, check bool) (bool, error) {
	_, path, err := a.locate(cwd, manifestOverride)
	if err != nil {
		return false, err
	}

	m, issues, err := a.manifests.Load(path)
	if err != nil {
		return false, err
	}
	if len(issues) > 0 {
		// Formatting must not destroy lines it cannot parse.
		return false, zerr.With(domain.ErrInvalidRequirement, "line", issues[0].Line)
	}

	rendered := manifest.Render(m)

	//nolint:gosec // Path was already read by the loader
	current, err := os.ReadFile(path)
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}

	if bytes.Equal(current, rendered) {
		return false, nil
	}

	if check {
		return true, zerr.With(domain.ErrFormatCheckFailed, "manifest", path)
	}

	if err := os.WriteFile(path, rendered, domain.FilePerm); err != nil {
		return false, zerr.Wrap(err, "failed to write manifest")
	}

	a.log.Info(fmt.Sprintf("formatted %s", path))
	return true, nil
}

// List returns the manifest's requirements in declaration order, joined
// with the pinned versions when a fresh lockfile exists.
func (a *App) List(ctx context.Context, cwd, manifestOverride string) (ListResult, error) {
	_, path, err := a.locate(cwd, manifestOverride)
	if err != nil {
		return ListResult{}, err
	}

	m, issues, err := a.manifests.Load(path)
	if err != nil {
		return ListResult{}, err
	}
	if len(issues) > 0 {
		return ListResult{}, zerr.With(domain.ErrInvalidRequirement, "line", issues[0].Line)
	}

	res := ListResult{
		ManifestPath: path,
		Pins:         map[string]string{},
	}
	for req := range m.Requirements() {
		res.Requirements = append(res.Requirements, req)
	}

	store, err := a.lockStores.For(path)
	if err != nil {
		return ListResult{}, err
	}
	lockfile, err := store.Get()
	if err != nil {
		return ListResult{}, err
	}
	if lockfile != nil && lockfile.Fresh(manifest.Fingerprint(m)) {
		for name, pin := range lockfile.Packages {
			res.Pins[name] = pin.Version
		}
	}

	return res, nil
}

// locate loads the settings and determines which manifest to operate on:
// an explicit override wins, then the settings file, then discovery.
func (a *App) locate(cwd, override string) (domain.Settings, string, error) {
	settings, err := a.settings.Load(cwd)
	if err != nil {
		return domain.Settings{}, "", err
	}

	if override != "" {
		return settings, override, nil
	}
	if settings.ManifestPath != "" {
		return settings, settings.ManifestPath, nil
	}

	path, err := a.manifests.Discover(cwd)
	if err != nil {
		return domain.Settings{}, "", zerr.Wrap(err, domain.ErrNoManifestSpecified.Error())
	}
	return settings, path, nil
}
