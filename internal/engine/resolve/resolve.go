// Package resolve implements manifest resolution against a package index.
package resolve

import (
	"context"
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/repin-dev/repin/internal/core/domain"
	"github.com/repin-dev/repin/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// maxConcurrent bounds parallel index lookups during a resolution run.
const maxConcurrent = 8

// Engine resolves every manifest requirement to the newest release
// satisfying its constraints and produces a lockfile.
type Engine struct {
	index     ports.PackageIndex
	telemetry ports.Telemetry
	log       ports.Logger
	clock     clockwork.Clock
}

// New creates a new resolve Engine.
func New(index ports.PackageIndex, telemetry ports.Telemetry, log ports.Logger, clock clockwork.Clock) *Engine {
	return &Engine{
		index:     index,
		telemetry: telemetry,
		log:       log,
		clock:     clock,
	}
}

// Resolve pins every requirement of the manifest and returns the resulting
// lockfile, stamped with the manifest hash so later runs can detect drift.
// Lookups run in parallel, one telemetry vertex per package.
func (e *Engine) Resolve(ctx context.Context, m *domain.Manifest, manifestHash string, settings domain.Settings) (*domain.Lockfile, error) {
	lockfile := domain.NewLockfile(manifestHash, e.clock.Now().UTC())

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for req := range m.Requirements() {
		g.Go(func() error {
			pin, err := e.resolveOne(gctx, req, settings)
			if err != nil {
				return err
			}

			mu.Lock()
			lockfile.Pin(pin)
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()

	// End the recording session so the progress renderer flushes.
	if cerr := e.telemetry.Close(); cerr != nil {
		e.log.Warn(fmt.Sprintf("failed to close telemetry: %v", cerr))
	}

	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrResolutionFailed.Error())
	}

	e.log.Info(fmt.Sprintf("resolved %d packages", lockfile.Len()))
	return lockfile, nil
}

// resolveOne pins a single requirement.
func (e *Engine) resolveOne(ctx context.Context, req *domain.Requirement, settings domain.Settings) (domain.PinnedPackage, error) {
	name := req.CanonicalName()

	vctx, vertex := e.telemetry.Record(ctx, name)
	pin, err := e.pickVersion(vctx, req, settings)
	if err == nil {
		_, _ = fmt.Fprintf(vertex.Stdout(), "%s\n", pin.Version)
	}
	vertex.Complete(err)

	return pin, err
}

// pickVersion selects the newest release satisfying the requirement.
// Stable releases win over pre-releases; a pre-release is only chosen when
// the settings allow it or the requirement pins one exactly.
func (e *Engine) pickVersion(ctx context.Context, req *domain.Requirement, settings domain.Settings) (domain.PinnedPackage, error) {
	name := req.CanonicalName()

	releases, err := e.index.Releases(ctx, name)
	if err != nil {
		return domain.PinnedPackage{}, zerr.With(err, "package", name)
	}

	allowPre := settings.AllowPrereleases || pinsPrerelease(req)

	var best *domain.Version
	var bestPre *domain.Version
	for i := range releases {
		v := releases[i]
		if !req.MatchesAll(v) {
			continue
		}
		if v.IsPreRelease() {
			bestPre = &releases[i]
			continue
		}
		best = &releases[i]
	}

	if best == nil && allowPre {
		best = bestPre
	}
	if best == nil {
		notFound := zerr.With(domain.ErrNoMatchingVersion, "package", name)
		return domain.PinnedPackage{}, zerr.With(notFound, "constraint", req.ConstraintString())
	}

	return domain.PinnedPackage{
		Name:      name,
		Version:   best.String(),
		Requested: req.ConstraintString(),
	}, nil
}

// pinsPrerelease reports whether the requirement explicitly pins a
// pre-release version with an exact match.
func pinsPrerelease(req *domain.Requirement) bool {
	for _, s := range req.Specifiers {
		if s.Op != domain.OpEqual || s.IsWildcard() {
			continue
		}
		if s.Version().IsPreRelease() {
			return true
		}
	}
	return false
}
