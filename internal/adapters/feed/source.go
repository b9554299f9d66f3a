// Package feed implements a package source over a local directory of YAML
// package manifests, one file per package version.
package feed

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/cespare/xxhash/v2"
	"go.pakt.dev/pakt/internal/core/domain"
	"go.pakt.dev/pakt/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Source implements ports.Source over a feed directory. Parsed manifests
// are cached keyed by content fingerprint, so repeated resolver queries do
// not re-parse unchanged files. Safe for concurrent reads.
type Source struct {
	dir    string
	logger ports.Logger

	mu    sync.Mutex
	cache map[string]cachedManifest // manifest path -> parsed
}

type cachedManifest struct {
	sum uint64
	pkg domain.Package
}

var _ ports.Source = (*Source)(nil)

// New creates a Source over the given feed directory.
func New(dir string, logger ports.Logger) *Source {
	return &Source{
		dir:    dir,
		logger: logger,
		cache:  make(map[string]cachedManifest),
	}
}

// FindPackage returns the metadata for an exact package version, or
// nil, nil if the feed does not carry it.
func (s *Source) FindPackage(ctx context.Context, id string, version *semver.Version) (*domain.Package, error) {
	packages, err := s.FindPackages(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range packages {
		if packages[i].Identity.Version.Equal(version) {
			return &packages[i], nil
		}
	}
	return nil, nil
}

// FindPackages returns every version of a package the feed carries, sorted
// ascending by version.
func (s *Source) FindPackages(ctx context.Context, id string) ([]domain.Package, error) {
	all, err := s.scan(ctx)
	if err != nil {
		return nil, err
	}

	var packages []domain.Package
	for _, pkg := range all {
		if strings.EqualFold(pkg.Identity.ID, id) {
			packages = append(packages, pkg)
		}
	}

	sort.Slice(packages, func(i, j int) bool {
		return packages[i].Identity.Version.LessThan(packages[j].Identity.Version)
	})
	return packages, nil
}

// scan parses every manifest in the feed directory concurrently, reusing
// cached parses whose content fingerprint is unchanged. A manifest that
// fails to parse is skipped with a warning; one bad file does not take the
// whole feed down.
func (s *Source) scan(ctx context.Context) ([]domain.Package, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrFeedReadFailed.Error()),
			"feed", s.dir,
		)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		paths = append(paths, filepath.Join(s.dir, entry.Name()))
	}

	packages := make([]domain.Package, len(paths))
	valid := make([]bool, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return zerr.With(
					zerr.Wrap(err, domain.ErrFeedReadFailed.Error()),
					"manifest", path,
				)
			}

			sum := xxhash.Sum64(data)
			s.mu.Lock()
			cached, ok := s.cache[path]
			s.mu.Unlock()
			if ok && cached.sum == sum {
				packages[i] = cached.pkg
				valid[i] = true
				return nil
			}

			pkg, err := parseManifest(path, data)
			if err != nil {
				s.logger.Warn("skipping unreadable manifest: " + path)
				return nil
			}

			s.mu.Lock()
			s.cache[path] = cachedManifest{sum: sum, pkg: pkg}
			s.mu.Unlock()

			packages[i] = pkg
			valid[i] = true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := packages[:0]
	for i, ok := range valid {
		if ok {
			result = append(result, packages[i])
		}
	}
	return result, nil
}
