package resolver_test

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.pakt.dev/pakt/internal/core/domain"
	"go.pakt.dev/pakt/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// stubSource serves canned package metadata, ascending by version.
type stubSource struct {
	packages map[string][]domain.Package
}

func newStubSource(packages ...domain.Package) *stubSource {
	s := &stubSource{packages: make(map[string][]domain.Package)}
	for _, p := range packages {
		key := strings.ToLower(p.Identity.ID)
		s.packages[key] = append(s.packages[key], p)
	}
	for key := range s.packages {
		list := s.packages[key]
		sort.Slice(list, func(i, j int) bool {
			return list[i].Identity.Version.LessThan(list[j].Identity.Version)
		})
	}
	return s
}

func (s *stubSource) FindPackage(_ context.Context, id string, version *semver.Version) (*domain.Package, error) {
	for _, p := range s.packages[strings.ToLower(id)] {
		if p.Identity.Version.Equal(version) {
			return &p, nil
		}
	}
	return nil, nil
}

func (s *stubSource) FindPackages(_ context.Context, id string) ([]domain.Package, error) {
	return s.packages[strings.ToLower(id)], nil
}

// stubProject is an in-memory project reference surface.
type stubProject struct {
	name string
	refs []domain.PackageIdentity
}

func (p *stubProject) Name() string           { return p.name }
func (p *stubProject) RepositoryPath() string { return p.name + "/packages.config" }

func (p *stubProject) AddReference(pkg domain.PackageIdentity) error {
	p.refs = append(p.refs, pkg)
	return nil
}

func (p *stubProject) RemoveReference(pkg domain.PackageIdentity) error {
	for i, ref := range p.refs {
		if ref.Equal(pkg) {
			p.refs = append(p.refs[:i], p.refs[i+1:]...)
			return nil
		}
	}
	return domain.ErrReferenceNotFound
}

func (p *stubProject) Reference(id string) (domain.PackageIdentity, bool) {
	for _, ref := range p.refs {
		if strings.EqualFold(ref.ID, id) {
			return ref, true
		}
	}
	return domain.PackageIdentity{}, false
}

func (p *stubProject) References() ([]domain.PackageIdentity, error) {
	return append([]domain.PackageIdentity(nil), p.refs...), nil
}

func pkg(t *testing.T, id, version string, deps ...domain.Dependency) domain.Package {
	t.Helper()
	identity, err := domain.NewIdentity(id, version)
	require.NoError(t, err)
	return domain.Package{Identity: identity, Dependencies: deps}
}

func dep(t *testing.T, id, rng string) domain.Dependency {
	t.Helper()
	r, err := domain.ParseRange(rng)
	require.NoError(t, err)
	return domain.Dependency{ID: id, Range: r}
}

func ident(t *testing.T, id, version string) domain.PackageIdentity {
	t.Helper()
	identity, err := domain.NewIdentity(id, version)
	require.NoError(t, err)
	return identity
}

func opStrings(batch *domain.ActionBatch) []string {
	ops := batch.Operations()
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.Action.String() + " " + op.Package.Identity.String()
	}
	return out
}

func TestResolver_InstallDependencyOrdering(t *testing.T) {
	source := newStubSource(
		pkg(t, "A", "1.0.0", dep(t, "B", "[1.0.0,2.0.0)")),
		pkg(t, "B", "1.0.0", dep(t, "C", "[1.0.0,2.0.0)")),
		pkg(t, "C", "1.0.0"),
	)
	target := &stubProject{name: "App"}

	batch, err := resolver.New(source).Resolve(context.Background(), []resolver.Request{
		{Action: domain.ActionInstall, ID: "A", Target: target},
	}, resolver.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"install C@1.0.0",
		"install B@1.0.0",
		"install A@1.0.0",
	}, opStrings(batch))
}

func TestResolver_SharedDependencyInstalledOnce(t *testing.T) {
	source := newStubSource(
		pkg(t, "A", "1.0.0", dep(t, "C", "[1.0.0,2.0.0)")),
		pkg(t, "B", "1.0.0", dep(t, "C", "[1.0.0,2.0.0)")),
		pkg(t, "C", "1.5.0"),
	)
	target := &stubProject{name: "App"}

	batch, err := resolver.New(source).Resolve(context.Background(), []resolver.Request{
		{Action: domain.ActionInstall, ID: "A", Target: target},
		{Action: domain.ActionInstall, ID: "B", Target: target},
	}, resolver.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"install C@1.5.0",
		"install A@1.0.0",
		"install B@1.0.0",
	}, opStrings(batch))
}

func TestResolver_Conflict(t *testing.T) {
	source := newStubSource(
		pkg(t, "A", "1.0.0", dep(t, "C", "[1.0.0,2.0.0)")),
		pkg(t, "B", "1.0.0", dep(t, "C", "[2.0.0,3.0.0)")),
		pkg(t, "C", "1.5.0"),
		pkg(t, "C", "2.5.0"),
	)
	target := &stubProject{name: "App"}

	_, err := resolver.New(source).Resolve(context.Background(), []resolver.Request{
		{Action: domain.ActionInstall, ID: "A", Target: target},
		{Action: domain.ActionInstall, ID: "B", Target: target},
	}, resolver.Options{})
	require.Error(t, err)

	assert.ErrorContains(t, err, domain.ErrConflict.Error())

	// Both offending constraints must be reported.
	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T: %v", err, err)
	meta := zErr.Metadata()
	assert.Equal(t, "[1.0.0,2.0.0)", meta["constraint"])
	assert.Equal(t, "[2.0.0,3.0.0)", meta["conflicting_constraint"])
}

func TestResolver_MissingPackage(t *testing.T) {
	source := newStubSource(pkg(t, "A", "1.0.0", dep(t, "Ghost", "[1.0.0,)")))
	target := &stubProject{name: "App"}

	tests := []struct {
		name string
		id   string
	}{
		{name: "requested package absent", id: "Nope"},
		{name: "dependency absent", id: "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolver.New(source).Resolve(context.Background(), []resolver.Request{
				{Action: domain.ActionInstall, ID: tt.id, Target: target},
			}, resolver.Options{})
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrMissingPackage.Error())
		})
	}
}

func TestResolver_Cycle(t *testing.T) {
	source := newStubSource(
		pkg(t, "A", "1.0.0", dep(t, "B", "[1.0.0,)")),
		pkg(t, "B", "1.0.0", dep(t, "A", "[1.0.0,)")),
	)
	target := &stubProject{name: "App"}

	_, err := resolver.New(source).Resolve(context.Background(), []resolver.Request{
		{Action: domain.ActionInstall, ID: "A", Target: target},
	}, resolver.Options{})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCycleDetected.Error())
}

func TestResolver_SelectionPolicy(t *testing.T) {
	source := newStubSource(
		pkg(t, "A", "1.0.0", dep(t, "B", "[1.0.0,2.0.0)")),
		pkg(t, "B", "1.0.0"),
		pkg(t, "B", "1.5.0"),
		pkg(t, "B", "1.9.0"),
		pkg(t, "B", "2.0.0"),
	)

	tests := []struct {
		name      string
		selection resolver.SelectionPolicy
		want      string
	}{
		{name: "lowest is the default", selection: resolver.SelectionLowest, want: "B@1.0.0"},
		{name: "highest picks the top of the range", selection: resolver.SelectionHighest, want: "B@1.9.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := &stubProject{name: "App"}
			batch, err := resolver.New(source).Resolve(context.Background(), []resolver.Request{
				{Action: domain.ActionInstall, ID: "A", Target: target},
			}, resolver.Options{Selection: tt.selection})
			require.NoError(t, err)

			op, ok := batch.InstallOf("B", "App")
			require.True(t, ok)
			assert.Equal(t, tt.want, op.Package.Identity.String())
		})
	}
}

func TestResolver_Prerelease(t *testing.T) {
	source := newStubSource(
		pkg(t, "A", "1.0.0", dep(t, "B", "[1.0.0,3.0.0)")),
		pkg(t, "B", "2.0.0-beta.1"),
	)

	t.Run("prerelease excluded by default", func(t *testing.T) {
		target := &stubProject{name: "App"}
		_, err := resolver.New(source).Resolve(context.Background(), []resolver.Request{
			{Action: domain.ActionInstall, ID: "A", Target: target},
		}, resolver.Options{})
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrMissingPackage.Error())
	})

	t.Run("prerelease opt-in", func(t *testing.T) {
		target := &stubProject{name: "App"}
		batch, err := resolver.New(source).Resolve(context.Background(), []resolver.Request{
			{Action: domain.ActionInstall, ID: "A", Target: target},
		}, resolver.Options{Prerelease: true})
		require.NoError(t, err)

		op, ok := batch.InstallOf("B", "App")
		require.True(t, ok)
		assert.Equal(t, "2.0.0-beta.1", op.Package.Identity.Version.String())
	})
}

func TestResolver_ExistingReferenceWins(t *testing.T) {
	source := newStubSource(
		pkg(t, "A", "1.0.0", dep(t, "C", "[1.0.0,2.0.0)")),
		pkg(t, "C", "1.9.0"),
	)
	target := &stubProject{
		name: "App",
		refs: []domain.PackageIdentity{ident(t, "C", "1.2.0")},
	}

	batch, err := resolver.New(source).Resolve(context.Background(), []resolver.Request{
		{Action: domain.ActionInstall, ID: "A", Target: target},
	}, resolver.Options{})
	require.NoError(t, err)

	// The satisfying installed version is kept, not reinstalled.
	assert.Equal(t, []string{"install A@1.0.0"}, opStrings(batch))
}

func TestResolver_ExistingReferenceConflicts(t *testing.T) {
	source := newStubSource(
		pkg(t, "A", "1.0.0", dep(t, "C", "[2.0.0,3.0.0)")),
		pkg(t, "C", "2.5.0"),
	)
	target := &stubProject{
		name: "App",
		refs: []domain.PackageIdentity{ident(t, "C", "1.2.0")},
	}

	_, err := resolver.New(source).Resolve(context.Background(), []resolver.Request{
		{Action: domain.ActionInstall, ID: "A", Target: target},
	}, resolver.Options{})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConflict.Error())
}

func TestResolver_InstallAlreadyReferenced(t *testing.T) {
	source := newStubSource(
		pkg(t, "A", "1.0.0"),
		pkg(t, "A", "2.0.0"),
	)

	t.Run("same version is a no-op", func(t *testing.T) {
		target := &stubProject{
			name: "App",
			refs: []domain.PackageIdentity{ident(t, "A", "1.0.0")},
		}
		batch, err := resolver.New(source).Resolve(context.Background(), []resolver.Request{
			{Action: domain.ActionInstall, ID: "A", Version: semver.MustParse("1.0.0"), Target: target},
		}, resolver.Options{})
		require.NoError(t, err)
		assert.Zero(t, batch.Len())
	})

	t.Run("other version is rejected", func(t *testing.T) {
		target := &stubProject{
			name: "App",
			refs: []domain.PackageIdentity{ident(t, "A", "1.0.0")},
		}
		_, err := resolver.New(source).Resolve(context.Background(), []resolver.Request{
			{Action: domain.ActionInstall, ID: "A", Version: semver.MustParse("2.0.0"), Target: target},
		}, resolver.Options{})
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrReferenceExists.Error())
	})
}

func TestResolver_IgnoreDependencies(t *testing.T) {
	source := newStubSource(
		pkg(t, "A", "1.0.0", dep(t, "B", "[1.0.0,)")),
		pkg(t, "B", "1.0.0"),
	)
	target := &stubProject{name: "App"}

	batch, err := resolver.New(source).Resolve(context.Background(), []resolver.Request{
		{Action: domain.ActionInstall, ID: "A", Target: target},
	}, resolver.Options{IgnoreDependencies: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"install A@1.0.0"}, opStrings(batch))
}

func TestResolver_NoRequests(t *testing.T) {
	_, err := resolver.New(newStubSource()).Resolve(context.Background(), nil, resolver.Options{})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrNoRequests.Error())
}

func TestResolver_InstallsPrecedeUninstalls(t *testing.T) {
	source := newStubSource(
		pkg(t, "X", "1.0.0"),
		pkg(t, "Y", "1.0.0"),
	)
	target := &stubProject{
		name: "App",
		refs: []domain.PackageIdentity{ident(t, "Y", "1.0.0")},
	}

	batch, err := resolver.New(source).Resolve(context.Background(), []resolver.Request{
		{Action: domain.ActionUninstall, ID: "Y", Target: target},
		{Action: domain.ActionInstall, ID: "X", Target: target},
	}, resolver.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"install X@1.0.0",
		"uninstall Y@1.0.0",
	}, opStrings(batch))
}
