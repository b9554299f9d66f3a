package feed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.pakt.dev/pakt/internal/adapters/feed"
	"go.pakt.dev/pakt/internal/core/ports"
	"go.pakt.dev/pakt/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func testLogger(t *testing.T) ports.Logger {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSource_FindPackages(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "foo.1.0.0.yaml", "id: Foo\nversion: 1.0.0\n")
	writeManifest(t, dir, "foo.2.0.0.yaml", "id: Foo\nversion: 2.0.0\n")
	writeManifest(t, dir, "foo.1.5.0.yaml", "id: Foo\nversion: 1.5.0\n")
	writeManifest(t, dir, "bar.1.0.0.yaml", "id: Bar\nversion: 1.0.0\n")

	source := feed.New(dir, testLogger(t))
	packages, err := source.FindPackages(context.Background(), "foo")
	require.NoError(t, err)

	require.Len(t, packages, 3, "lookup is case-insensitive")
	assert.Equal(t, "1.0.0", packages[0].Identity.Version.String())
	assert.Equal(t, "1.5.0", packages[1].Identity.Version.String())
	assert.Equal(t, "2.0.0", packages[2].Identity.Version.String())
}

func TestSource_FindPackage(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "foo.1.0.0.yaml", `id: Foo
version: 1.0.0
dependencies:
  - id: Bar
    range: "[1.0.0,2.0.0)"
`)

	source := feed.New(dir, testLogger(t))

	pkg, err := source.FindPackage(context.Background(), "Foo", semver.MustParse("1.0.0"))
	require.NoError(t, err)
	require.NotNil(t, pkg)
	require.Len(t, pkg.Dependencies, 1)
	assert.Equal(t, "Bar", pkg.Dependencies[0].ID)
	assert.Equal(t, "[1.0.0,2.0.0)", pkg.Dependencies[0].Range.String())

	absent, err := source.FindPackage(context.Background(), "Foo", semver.MustParse("9.9.9"))
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestSource_AbsentFeedDirIsEmpty(t *testing.T) {
	source := feed.New(filepath.Join(t.TempDir(), "nope"), testLogger(t))

	packages, err := source.FindPackages(context.Background(), "anything")
	require.NoError(t, err)
	assert.Empty(t, packages)
}

func TestSource_BadManifestSkipped(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "good.yaml", "id: Good\nversion: 1.0.0\n")
	writeManifest(t, dir, "bad.yaml", "id: [broken\n")
	writeManifest(t, dir, "incomplete.yaml", "id: NoVersion\n")

	source := feed.New(dir, testLogger(t))

	packages, err := source.FindPackages(context.Background(), "Good")
	require.NoError(t, err)
	assert.Len(t, packages, 1)

	packages, err = source.FindPackages(context.Background(), "NoVersion")
	require.NoError(t, err)
	assert.Empty(t, packages)
}

func TestSource_CacheFollowsContent(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "foo.yaml", "id: Foo\nversion: 1.0.0\n")

	source := feed.New(dir, testLogger(t))

	packages, err := source.FindPackages(context.Background(), "Foo")
	require.NoError(t, err)
	require.Len(t, packages, 1)

	// Unchanged content is served from the fingerprint cache.
	packages, err = source.FindPackages(context.Background(), "Foo")
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, "1.0.0", packages[0].Identity.Version.String())

	// Rewriting the manifest invalidates the cached parse.
	require.NoError(t, os.WriteFile(path, []byte("id: Foo\nversion: 1.1.0\n"), 0o644))
	packages, err = source.FindPackages(context.Background(), "Foo")
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, "1.1.0", packages[0].Identity.Version.String())
}

func TestSource_IgnoresNonManifestFiles(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "foo.yaml", "id: Foo\nversion: 1.0.0\n")
	writeManifest(t, dir, "README.md", "not a manifest")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o750))

	source := feed.New(dir, testLogger(t))
	packages, err := source.FindPackages(context.Background(), "Foo")
	require.NoError(t, err)
	assert.Len(t, packages, 1)
}
