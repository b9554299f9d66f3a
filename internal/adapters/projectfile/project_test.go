package projectfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.pakt.dev/pakt/internal/adapters/projectfile"
	"go.pakt.dev/pakt/internal/core/domain"
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

func newTestProject(t *testing.T) *projectfile.Project {
	t.Helper()
	path := filepath.Join(t.TempDir(), "App", domain.ProjectFileName)
	return projectfile.NewProject("App", path, testLogger(t))
}

func mustIdentity(t *testing.T, id, version string) domain.PackageIdentity {
	t.Helper()
	pkg, err := domain.NewIdentity(id, version)
	require.NoError(t, err)
	return pkg
}

func TestProject_AddReference(t *testing.T) {
	project := newTestProject(t)
	foo := mustIdentity(t, "Foo", "1.0.0")

	require.NoError(t, project.AddReference(foo))

	ref, ok := project.Reference("foo")
	require.True(t, ok, "lookup is case-insensitive")
	assert.True(t, ref.Equal(foo))
}

func TestProject_AddReferenceSameVersionNoop(t *testing.T) {
	project := newTestProject(t)
	foo := mustIdentity(t, "Foo", "1.0.0")

	require.NoError(t, project.AddReference(foo))
	require.NoError(t, project.AddReference(foo))

	refs, err := project.References()
	require.NoError(t, err)
	assert.Len(t, refs, 1)
}

func TestProject_AddReferenceOtherVersionRejected(t *testing.T) {
	project := newTestProject(t)

	require.NoError(t, project.AddReference(mustIdentity(t, "Foo", "1.0.0")))
	err := project.AddReference(mustIdentity(t, "Foo", "2.0.0"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrReferenceExists.Error())
}

func TestProject_RemoveReference(t *testing.T) {
	project := newTestProject(t)
	foo := mustIdentity(t, "Foo", "1.0.0")

	require.NoError(t, project.AddReference(foo))
	require.NoError(t, project.RemoveReference(foo))

	_, ok := project.Reference("Foo")
	assert.False(t, ok)

	err := project.RemoveReference(foo)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrReferenceNotFound.Error())
}

func TestProject_ReferencesSorted(t *testing.T) {
	project := newTestProject(t)

	require.NoError(t, project.AddReference(mustIdentity(t, "Zeta", "1.0.0")))
	require.NoError(t, project.AddReference(mustIdentity(t, "alpha", "1.0.0")))
	require.NoError(t, project.AddReference(mustIdentity(t, "Mid", "1.0.0")))

	refs, err := project.References()
	require.NoError(t, err)
	require.Len(t, refs, 3)
	assert.Equal(t, "alpha", refs[0].ID)
	assert.Equal(t, "Mid", refs[1].ID)
	assert.Equal(t, "Zeta", refs[2].ID)
}

func TestProject_AbsentDocumentIsEmpty(t *testing.T) {
	project := newTestProject(t)

	refs, err := project.References()
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestProject_UnparsableEntriesSkipped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, domain.ProjectFileName)
	content := `<packages>
  <package id="Good" version="1.0.0"></package>
  <package id="Bad" version="not-a-version"></package>
</packages>
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	project := projectfile.NewProject("App", path, testLogger(t))
	refs, err := project.References()
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "Good", refs[0].ID)
}

func TestReadDocument_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, domain.ProjectFileName)
	require.NoError(t, os.WriteFile(path, []byte("<packages><broken"), 0o644))

	doc, err := projectfile.ReadDocument(path)
	require.NoError(t, err)
	assert.Empty(t, doc.Packages)
}

func TestDocument_UnknownAttributesIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, domain.ProjectFileName)
	content := `<packages>
  <package id="Foo" version="1.0.0" targetFramework="net48" />
</packages>
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	doc, err := projectfile.ReadDocument(path)
	require.NoError(t, err)
	require.Len(t, doc.Packages, 1)
	assert.True(t, doc.Contains(mustIdentity(t, "foo", "1.0.0")))
}
