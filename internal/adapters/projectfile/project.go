package projectfile

import (
	"sort"
	"strings"

	"go.pakt.dev/pakt/internal/core/domain"
	"go.pakt.dev/pakt/internal/core/ports"
	"go.trai.ch/zerr"
)

// Project implements ports.Project over a packages.config file. Every
// mutation loads the document, changes it in memory, and rewrites it whole.
type Project struct {
	name   string
	path   string
	logger ports.Logger
}

var _ ports.Project = (*Project)(nil)

// NewProject creates a file-backed project named name whose reference
// document lives at path.
func NewProject(name, path string, logger ports.Logger) *Project {
	return &Project{name: name, path: path, logger: logger}
}

// Name returns the project's display name.
func (p *Project) Name() string {
	return p.name
}

// RepositoryPath returns the packages.config path registered in the
// solution repository store.
func (p *Project) RepositoryPath() string {
	return p.path
}

// AddReference records a package reference. Re-adding the referenced
// version is a no-op; a different version is rejected.
func (p *Project) AddReference(pkg domain.PackageIdentity) error {
	doc, err := ReadDocument(p.path)
	if err != nil {
		return err
	}

	for _, entry := range doc.Packages {
		if !strings.EqualFold(entry.ID, pkg.ID) {
			continue
		}
		if entry.Version == pkg.Version.String() {
			return nil
		}
		return zerr.With(
			zerr.With(
				zerr.With(domain.ErrReferenceExists, "package", pkg.ID),
				"referenced", entry.Version,
			),
			"requested", pkg.Version.String(),
		)
	}

	doc.Packages = append(doc.Packages, PackageEntry{
		ID:      pkg.ID,
		Version: pkg.Version.String(),
	})
	sort.Slice(doc.Packages, func(i, j int) bool {
		return strings.ToLower(doc.Packages[i].ID) < strings.ToLower(doc.Packages[j].ID)
	})

	p.logger.Debug("adding reference " + pkg.String() + " to " + p.name)
	return WriteDocument(p.path, doc)
}

// RemoveReference removes a package reference if present.
func (p *Project) RemoveReference(pkg domain.PackageIdentity) error {
	doc, err := ReadDocument(p.path)
	if err != nil {
		return err
	}

	kept := doc.Packages[:0]
	removed := false
	for _, entry := range doc.Packages {
		if strings.EqualFold(entry.ID, pkg.ID) && entry.Version == pkg.Version.String() {
			removed = true
			continue
		}
		kept = append(kept, entry)
	}
	if !removed {
		return zerr.With(domain.ErrReferenceNotFound, "package", pkg.String())
	}
	doc.Packages = kept

	p.logger.Debug("removing reference " + pkg.String() + " from " + p.name)
	return WriteDocument(p.path, doc)
}

// Reference returns the referenced version of a package ID, if any.
func (p *Project) Reference(id string) (domain.PackageIdentity, bool) {
	doc, err := ReadDocument(p.path)
	if err != nil {
		return domain.PackageIdentity{}, false
	}

	for _, entry := range doc.Packages {
		if !strings.EqualFold(entry.ID, id) {
			continue
		}
		pkg, err := domain.NewIdentity(entry.ID, entry.Version)
		if err != nil {
			return domain.PackageIdentity{}, false
		}
		return pkg, true
	}
	return domain.PackageIdentity{}, false
}

// References returns all current package references.
func (p *Project) References() ([]domain.PackageIdentity, error) {
	doc, err := ReadDocument(p.path)
	if err != nil {
		return nil, err
	}

	refs := make([]domain.PackageIdentity, 0, len(doc.Packages))
	for _, entry := range doc.Packages {
		pkg, err := domain.NewIdentity(entry.ID, entry.Version)
		if err != nil {
			// Entries that stopped parsing are skipped, not fatal.
			continue
		}
		refs = append(refs, pkg)
	}
	return refs, nil
}
