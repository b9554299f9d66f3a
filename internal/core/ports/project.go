package ports

import "go.pakt.dev/pakt/internal/core/domain"

// Project is the narrow per-project surface the resolver and executor
// operate against. The mechanics behind it (IDE project file mutation)
// are out of scope for the core.
//
//go:generate mockgen -source=project.go -destination=mocks/mock_project.go -package=mocks
type Project interface {
	// Name returns the project's display name.
	Name() string

	// RepositoryPath returns the path of the project's package reference
	// document, as it should appear in the solution repository store.
	RepositoryPath() string

	// AddReference records that the project depends on the given package.
	AddReference(pkg domain.PackageIdentity) error

	// RemoveReference removes the project's dependency on the given package.
	RemoveReference(pkg domain.PackageIdentity) error

	// Reference returns the referenced version of a package ID, if any.
	Reference(id string) (domain.PackageIdentity, bool)

	// References returns all current package references.
	References() ([]domain.PackageIdentity, error)
}
