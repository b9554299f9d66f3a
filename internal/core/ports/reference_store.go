package ports

import "go.pakt.dev/pakt/internal/core/domain"

// ReferenceStore is the per-solution registry of package repositories in
// use. It answers whether a package is still referenced anywhere so shared
// content is never removed while a project depends on it.
//
// Single-writer model: callers serialize mutating access per solution.
//
//go:generate mockgen -source=reference_store.go -destination=mocks/mock_reference_store.go -package=mocks
type ReferenceStore interface {
	// Register idempotently records a repository document path.
	Register(path string) error

	// Unregister removes a repository document path if present.
	Unregister(path string) error

	// Repositories lists registered repository paths in normalized form.
	// Listing prunes entries whose target no longer exists and duplicate
	// entries, persisting the pruned state immediately.
	Repositories() ([]string, error)

	// IsReferenced reports whether any registered repository currently
	// lists the given package.
	IsReferenced(pkg domain.PackageIdentity) (bool, error)
}
