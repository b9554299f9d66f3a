package ports

import (
	"context"

	"go.pakt.dev/pakt/internal/core/domain"
)

// ContentStore manages physical package content in the shared repository.
// Archive acquisition and extraction formats are the implementation's
// concern; the core only asks for content to exist or be removed.
//
//go:generate mockgen -source=content_store.go -destination=mocks/mock_content_store.go -package=mocks
type ContentStore interface {
	// Acquire ensures the package content is present in the store.
	// Acquiring content that is already present is a no-op.
	Acquire(ctx context.Context, pkg domain.PackageIdentity) error

	// Remove deletes the package content from the store.
	Remove(ctx context.Context, pkg domain.PackageIdentity) error

	// Contains reports whether the package content is present.
	Contains(pkg domain.PackageIdentity) bool
}
