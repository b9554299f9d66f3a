// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/Masterminds/semver/v3"
	"go.pakt.dev/pakt/internal/core/domain"
)

// Source is a configured package feed the resolver queries for package
// metadata. Implementations must be safe for concurrent reads.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type Source interface {
	// FindPackage returns the metadata for an exact package version.
	// Returns nil, nil if the feed does not carry it.
	FindPackage(ctx context.Context, id string, version *semver.Version) (*domain.Package, error)

	// FindPackages returns all versions of a package carried by the feed,
	// sorted by ascending version. Returns an empty slice if none exist.
	FindPackages(ctx context.Context, id string) ([]domain.Package, error)
}
