// Package domain contains the core domain models for package operations.
package domain

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// PackageIdentity identifies a single package at a single version.
// Identity comparison is case-insensitive on the ID and exact on the version.
type PackageIdentity struct {
	ID      string
	Version *semver.Version
}

// NewIdentity creates a PackageIdentity from an ID and a version string.
func NewIdentity(id, version string) (PackageIdentity, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return PackageIdentity{}, zerr.With(
			zerr.Wrap(err, ErrInvalidVersion.Error()),
			"version", version,
		)
	}
	return PackageIdentity{ID: id, Version: v}, nil
}

// ParseIdentity parses an "id@version" reference. The version part is
// optional; without it the returned identity has a nil Version.
func ParseIdentity(ref string) (PackageIdentity, error) {
	id, version, found := strings.Cut(ref, "@")
	if id == "" {
		return PackageIdentity{}, zerr.With(ErrInvalidVersion, "ref", ref)
	}
	if !found || version == "" {
		return PackageIdentity{ID: id}, nil
	}
	return NewIdentity(id, version)
}

// Key returns the case-normalized lookup key for the package ID.
func (p PackageIdentity) Key() string {
	return strings.ToLower(p.ID)
}

// Equal reports whether two identities name the same package version.
func (p PackageIdentity) Equal(other PackageIdentity) bool {
	if !strings.EqualFold(p.ID, other.ID) {
		return false
	}
	if p.Version == nil || other.Version == nil {
		return p.Version == other.Version
	}
	return p.Version.Equal(other.Version)
}

// SameID reports whether two identities name the same package, at any version.
func (p PackageIdentity) SameID(other PackageIdentity) bool {
	return strings.EqualFold(p.ID, other.ID)
}

// String renders the identity as "id@version".
func (p PackageIdentity) String() string {
	if p.Version == nil {
		return p.ID
	}
	return p.ID + "@" + p.Version.String()
}
