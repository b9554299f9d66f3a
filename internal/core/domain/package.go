package domain

import "strings"

// Dependency is a declared dependency edge in package metadata: a package ID
// plus the version range the depending package accepts.
type Dependency struct {
	ID    string
	Range VersionRange
}

// Package is the resolver's view of a package: its identity and declared
// dependencies. Content is never loaded here; acquisition is delegated to
// the content store.
type Package struct {
	Identity     PackageIdentity
	Dependencies []Dependency
}

// DependsOn reports whether the package declares a dependency on the given
// package ID (case-insensitive), returning the declared range if so.
func (p Package) DependsOn(id string) (VersionRange, bool) {
	for _, dep := range p.Dependencies {
		if strings.EqualFold(dep.ID, id) {
			return dep.Range, true
		}
	}
	return VersionRange{}, false
}
