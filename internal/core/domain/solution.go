package domain

import "path/filepath"

// Solution describes one solution root: where its feed, shared package
// directory, and project reference documents live. It is produced by the
// solution loader and consumed by the app when wiring per-solution adapters.
type Solution struct {
	// Root is the absolute solution root directory.
	Root string

	// FeedDir is the package feed directory, absolute.
	FeedDir string

	// Projects maps project names to their packages.config paths,
	// relative to Root.
	Projects map[string]string
}

// PackagesDir returns the shared package content directory.
func (s Solution) PackagesDir() string {
	return PackagesPath(s.Root)
}

// ProjectPath returns the absolute packages.config path for a named project.
func (s Solution) ProjectPath(name string) (string, bool) {
	rel, ok := s.Projects[name]
	if !ok {
		return "", false
	}
	return filepath.Join(s.Root, rel), true
}
