package domain

import "path/filepath"

const (
	// RepositoriesFileName is the name of the per-solution repository reference document.
	RepositoriesFileName = "repositories.config"

	// ProjectFileName is the name of the per-project package reference document.
	ProjectFileName = "packages.config"

	// SolutionFileName is the name of the solution configuration file.
	SolutionFileName = "pakt.yaml"

	// PackagesDirName is the name of the shared package content directory.
	PackagesDirName = "packages"

	// FeedDirName is the default name of the local package feed directory.
	FeedDirName = "feed"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// RepositoriesPath returns the repository reference document path for a solution root.
func RepositoriesPath(root string) string {
	return filepath.Join(root, PackagesDirName, RepositoriesFileName)
}

// PackagesPath returns the shared package content directory for a solution root.
func PackagesPath(root string) string {
	return filepath.Join(root, PackagesDirName)
}
