package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidVersion is returned when a version string cannot be parsed.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrInvalidRange is returned when a version range cannot be parsed.
	ErrInvalidRange = zerr.New("invalid version range")

	// ErrMissingPackage is returned when a requested package cannot be found in any configured source.
	ErrMissingPackage = zerr.New("package not found in any configured source")

	// ErrConflict is returned when two dependency paths require incompatible versions of the same package.
	ErrConflict = zerr.New("conflicting version requirements")

	// ErrDependencyStillRequired is returned when an uninstall target is still depended on by installed packages.
	ErrDependencyStillRequired = zerr.New("package is still required by installed packages")

	// ErrCycleDetected is returned when a cycle is detected while expanding the dependency graph.
	ErrCycleDetected = zerr.New("dependency cycle detected")

	// ErrReferenceExists is returned when installing a package the target already references at another version.
	ErrReferenceExists = zerr.New("project already references package")

	// ErrReferenceNotFound is returned when uninstalling a package the target does not reference.
	ErrReferenceNotFound = zerr.New("project does not reference package")

	// ErrExecutionFailed is returned when applying a resolved operation fails.
	ErrExecutionFailed = zerr.New("operation execution failed")

	// ErrExecutionCanceled is returned when a batch is halted by context cancellation.
	ErrExecutionCanceled = zerr.New("operation batch canceled")

	// ErrRollbackFailed is returned when unwinding an applied operation fails; state is inconsistent.
	ErrRollbackFailed = zerr.New("rollback failed, state may be inconsistent")

	// ErrStoreReadFailed is returned when the repository reference document cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read repository reference store")

	// ErrStoreWriteFailed is returned when the repository reference document cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write repository reference store")

	// ErrProjectReadFailed is returned when a project reference document cannot be read.
	ErrProjectReadFailed = zerr.New("failed to read project references")

	// ErrProjectWriteFailed is returned when a project reference document cannot be written.
	ErrProjectWriteFailed = zerr.New("failed to write project references")

	// ErrManifestParseFailed is returned when a feed package manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse package manifest")

	// ErrFeedReadFailed is returned when the feed directory cannot be read.
	ErrFeedReadFailed = zerr.New("failed to read package feed")

	// ErrContentWriteFailed is returned when package content cannot be laid out on disk.
	ErrContentWriteFailed = zerr.New("failed to write package content")

	// ErrSolutionNotFound is returned when no solution configuration can be located.
	ErrSolutionNotFound = zerr.New("could not find paktfile")

	// ErrProjectNotFound is returned when a named project is not part of the solution.
	ErrProjectNotFound = zerr.New("project not found in solution")

	// ErrNoRequests is returned when Resolve is called with an empty request list.
	ErrNoRequests = zerr.New("no operations requested")
)
