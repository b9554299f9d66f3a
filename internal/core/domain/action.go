package domain

import "strings"

// PackageAction is the kind of a primitive package operation.
type PackageAction uint8

const (
	// ActionInstall installs a package into a target project.
	ActionInstall PackageAction = iota
	// ActionUninstall removes a package from a target project.
	ActionUninstall
)

// String returns the lowercase action name.
func (a PackageAction) String() string {
	switch a {
	case ActionInstall:
		return "install"
	case ActionUninstall:
		return "uninstall"
	default:
		return "unknown"
	}
}

// ResolvedOperation is one primitive action produced by resolution.
// TargetName identifies the project the operation applies to; the executor
// receives the concrete project handle alongside the batch. Immutable once
// produced.
type ResolvedOperation struct {
	Action     PackageAction
	Package    Package
	TargetName string
}

// String renders the operation for logs and error metadata.
func (op ResolvedOperation) String() string {
	return op.Action.String() + " " + op.Package.Identity.String() + " -> " + op.TargetName
}

// ActionBatch is the ordered action sequence for one resolved request.
// Invariants: installs of a dependency precede installs of its dependents,
// uninstalls of dependents precede uninstalls of their dependencies, and no
// two entries install different versions of the same ID into one target.
type ActionBatch struct {
	ops []ResolvedOperation
}

// NewActionBatch creates a batch from an already-ordered operation sequence.
func NewActionBatch(ops []ResolvedOperation) *ActionBatch {
	return &ActionBatch{ops: ops}
}

// Operations returns the operations in execution order. The returned slice
// must not be mutated.
func (b *ActionBatch) Operations() []ResolvedOperation {
	return b.ops
}

// Len returns the number of operations in the batch.
func (b *ActionBatch) Len() int {
	return len(b.ops)
}

// InstallOf returns the install operation for the given package ID and
// target, if the batch contains one.
func (b *ActionBatch) InstallOf(id, target string) (ResolvedOperation, bool) {
	for _, op := range b.ops {
		if op.Action == ActionInstall && op.TargetName == target &&
			strings.EqualFold(op.Package.Identity.ID, id) {
			return op, true
		}
	}
	return ResolvedOperation{}, false
}
