package ports

import "go.pakt.dev/pakt/internal/core/domain"

// Listener observes the execution of an action batch. Implementations must
// tolerate being called from the executor's goroutine and must not block.
//
//go:generate mockgen -source=listener.go -destination=mocks/mock_listener.go -package=mocks
type Listener interface {
	// OnBeforeInstall is called before an install operation is applied.
	OnBeforeInstall(op domain.ResolvedOperation)

	// OnAfterInstall is called after an install operation succeeded.
	OnAfterInstall(op domain.ResolvedOperation)

	// OnInstallError is called when an install operation failed.
	OnInstallError(op domain.ResolvedOperation, err error)

	// OnBeforeUninstall is called before an uninstall operation is applied.
	OnBeforeUninstall(op domain.ResolvedOperation)

	// OnAfterUninstall is called after an uninstall operation succeeded.
	OnAfterUninstall(op domain.ResolvedOperation)

	// OnUninstallError is called when an uninstall operation failed.
	OnUninstallError(op domain.ResolvedOperation, err error)
}

// NoopListener is a Listener that ignores every event. Callers that do not
// observe execution pass one explicitly instead of handling nil.
type NoopListener struct{}

var _ Listener = NoopListener{}

// OnBeforeInstall implements Listener.
func (NoopListener) OnBeforeInstall(domain.ResolvedOperation) {}

// OnAfterInstall implements Listener.
func (NoopListener) OnAfterInstall(domain.ResolvedOperation) {}

// OnInstallError implements Listener.
func (NoopListener) OnInstallError(domain.ResolvedOperation, error) {}

// OnBeforeUninstall implements Listener.
func (NoopListener) OnBeforeUninstall(domain.ResolvedOperation) {}

// OnAfterUninstall implements Listener.
func (NoopListener) OnAfterUninstall(domain.ResolvedOperation) {}

// OnUninstallError implements Listener.
func (NoopListener) OnUninstallError(domain.ResolvedOperation, error) {}
