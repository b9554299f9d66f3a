package app

import (
	"fmt"

	"go.pakt.dev/pakt/internal/core/domain"
	"go.pakt.dev/pakt/internal/core/ports"
)

// logListener reports execution progress through the application logger.
type logListener struct {
	logger ports.Logger
}

var _ ports.Listener = logListener{}

func newLogListener(logger ports.Logger) logListener {
	return logListener{logger: logger}
}

func (l logListener) OnBeforeInstall(op domain.ResolvedOperation) {
	l.logger.Info(fmt.Sprintf("installing %s into %s", op.Package.Identity, op.TargetName))
}

func (l logListener) OnAfterInstall(op domain.ResolvedOperation) {
	l.logger.Info(fmt.Sprintf("installed %s", op.Package.Identity))
}

func (l logListener) OnInstallError(op domain.ResolvedOperation, err error) {
	l.logger.Warn(fmt.Sprintf("install of %s failed: %v", op.Package.Identity, err))
}

func (l logListener) OnBeforeUninstall(op domain.ResolvedOperation) {
	l.logger.Info(fmt.Sprintf("uninstalling %s from %s", op.Package.Identity, op.TargetName))
}

func (l logListener) OnAfterUninstall(op domain.ResolvedOperation) {
	l.logger.Info(fmt.Sprintf("uninstalled %s", op.Package.Identity))
}

func (l logListener) OnUninstallError(op domain.ResolvedOperation, err error) {
	l.logger.Warn(fmt.Sprintf("uninstall of %s failed: %v", op.Package.Identity, err))
}
