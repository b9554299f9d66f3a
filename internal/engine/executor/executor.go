// Package executor applies resolved action batches against project and
// repository state with rollback-on-failure semantics.
package executor

import (
	"context"
	"errors"

	"go.pakt.dev/pakt/internal/core/domain"
	"go.pakt.dev/pakt/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor applies action batches in order. It owns a batch only for the
// duration of one Execute call; callers serialize execution per solution.
type Executor struct {
	content ports.ContentStore
	refs    ports.ReferenceStore
	tracer  ports.Tracer
	logger  ports.Logger
}

// New creates an Executor with the given collaborators.
func New(content ports.ContentStore, refs ports.ReferenceStore, tracer ports.Tracer, logger ports.Logger) *Executor {
	return &Executor{
		content: content,
		refs:    refs,
		tracer:  tracer,
		logger:  logger,
	}
}

// appliedOp records one successfully applied operation so it can be
// reversed. prior carries the reference an uninstall removed.
type appliedOp struct {
	op     domain.ResolvedOperation
	target ports.Project
	prior  domain.PackageIdentity
}

// Execute applies each operation in order against the named targets.
// Execution stops at the first failing operation; every operation already
// applied is reversed in strict reverse order before the failure is
// surfaced. Cancellation is observed between operations and routes through
// the same rollback path; an operation already started is not aborted
// mid-flight.
func (e *Executor) Execute(ctx context.Context, batch *domain.ActionBatch, targets map[string]ports.Project, listener ports.Listener) error {
	if listener == nil {
		listener = ports.NoopListener{}
	}

	applied := make([]appliedOp, 0, batch.Len())

	for i, op := range batch.Operations() {
		if err := ctx.Err(); err != nil {
			cancelErr := zerr.With(
				zerr.Wrap(err, domain.ErrExecutionCanceled.Error()),
				"index", i,
			)
			return e.fail(ctx, cancelErr, applied)
		}

		target, ok := targets[op.TargetName]
		if !ok {
			missing := zerr.With(domain.ErrProjectNotFound, "project", op.TargetName)
			return e.fail(ctx, e.operationError(missing, op, i), applied)
		}

		record, err := e.apply(ctx, op, target, listener)
		if err != nil {
			return e.fail(ctx, e.operationError(err, op, i), applied)
		}
		applied = append(applied, record)
	}

	return nil
}

func (e *Executor) operationError(cause error, op domain.ResolvedOperation, index int) error {
	return zerr.With(
		zerr.With(
			zerr.Wrap(cause, domain.ErrExecutionFailed.Error()),
			"operation", op.String(),
		),
		"index", index,
	)
}

func (e *Executor) apply(ctx context.Context, op domain.ResolvedOperation, target ports.Project, listener ports.Listener) (appliedOp, error) {
	ctx, span := e.tracer.Start(ctx, op.String())
	defer span.End()
	span.SetAttribute("pakt.package", op.Package.Identity.String())
	span.SetAttribute("pakt.action", op.Action.String())

	record := appliedOp{op: op, target: target}

	var err error
	switch op.Action {
	case domain.ActionInstall:
		listener.OnBeforeInstall(op)
		err = e.install(ctx, op.Package.Identity, target)
		if err != nil {
			listener.OnInstallError(op, err)
		} else {
			listener.OnAfterInstall(op)
		}
	case domain.ActionUninstall:
		listener.OnBeforeUninstall(op)
		record.prior, err = e.uninstall(ctx, op.Package.Identity, target)
		if err != nil {
			listener.OnUninstallError(op, err)
		} else {
			listener.OnAfterUninstall(op)
		}
	default:
		err = zerr.With(domain.ErrExecutionFailed, "action", op.Action.String())
	}

	if err != nil {
		span.RecordError(err)
		return appliedOp{}, err
	}
	return record, nil
}

// install acquires content, records the project reference, and registers
// the project's repository with the solution store.
func (e *Executor) install(ctx context.Context, pkg domain.PackageIdentity, target ports.Project) error {
	if err := e.content.Acquire(ctx, pkg); err != nil {
		return err
	}
	if err := target.AddReference(pkg); err != nil {
		return err
	}
	return e.refs.Register(target.RepositoryPath())
}

// uninstall removes the project reference and, when no registered
// repository still lists the package, the physical content. The removed
// reference is returned for rollback.
func (e *Executor) uninstall(ctx context.Context, pkg domain.PackageIdentity, target ports.Project) (domain.PackageIdentity, error) {
	prior, ok := target.Reference(pkg.ID)
	if !ok {
		return domain.PackageIdentity{}, zerr.With(domain.ErrReferenceNotFound, "package", pkg.String())
	}

	if err := target.RemoveReference(prior); err != nil {
		return domain.PackageIdentity{}, err
	}

	if err := e.unregisterIfEmpty(target); err != nil {
		return domain.PackageIdentity{}, err
	}

	referenced, err := e.refs.IsReferenced(prior)
	if err != nil {
		return domain.PackageIdentity{}, err
	}
	if !referenced {
		if err := e.content.Remove(ctx, prior); err != nil {
			return domain.PackageIdentity{}, err
		}
	}

	return prior, nil
}

// unregisterIfEmpty drops the project's repository entry once the project
// holds no references at all.
func (e *Executor) unregisterIfEmpty(target ports.Project) error {
	refs, err := target.References()
	if err != nil {
		return err
	}
	if len(refs) > 0 {
		return nil
	}
	return e.refs.Unregister(target.RepositoryPath())
}

// fail reverses the applied operations in strict reverse order, then
// surfaces the cause. A failing rollback step halts further rollback and
// produces an aggregate error; residual state is reported, not repaired.
func (e *Executor) fail(ctx context.Context, cause error, applied []appliedOp) error {
	for i := len(applied) - 1; i >= 0; i-- {
		record := applied[i]
		if err := e.reverse(ctx, record); err != nil {
			e.logger.Error(err)
			return errors.Join(cause, zerr.With(
				zerr.With(
					zerr.Wrap(err, domain.ErrRollbackFailed.Error()),
					"operation", record.op.String(),
				),
				"applied_index", i,
			))
		}
	}
	return cause
}

// reverse undoes one applied operation: an install is uninstalled, an
// uninstall is reinstalled at its prior version.
func (e *Executor) reverse(ctx context.Context, record appliedOp) error {
	switch record.op.Action {
	case domain.ActionInstall:
		_, err := e.uninstall(ctx, record.op.Package.Identity, record.target)
		return err
	case domain.ActionUninstall:
		return e.install(ctx, record.prior, record.target)
	default:
		return zerr.With(domain.ErrRollbackFailed, "action", record.op.Action.String())
	}
}
