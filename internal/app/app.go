// Package app implements the application layer for pakt.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"go.pakt.dev/pakt/internal/adapters/contentstore"
	"go.pakt.dev/pakt/internal/adapters/feed"
	"go.pakt.dev/pakt/internal/adapters/projectfile"
	"go.pakt.dev/pakt/internal/adapters/refstore"
	"go.pakt.dev/pakt/internal/core/domain"
	"go.pakt.dev/pakt/internal/core/ports"
	"go.pakt.dev/pakt/internal/engine/executor"
	"go.pakt.dev/pakt/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// ApprovalFunc is consulted with the resolved batch before anything is
// executed. Returning false aborts the run without touching any project.
type ApprovalFunc func(batch *domain.ActionBatch) bool

// App represents the main application logic.
type App struct {
	loader  ports.SolutionLoader
	logger  ports.Logger
	tracer  ports.Tracer
	approve ApprovalFunc
}

// New creates a new App instance.
func New(loader ports.SolutionLoader, log ports.Logger, tracer ports.Tracer) *App {
	return &App{
		loader: loader,
		logger: log,
		tracer: tracer,
	}
}

// WithApproval installs an approval gate between resolution and execution.
func (a *App) WithApproval(fn ApprovalFunc) *App {
	a.approve = fn
	return a
}

// runtime holds the per-solution adapter set. It is rebuilt on every
// operation so the app carries no state between invocations.
type runtime struct {
	solution *domain.Solution
	source   ports.Source
	refs     ports.ReferenceStore
	content  ports.ContentStore
	projects map[string]ports.Project
}

func (a *App) buildRuntime(cwd string) (*runtime, error) {
	solution, err := a.loader.Load(cwd)
	if err != nil {
		return nil, err
	}

	projects := make(map[string]ports.Project, len(solution.Projects))
	for name := range solution.Projects {
		path, _ := solution.ProjectPath(name)
		projects[name] = projectfile.NewProject(name, path, a.logger)
	}

	return &runtime{
		solution: solution,
		source:   feed.New(solution.FeedDir, a.logger),
		refs:     refstore.New(solution.Root, a.logger),
		content:  contentstore.New(solution.PackagesDir(), a.logger),
		projects: projects,
	}, nil
}

// target picks the project an operation applies to. With a single-project
// solution the name may be omitted.
func (rt *runtime) target(name string) (ports.Project, error) {
	if name == "" {
		if len(rt.projects) == 1 {
			for _, p := range rt.projects {
				return p, nil
			}
		}
		return nil, zerr.With(domain.ErrProjectNotFound,
			"reason", "solution has multiple projects, name one with --project",
		)
	}
	for candidate, p := range rt.projects {
		if strings.EqualFold(candidate, name) {
			return p, nil
		}
	}
	return nil, zerr.With(domain.ErrProjectNotFound, "project", name)
}

// InstallOptions configuration for the Install method.
type InstallOptions struct {
	Project            string
	Prerelease         bool
	IgnoreDependencies bool
	Highest            bool
}

// Install resolves the given package references against the feed and applies
// the resulting batch to the target project.
func (a *App) Install(ctx context.Context, refs []string, opts InstallOptions) error {
	rt, err := a.buildRuntime(".")
	if err != nil {
		return err
	}
	target, err := rt.target(opts.Project)
	if err != nil {
		return err
	}

	requests := make([]resolver.Request, 0, len(refs))
	for _, ref := range refs {
		identity, err := domain.ParseIdentity(ref)
		if err != nil {
			return err
		}
		requests = append(requests, resolver.Request{
			Action:  domain.ActionInstall,
			ID:      identity.ID,
			Version: identity.Version,
			Target:  target,
		})
	}

	selection := resolver.SelectionLowest
	if opts.Highest {
		selection = resolver.SelectionHighest
	}

	return a.run(ctx, rt, requests, resolver.Options{
		IgnoreDependencies: opts.IgnoreDependencies,
		Prerelease:         opts.Prerelease,
		Selection:          selection,
	})
}

// UninstallOptions configuration for the Uninstall method.
type UninstallOptions struct {
	Project            string
	Force              bool
	RemoveDependencies bool
}

// Uninstall removes the given package references from the target project.
func (a *App) Uninstall(ctx context.Context, refs []string, opts UninstallOptions) error {
	rt, err := a.buildRuntime(".")
	if err != nil {
		return err
	}
	target, err := rt.target(opts.Project)
	if err != nil {
		return err
	}

	requests := make([]resolver.Request, 0, len(refs))
	for _, ref := range refs {
		identity, err := domain.ParseIdentity(ref)
		if err != nil {
			return err
		}
		requests = append(requests, resolver.Request{
			Action:  domain.ActionUninstall,
			ID:      identity.ID,
			Version: identity.Version,
			Target:  target,
		})
	}

	return a.run(ctx, rt, requests, resolver.Options{
		Force:              opts.Force,
		RemoveDependencies: opts.RemoveDependencies,
	})
}

// run resolves the requests and, past the approval gate, executes the batch.
func (a *App) run(ctx context.Context, rt *runtime, requests []resolver.Request, opts resolver.Options) error {
	batch, err := resolver.New(rt.source).Resolve(ctx, requests, opts)
	if err != nil {
		return err
	}
	if batch.Len() == 0 {
		a.logger.Info("nothing to do")
		return nil
	}

	if a.approve != nil && !a.approve(batch) {
		a.logger.Info("aborted")
		return nil
	}

	exec := executor.New(rt.content, rt.refs, a.tracer, a.logger)
	return exec.Execute(ctx, batch, rt.projects, newLogListener(a.logger))
}

// RepositoryStatus is one row of the Repositories listing.
type RepositoryStatus struct {
	Path     string
	Packages []domain.PackageIdentity
}

// Repositories lists the registered repository documents and the packages
// each one references. Entries whose documents have disappeared are pruned
// from the store as a side effect of listing.
func (a *App) Repositories(_ context.Context) ([]RepositoryStatus, error) {
	rt, err := a.buildRuntime(".")
	if err != nil {
		return nil, err
	}

	paths, err := rt.refs.Repositories()
	if err != nil {
		return nil, err
	}

	// The store lists paths relative to its own document directory.
	docDir := rt.solution.PackagesDir()

	statuses := make([]RepositoryStatus, 0, len(paths))
	for _, path := range paths {
		resolved := filepath.FromSlash(path)
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(docDir, resolved)
		}
		project := projectfile.NewProject(filepath.Base(filepath.Dir(resolved)), resolved, a.logger)
		packages, err := project.References()
		if err != nil {
			a.logger.Warn(fmt.Sprintf("skipping unreadable repository %s", path))
			continue
		}
		sort.Slice(packages, func(i, j int) bool {
			return packages[i].Key() < packages[j].Key()
		})
		statuses = append(statuses, RepositoryStatus{Path: path, Packages: packages})
	}
	return statuses, nil
}
