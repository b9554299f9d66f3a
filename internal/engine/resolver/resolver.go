// Package resolver expands requested package operations into ordered,
// conflict-free action batches.
package resolver

import (
	"context"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.pakt.dev/pakt/internal/core/domain"
	"go.pakt.dev/pakt/internal/core/ports"
	"go.trai.ch/zerr"
)

// SelectionPolicy decides which satisfying version a dependency resolves to.
type SelectionPolicy uint8

const (
	// SelectionLowest picks the lowest satisfying version. This is the
	// default: it is deterministic and least likely to surprise dependents.
	SelectionLowest SelectionPolicy = iota
	// SelectionHighest picks the highest satisfying version.
	SelectionHighest
)

// Request is one high-level requested operation.
type Request struct {
	Action domain.PackageAction
	ID     string
	// Version pins an exact version. Nil means the selection policy picks
	// one from the configured source.
	Version *semver.Version
	Target  ports.Project
}

// Options configure a resolution pass.
type Options struct {
	// IgnoreDependencies skips automatic expansion of declared dependencies.
	IgnoreDependencies bool
	// Prerelease makes prerelease versions eligible for selection.
	Prerelease bool
	// Selection is the dependency version selection policy.
	Selection SelectionPolicy
	// Force allows uninstalling a package other installed packages still
	// depend on.
	Force bool
	// RemoveDependencies extends an uninstall to dependencies that no
	// remaining reference needs.
	RemoveDependencies bool
}

// Resolver computes action batches from requests, package metadata and
// current project state. Resolution is a pure computation: it reads the
// source and project state and mutates nothing.
type Resolver struct {
	source ports.Source
}

// New creates a Resolver querying the given source.
func New(source ports.Source) *Resolver {
	return &Resolver{source: source}
}

// Resolve expands the requests into a totally ordered action batch.
// Installs are emitted dependency-first, uninstalls dependent-first, and
// every install precedes every uninstall so no dependency disappears before
// its dependents are handled.
func (r *Resolver) Resolve(ctx context.Context, requests []Request, opts Options) (*domain.ActionBatch, error) {
	if len(requests) == 0 {
		return nil, domain.ErrNoRequests
	}

	states := make(map[string]*targetState)
	stateOrder := make([]string, 0, 1)

	stateFor := func(target ports.Project) *targetState {
		name := target.Name()
		if st, ok := states[name]; ok {
			return st
		}
		st := newTargetState(r, target, opts)
		states[name] = st
		stateOrder = append(stateOrder, name)
		return st
	}

	for _, req := range requests {
		st := stateFor(req.Target)
		var err error
		switch req.Action {
		case domain.ActionInstall:
			err = st.resolveInstall(ctx, req)
		case domain.ActionUninstall:
			err = st.resolveUninstall(ctx, req)
		default:
			err = zerr.With(domain.ErrNoRequests, "action", req.Action.String())
		}
		if err != nil {
			return nil, err
		}
	}

	var ops []domain.ResolvedOperation
	for _, name := range stateOrder {
		ops = append(ops, states[name].installOps()...)
	}
	for _, name := range stateOrder {
		ops = append(ops, states[name].uninstallOps...)
	}

	return domain.NewActionBatch(ops), nil
}

const (
	colorUnvisited = iota
	colorVisiting
	colorVisited
)

// requirement records who required a selection and under what constraint,
// for conflict reporting.
type requirement struct {
	requirer   string
	constraint domain.VersionRange
}

// selection is the single version chosen for a package ID within one target.
type selection struct {
	pkg domain.Package
	// existing marks versions the target already references; they produce
	// no install operation.
	existing   bool
	requiredBy []requirement
}

// targetState accumulates resolution state for one target project.
type targetState struct {
	r      *Resolver
	target ports.Project
	opts   Options

	selected map[string]*selection
	order    []string // selection keys, dependencies first
	color    map[string]int
	path     []string

	uninstalled  map[string]bool
	uninstallOps []domain.ResolvedOperation
}

func newTargetState(r *Resolver, target ports.Project, opts Options) *targetState {
	return &targetState{
		r:           r,
		target:      target,
		opts:        opts,
		selected:    make(map[string]*selection),
		color:       make(map[string]int),
		uninstalled: make(map[string]bool),
	}
}

func (st *targetState) installOps() []domain.ResolvedOperation {
	ops := make([]domain.ResolvedOperation, 0, len(st.order))
	for _, key := range st.order {
		sel := st.selected[key]
		if sel.existing {
			continue
		}
		ops = append(ops, domain.ResolvedOperation{
			Action:     domain.ActionInstall,
			Package:    sel.pkg,
			TargetName: st.target.Name(),
		})
	}
	return ops
}

func (st *targetState) resolveInstall(ctx context.Context, req Request) error {
	rootReq := requirement{requirer: "request", constraint: rangeForRequest(req)}

	// Respect what the target already references. An explicit request for a
	// version the project references at another version is rejected rather
	// than upgraded; upgrade is a separate operation.
	if ref, ok := st.target.Reference(req.ID); ok {
		if req.Version == nil || ref.Version.Equal(req.Version) {
			return nil
		}
		return zerr.With(
			zerr.With(
				zerr.With(domain.ErrReferenceExists, "package", req.ID),
				"referenced", ref.Version.String(),
			),
			"requested", req.Version.String(),
		)
	}

	pkg, err := st.lookup(ctx, req.ID, rootReq.constraint, rootReq.requirer)
	if err != nil {
		return err
	}

	return st.visit(ctx, *pkg, rootReq)
}

func rangeForRequest(req Request) domain.VersionRange {
	if req.Version == nil {
		return domain.AnyVersion
	}
	return domain.VersionRange{
		Min: req.Version, Max: req.Version,
		MinInclusive: true, MaxInclusive: true,
	}
}

// visit expands one chosen package depth-first, recording it in dependency
// order. The three-color walk reports cycles instead of silently breaking
// them.
func (st *targetState) visit(ctx context.Context, pkg domain.Package, reqBy requirement) error {
	key := pkg.Identity.Key()

	if sel, ok := st.selected[key]; ok {
		if !reqBy.constraint.Satisfies(sel.pkg.Identity.Version, st.opts.Prerelease) {
			return st.conflict(sel, reqBy)
		}
		sel.requiredBy = append(sel.requiredBy, reqBy)
		return nil
	}

	st.color[key] = colorVisiting
	st.path = append(st.path, pkg.Identity.String())
	st.selected[key] = &selection{pkg: pkg, requiredBy: []requirement{reqBy}}

	if !st.opts.IgnoreDependencies {
		for _, dep := range pkg.Dependencies {
			if err := st.visitDependency(ctx, pkg, dep); err != nil {
				return err
			}
		}
	}

	st.color[key] = colorVisited
	st.path = st.path[:len(st.path)-1]
	st.order = append(st.order, key)
	return nil
}

func (st *targetState) visitDependency(ctx context.Context, parent domain.Package, dep domain.Dependency) error {
	dkey := strings.ToLower(dep.ID)
	reqBy := requirement{requirer: parent.Identity.String(), constraint: dep.Range}

	if st.color[dkey] == colorVisiting {
		return st.cycleError(dep.ID)
	}

	if sel, ok := st.selected[dkey]; ok {
		if !dep.Range.Satisfies(sel.pkg.Identity.Version, st.opts.Prerelease) {
			return st.conflict(sel, reqBy)
		}
		sel.requiredBy = append(sel.requiredBy, reqBy)
		return nil
	}

	// A version the target already references wins if it satisfies the
	// constraint; its own dependencies were expanded when it was installed.
	if ref, ok := st.target.Reference(dep.ID); ok {
		if !dep.Range.Satisfies(ref.Version, true) {
			return st.conflict(&selection{
				pkg:        domain.Package{Identity: ref},
				requiredBy: []requirement{{requirer: "installed " + ref.String(), constraint: exactRange(ref.Version)}},
			}, reqBy)
		}
		st.selected[dkey] = &selection{
			pkg:        domain.Package{Identity: ref},
			existing:   true,
			requiredBy: []requirement{reqBy},
		}
		st.color[dkey] = colorVisited
		return nil
	}

	pkg, err := st.lookup(ctx, dep.ID, dep.Range, parent.Identity.String())
	if err != nil {
		return err
	}
	return st.visit(ctx, *pkg, reqBy)
}

// lookup picks the package version for id within the constraint, per the
// configured selection policy.
func (st *targetState) lookup(ctx context.Context, id string, constraint domain.VersionRange, requirer string) (*domain.Package, error) {
	if constraint.IsExact() {
		pkg, err := st.r.source.FindPackage(ctx, id, constraint.Min)
		if err != nil {
			return nil, err
		}
		if pkg == nil {
			return nil, st.missing(id, constraint, requirer)
		}
		return pkg, nil
	}

	candidates, err := st.r.source.FindPackages(ctx, id)
	if err != nil {
		return nil, err
	}

	// Candidates arrive sorted ascending; walk from the preferred end.
	if st.opts.Selection == SelectionHighest {
		for i := len(candidates) - 1; i >= 0; i-- {
			if constraint.Satisfies(candidates[i].Identity.Version, st.opts.Prerelease) {
				return &candidates[i], nil
			}
		}
	} else {
		for i := range candidates {
			if constraint.Satisfies(candidates[i].Identity.Version, st.opts.Prerelease) {
				return &candidates[i], nil
			}
		}
	}

	return nil, st.missing(id, constraint, requirer)
}

func (st *targetState) missing(id string, constraint domain.VersionRange, requirer string) error {
	err := zerr.With(domain.ErrMissingPackage, "package", id)
	err = zerr.With(err, "range", constraint.String())
	err = zerr.With(err, "required_by", requirer)
	return zerr.With(err, "target", st.target.Name())
}

func (st *targetState) conflict(sel *selection, reqBy requirement) error {
	first := sel.requiredBy[0]
	err := zerr.With(domain.ErrConflict, "package", sel.pkg.Identity.ID)
	err = zerr.With(err, "selected", sel.pkg.Identity.Version.String())
	err = zerr.With(err, "required_by", first.requirer)
	err = zerr.With(err, "constraint", first.constraint.String())
	err = zerr.With(err, "conflicting_required_by", reqBy.requirer)
	err = zerr.With(err, "conflicting_constraint", reqBy.constraint.String())
	return zerr.With(err, "target", st.target.Name())
}

func (st *targetState) cycleError(id string) error {
	var b strings.Builder
	for _, node := range st.path {
		b.WriteString(node)
		b.WriteString(" -> ")
	}
	b.WriteString(id)
	return zerr.With(domain.ErrCycleDetected, "cycle", b.String())
}

func exactRange(v *semver.Version) domain.VersionRange {
	return domain.VersionRange{Min: v, Max: v, MinInclusive: true, MaxInclusive: true}
}
