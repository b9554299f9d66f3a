package resolver

import (
	"context"
	"sort"
	"strings"

	"go.pakt.dev/pakt/internal/core/domain"
	"go.trai.ch/zerr"
)

// resolveUninstall expands one uninstall request. The removed package's
// dependents are checked first; with RemoveDependencies set, dependencies
// no remaining reference needs are uninstalled after their dependent.
func (st *targetState) resolveUninstall(ctx context.Context, req Request) error {
	ref, ok := st.target.Reference(req.ID)
	if !ok {
		return zerr.With(
			zerr.With(domain.ErrReferenceNotFound, "package", req.ID),
			"target", st.target.Name(),
		)
	}
	if req.Version != nil && !ref.Version.Equal(req.Version) {
		err := zerr.With(domain.ErrReferenceNotFound, "package", req.ID)
		err = zerr.With(err, "requested", req.Version.String())
		err = zerr.With(err, "referenced", ref.Version.String())
		return zerr.With(err, "target", st.target.Name())
	}

	installed, err := st.installedMetadata(ctx)
	if err != nil {
		return err
	}

	return st.uninstall(ctx, ref, installed, true)
}

// installedMetadata loads source metadata for every current reference.
// References the feed no longer carries resolve to leaf packages: absent
// metadata cannot name dependencies, so it cannot hold anything back.
func (st *targetState) installedMetadata(ctx context.Context) (map[string]domain.Package, error) {
	refs, err := st.target.References()
	if err != nil {
		return nil, err
	}

	installed := make(map[string]domain.Package, len(refs))
	for _, ref := range refs {
		pkg, err := st.r.source.FindPackage(ctx, ref.ID, ref.Version)
		if err != nil {
			return nil, err
		}
		if pkg == nil {
			pkg = &domain.Package{Identity: ref}
		}
		installed[ref.Key()] = *pkg
	}
	return installed, nil
}

func (st *targetState) uninstall(ctx context.Context, ref domain.PackageIdentity, installed map[string]domain.Package, explicit bool) error {
	key := ref.Key()
	if st.uninstalled[key] {
		return nil
	}

	dependents := st.dependentsOf(ref.ID, installed)
	if len(dependents) > 0 {
		if explicit && !st.opts.Force {
			err := zerr.With(domain.ErrDependencyStillRequired, "package", ref.String())
			err = zerr.With(err, "required_by", strings.Join(dependents, ", "))
			return zerr.With(err, "target", st.target.Name())
		}
		if !explicit {
			// A dependency picked up via RemoveDependencies stays put
			// while anything else needs it.
			return nil
		}
	}

	st.uninstalled[key] = true
	st.uninstallOps = append(st.uninstallOps, domain.ResolvedOperation{
		Action:     domain.ActionUninstall,
		Package:    installed[key],
		TargetName: st.target.Name(),
	})

	if !st.opts.RemoveDependencies {
		return nil
	}

	for _, dep := range installed[key].Dependencies {
		depRef, ok := st.target.Reference(dep.ID)
		if !ok {
			continue
		}
		if err := st.uninstall(ctx, depRef, installed, false); err != nil {
			return err
		}
	}
	return nil
}

// dependentsOf lists installed packages that declare a dependency on id,
// excluding packages already scheduled for removal in this batch.
func (st *targetState) dependentsOf(id string, installed map[string]domain.Package) []string {
	var dependents []string
	for key, pkg := range installed {
		if st.uninstalled[key] || strings.EqualFold(pkg.Identity.ID, id) {
			continue
		}
		if _, ok := pkg.DependsOn(id); ok {
			dependents = append(dependents, pkg.Identity.String())
		}
	}
	sort.Strings(dependents)
	return dependents
}
