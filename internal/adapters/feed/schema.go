package feed

import (
	"go.pakt.dev/pakt/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// manifest is the YAML DTO for one package version in the feed.
type manifest struct {
	ID           string       `yaml:"id"`
	Version      string       `yaml:"version"`
	Dependencies []dependency `yaml:"dependencies"`
}

type dependency struct {
	ID    string `yaml:"id"`
	Range string `yaml:"range"`
}

// parseManifest decodes and validates one manifest into domain metadata.
func parseManifest(path string, data []byte) (domain.Package, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return domain.Package{}, zerr.With(
			zerr.Wrap(err, domain.ErrManifestParseFailed.Error()),
			"manifest", path,
		)
	}
	if m.ID == "" || m.Version == "" {
		return domain.Package{}, zerr.With(
			zerr.With(domain.ErrManifestParseFailed, "manifest", path),
			"reason", "id and version are required",
		)
	}

	identity, err := domain.NewIdentity(m.ID, m.Version)
	if err != nil {
		return domain.Package{}, zerr.With(err, "manifest", path)
	}

	pkg := domain.Package{Identity: identity}
	for _, dep := range m.Dependencies {
		if dep.ID == "" {
			return domain.Package{}, zerr.With(
				zerr.With(domain.ErrManifestParseFailed, "manifest", path),
				"reason", "dependency id is required",
			)
		}
		r, err := domain.ParseRange(dep.Range)
		if err != nil {
			return domain.Package{}, zerr.With(err, "manifest", path)
		}
		pkg.Dependencies = append(pkg.Dependencies, domain.Dependency{ID: dep.ID, Range: r})
	}

	return pkg, nil
}
