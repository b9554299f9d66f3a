// Package config provides the solution configuration loader.
package config

import (
	"os"
	"path/filepath"
	"regexp"

	"go.pakt.dev/pakt/internal/core/domain"
	"go.pakt.dev/pakt/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.SolutionLoader over a pakt.yaml file.
type Loader struct {
	logger ports.Logger
}

var _ ports.SolutionLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

var validProjectNameRegex = regexp.MustCompile("^[a-zA-Z0-9_.-]+$")

// Load walks up from cwd until it finds a pakt.yaml and returns the
// solution it describes.
func (l *Loader) Load(cwd string) (*domain.Solution, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrSolutionNotFound.Error()),
			"path", configPath,
		)
	}

	var file solutionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrSolutionNotFound.Error()),
			"path", configPath,
		)
	}

	root, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSolutionNotFound.Error())
	}

	return l.buildSolution(root, &file)
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.SolutionFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", zerr.With(domain.ErrSolutionNotFound, "cwd", cwd)
		}
		currentDir = parentDir
	}
}

func (l *Loader) buildSolution(root string, file *solutionFile) (*domain.Solution, error) {
	feedDir := file.Feed
	if feedDir == "" {
		feedDir = domain.FeedDirName
	}
	if !filepath.IsAbs(feedDir) {
		feedDir = filepath.Join(root, feedDir)
	}

	projects := make(map[string]string, len(file.Projects))
	for name, path := range file.Projects {
		if !validProjectNameRegex.MatchString(name) {
			return nil, zerr.With(
				zerr.With(domain.ErrProjectNotFound, "project", name),
				"reason", "project name can only contain alphanumeric characters, dots, hyphens and underscores",
			)
		}
		if path == "" {
			path = filepath.Join(name, domain.ProjectFileName)
		}
		projects[name] = filepath.Clean(path)
	}

	return &domain.Solution{
		Root:     root,
		FeedDir:  feedDir,
		Projects: projects,
	}, nil
}
