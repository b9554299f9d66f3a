// Package refstore implements the per-solution repository reference store
// backed by a repositories.config document.
package refstore

import (
	"encoding/xml"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.pakt.dev/pakt/internal/adapters/projectfile"
	"go.pakt.dev/pakt/internal/core/domain"
	"go.pakt.dev/pakt/internal/core/ports"
	"go.trai.ch/zerr"
)

// document is the persisted form. Unknown attributes and elements are
// ignored on read and not round-tripped.
type document struct {
	XMLName      xml.Name `xml:"repositories"`
	Repositories []entry  `xml:"repository"`
}

type entry struct {
	Path string `xml:"path,attr"`
}

// Store implements ports.ReferenceStore over a single XML document per
// solution. The document is lazily loaded on first use, mutated in memory,
// and rewritten whole on every mutating call. Single writer per solution;
// callers serialize access.
type Store struct {
	path   string // the repositories.config file
	dir    string // its directory; entry paths are relative to it
	logger ports.Logger

	loaded bool
	doc    document
}

var _ ports.ReferenceStore = (*Store)(nil)

// New creates a Store for the given solution root. The backing document
// lives in the shared packages directory and is absent until the first
// registration.
func New(root string, logger ports.Logger) *Store {
	path := domain.RepositoriesPath(root)
	return &Store{
		path:   path,
		dir:    filepath.Dir(path),
		logger: logger,
	}
}

// Register idempotently records a repository document path.
func (s *Store) Register(path string) error {
	if err := s.load(); err != nil {
		return err
	}

	normalized := s.normalize(path)
	for _, e := range s.doc.Repositories {
		if equalFoldPath(e.Path, normalized) {
			return nil
		}
	}

	s.doc.Repositories = append(s.doc.Repositories, entry{Path: normalized})
	return s.save()
}

// Unregister removes a repository document path if present.
func (s *Store) Unregister(path string) error {
	if err := s.load(); err != nil {
		return err
	}

	normalized := s.normalize(path)
	kept := s.doc.Repositories[:0]
	removed := false
	for _, e := range s.doc.Repositories {
		if equalFoldPath(e.Path, normalized) {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return nil
	}

	s.doc.Repositories = kept
	return s.save()
}

// Repositories lists registered repository paths in normalized form.
// Listing prunes entries whose target no longer exists and entries whose
// normalized path duplicates an earlier one; pruned state is persisted
// immediately.
func (s *Store) Repositories() ([]string, error) {
	if err := s.load(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(s.doc.Repositories))
	kept := make([]entry, 0, len(s.doc.Repositories))
	paths := make([]string, 0, len(s.doc.Repositories))

	for _, e := range s.doc.Repositories {
		key := strings.ToLower(e.Path)
		if seen[key] {
			continue
		}
		if _, err := os.Stat(s.resolve(e.Path)); err != nil {
			continue
		}
		seen[key] = true
		kept = append(kept, e)
		paths = append(paths, e.Path)
	}

	if len(kept) != len(s.doc.Repositories) {
		s.doc.Repositories = kept
		if err := s.save(); err != nil {
			return nil, err
		}
	}

	return paths, nil
}

// IsReferenced reports whether any registered repository currently lists
// the package. A repository whose document cannot be read counts as not
// containing it; the next listing prunes it if the file is gone.
func (s *Store) IsReferenced(pkg domain.PackageIdentity) (bool, error) {
	repos, err := s.Repositories()
	if err != nil {
		return false, err
	}

	for _, repo := range repos {
		doc, err := projectfile.ReadDocument(s.resolve(repo))
		if err != nil {
			continue
		}
		if doc.Contains(pkg) {
			return true, nil
		}
	}
	return false, nil
}

// normalize rewrites an absolute path relative to the document's own
// directory and flattens separators to forward slashes. Already-relative
// paths are kept as-is apart from separator normalization.
func (s *Store) normalize(path string) string {
	path = strings.ReplaceAll(path, `\`, "/")
	if !filepath.IsAbs(filepath.FromSlash(path)) {
		return filepath.ToSlash(filepath.Clean(filepath.FromSlash(path)))
	}

	rel, err := filepath.Rel(s.dir, filepath.FromSlash(path))
	if err != nil {
		// Unrelatable paths (other volume) stay absolute.
		return filepath.ToSlash(filepath.Clean(filepath.FromSlash(path)))
	}
	return filepath.ToSlash(rel)
}

// resolve turns a stored entry path back into a filesystem path.
func (s *Store) resolve(path string) string {
	native := filepath.FromSlash(strings.ReplaceAll(path, `\`, "/"))
	if filepath.IsAbs(native) {
		return native
	}
	return filepath.Join(s.dir, native)
}

func equalFoldPath(a, b string) bool {
	return strings.EqualFold(a, b)
}

// load reads the backing document once. An absent document is empty; a
// malformed one is treated as absent, with its entries dropped, and is
// replaced wholesale by the next mutating call.
func (s *Store) load() error {
	if s.loaded {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.loaded = true
			return nil
		}
		return zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		s.logger.Debug("repository store document malformed, treating as empty: " + s.path)
		s.loaded = true
		return nil
	}

	s.doc = doc
	s.loaded = true
	return nil
}

// save rewrites the whole document atomically. This is internal
// housekeeping: it logs at debug only so it never shows up in user-facing
// activity output.
func (s *Store) save() error {
	data, err := xml.MarshalIndent(&s.doc, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	data = append(data, '\n')

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	tmp, err := os.CreateTemp(s.dir, domain.RepositoriesFileName+".*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	s.logger.Debug("rewrote repository store: " + s.path)
	return nil
}
