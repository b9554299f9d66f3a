// Package contentstore lays out shared package content on disk under the
// solution's packages directory.
package contentstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.pakt.dev/pakt/internal/core/domain"
	"go.pakt.dev/pakt/internal/core/ports"
	"go.trai.ch/zerr"
)

// receiptFileName marks a package directory as fully acquired. Acquisition
// that died halfway leaves no receipt and is redone on the next Acquire.
const receiptFileName = ".pakt"

// Store implements ports.ContentStore with one directory per package
// version under the shared packages directory. Extraction of archive
// payloads is delegated; this store only manages the on-disk layout.
type Store struct {
	dir    string
	logger ports.Logger
}

var _ ports.ContentStore = (*Store)(nil)

// New creates a Store rooted at the given packages directory.
func New(dir string, logger ports.Logger) *Store {
	return &Store{dir: dir, logger: logger}
}

// packageDir returns the content directory for a package version,
// "<id>.<version>" with the ID case preserved as requested.
func (s *Store) packageDir(pkg domain.PackageIdentity) string {
	return filepath.Join(s.dir, pkg.ID+"."+pkg.Version.String())
}

// Acquire ensures the package content directory exists and is marked
// complete. Already-acquired content is left untouched.
func (s *Store) Acquire(_ context.Context, pkg domain.PackageIdentity) error {
	if s.Contains(pkg) {
		return nil
	}

	dir := s.packageDir(pkg)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(
			zerr.Wrap(err, domain.ErrContentWriteFailed.Error()),
			"package", pkg.String(),
		)
	}

	receipt := fmt.Sprintf("%s\n%016x\n", pkg.String(), xxhash.Sum64String(strings.ToLower(pkg.String())))
	if err := os.WriteFile(filepath.Join(dir, receiptFileName), []byte(receipt), domain.FilePerm); err != nil {
		return zerr.With(
			zerr.Wrap(err, domain.ErrContentWriteFailed.Error()),
			"package", pkg.String(),
		)
	}

	s.logger.Debug("acquired package content: " + pkg.String())
	return nil
}

// Remove deletes the package content directory. Removing content that is
// not present is a no-op.
func (s *Store) Remove(_ context.Context, pkg domain.PackageIdentity) error {
	dir := s.packageDir(pkg)
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(
			zerr.Wrap(err, domain.ErrContentWriteFailed.Error()),
			"package", pkg.String(),
		)
	}
	s.logger.Debug("removed package content: " + pkg.String())
	return nil
}

// Contains reports whether the package content is present and complete.
func (s *Store) Contains(pkg domain.PackageIdentity) bool {
	_, err := os.Stat(filepath.Join(s.packageDir(pkg), receiptFileName))
	return err == nil
}
