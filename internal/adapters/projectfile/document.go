// Package projectfile implements the project reference surface over a
// packages.config document.
package projectfile

import (
	"encoding/xml"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.pakt.dev/pakt/internal/core/domain"
	"go.trai.ch/zerr"
)

// Document is the parsed form of a packages.config file. Unknown elements
// and attributes are ignored on read and not round-tripped.
type Document struct {
	XMLName  xml.Name       `xml:"packages"`
	Packages []PackageEntry `xml:"package"`
}

// PackageEntry is one package reference in the document.
type PackageEntry struct {
	ID      string `xml:"id,attr"`
	Version string `xml:"version,attr"`
}

// ReadDocument loads a packages.config file. An absent file is an empty
// document; a malformed one is treated the same, with its entries dropped.
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Document{}, nil
		}
		return nil, zerr.Wrap(err, domain.ErrProjectReadFailed.Error())
	}

	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return &Document{}, nil
	}
	return &doc, nil
}

// WriteDocument rewrites the whole document atomically: marshal, write to a
// temp file in the same directory, rename over the target.
func WriteDocument(path string, doc *Document) error {
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrProjectWriteFailed.Error())
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrProjectWriteFailed.Error())
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrProjectWriteFailed.Error())
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrProjectWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrProjectWriteFailed.Error())
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrProjectWriteFailed.Error())
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrProjectWriteFailed.Error())
	}
	return nil
}

// Contains reports whether the document lists the exact package version.
func (d *Document) Contains(pkg domain.PackageIdentity) bool {
	for _, entry := range d.Packages {
		id, err := domain.NewIdentity(entry.ID, entry.Version)
		if err != nil {
			continue
		}
		if id.Equal(pkg) {
			return true
		}
	}
	return false
}
