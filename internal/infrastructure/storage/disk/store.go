// Package disk implements the artifact store and folder probe on a local
// filesystem tree.
package disk

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/glycoshape/glycoshape-api/internal/infrastructure/storage"
	apperrors "github.com/glycoshape/glycoshape-api/pkg/errors"
)

// Store serves files from a root directory.
type Store struct {
	root string
}

var _ storage.Store = (*Store)(nil)

// NewStore constructs a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// resolve joins path under the root and rejects traversal outside it.
func (s *Store) resolve(path string) (string, error) {
	clean := filepath.Clean("/" + path)
	full := filepath.Join(s.root, clean)
	if !strings.HasPrefix(full, filepath.Clean(s.root)+string(os.PathSeparator)) {
		return "", apperrors.Newf(apperrors.ErrCodeBadRequest, "path %q escapes the storage root", path)
	}
	return full, nil
}

// Open returns the file at path. Directories do not open.
func (s *Store) Open(_ context.Context, path string) (io.ReadCloser, error) {
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return nil, apperrors.Newf(apperrors.ErrCodeNotFound, "file %q not found", path)
	}
	f, err := os.Open(full)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorageError, "opening file")
	}
	return f, nil
}

// Exists reports whether a regular file is present at path.
func (s *Store) Exists(_ context.Context, path string) (bool, error) {
	full, err := s.resolve(path)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(full)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, apperrors.Wrap(err, apperrors.ErrCodeStorageError, "probing file")
	}
	return !info.IsDir(), nil
}

// Probe answers folder-presence questions over the raw-data and upload
// roots. Missing roots degrade to empty listings.
type Probe struct {
	roots []string
}

// NewProbe constructs a Probe over the given directory roots. Empty root
// paths are skipped.
func NewProbe(roots ...string) *Probe {
	p := &Probe{}
	for _, root := range roots {
		if root != "" {
			p.roots = append(p.roots, root)
		}
	}
	return p
}

// HasFolder reports whether a directory named name exists under any root.
func (p *Probe) HasFolder(name string) bool {
	if name == "" || strings.ContainsAny(name, "/\\") {
		return false
	}
	for _, root := range p.roots {
		info, err := os.Stat(filepath.Join(root, name))
		if err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

// Folders lists the directory names under all roots, deduplicated and
// sorted.
func (p *Probe) Folders() []string {
	seen := map[string]struct{}{}
	for _, root := range p.roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				seen[e.Name()] = struct{}{}
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
