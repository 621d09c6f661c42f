// Package storage abstracts where per-entry glycan artifact files live. The
// resolution layer decides which entry and anomer to serve; this package
// maps that decision onto concrete file paths on a disk tree or an
// S3-compatible object store.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/glycoshape/glycoshape-api/internal/domain/glycan"
	apperrors "github.com/glycoshape/glycoshape-api/pkg/errors"
)

// Store reads artifact files by catalog-relative path.
type Store interface {
	// Open returns the file content. A missing file is a NotFound error.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	// Exists reports whether the file is present.
	Exists(ctx context.Context, path string) (bool, error)
}

// PDBCandidates returns the structure-file paths to try for an entry, most
// preferred first. The alpha form is preferred when the alpha variant
// matched; beta and archetype matches prefer the beta form. The files
// substitute for each other, so the other anomer's file is the fallback.
func PDBCandidates(entryID string, anomer glycan.Anomer) []string {
	alphaPath := fmt.Sprintf("%s/PDB_format_ATOM/cluster0_alpha.PDB.pdb", entryID)
	betaPath := fmt.Sprintf("%s/PDB_format_ATOM/cluster0_beta.PDB.pdb", entryID)
	if anomer == glycan.AnomerAlpha {
		return []string{alphaPath, betaPath}
	}
	return []string{betaPath, alphaPath}
}

// SNFGPath returns the path of an entry's SNFG diagram.
func SNFGPath(entryID string) string {
	return fmt.Sprintf("%s/snfg.svg", entryID)
}

// OpenFirst opens the first candidate path present in the store.
func OpenFirst(ctx context.Context, store Store, paths []string) (io.ReadCloser, string, error) {
	for _, path := range paths {
		ok, err := store.Exists(ctx, path)
		if err != nil {
			return nil, "", err
		}
		if !ok {
			continue
		}
		rc, err := store.Open(ctx, path)
		if err != nil {
			return nil, "", err
		}
		return rc, path, nil
	}
	return nil, "", apperrors.Newf(apperrors.ErrCodeVariantUnavailable,
		"none of %d candidate files present", len(paths))
}
