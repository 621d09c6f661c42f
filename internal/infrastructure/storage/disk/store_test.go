package disk

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glycoshape/glycoshape-api/internal/domain/glycan"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/storage"
	apperrors "github.com/glycoshape/glycoshape-api/pkg/errors"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestStoreOpenAndExists(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "GS00001/PDB_format_ATOM/cluster0_beta.PDB.pdb", "ATOM")
	store := NewStore(root)
	ctx := context.Background()

	t.Run("open existing file", func(t *testing.T) {
		rc, err := store.Open(ctx, "GS00001/PDB_format_ATOM/cluster0_beta.PDB.pdb")
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "ATOM", string(data))
	})

	t.Run("missing file is not found", func(t *testing.T) {
		_, err := store.Open(ctx, "GS00001/missing.pdb")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))

		ok, err := store.Exists(ctx, "GS00001/missing.pdb")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("directory does not open", func(t *testing.T) {
		_, err := store.Open(ctx, "GS00001")
		assert.Error(t, err)
	})

	t.Run("traversal is clamped to the root", func(t *testing.T) {
		outside := filepath.Join(filepath.Dir(root), "secret.txt")
		require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o644))

		_, err := store.Open(ctx, "../secret.txt")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err) || apperrors.IsCode(err, apperrors.ErrCodeBadRequest))
	})
}

func TestOpenFirstPrefersAnomer(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "GS00001/PDB_format_ATOM/cluster0_alpha.PDB.pdb", "alpha")
	writeFile(t, root, "GS00001/PDB_format_ATOM/cluster0_beta.PDB.pdb", "beta")
	writeFile(t, root, "GS00002/PDB_format_ATOM/cluster0_beta.PDB.pdb", "beta only")
	store := NewStore(root)
	ctx := context.Background()

	readFirst := func(id string, anomer glycan.Anomer) string {
		rc, _, err := storage.OpenFirst(ctx, store, storage.PDBCandidates(id, anomer))
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}

	assert.Equal(t, "alpha", readFirst("GS00001", glycan.AnomerAlpha))
	assert.Equal(t, "beta", readFirst("GS00001", glycan.AnomerBeta))
	assert.Equal(t, "beta", readFirst("GS00001", glycan.AnomerArchetype))
	// alpha preference falls back to the beta file
	assert.Equal(t, "beta only", readFirst("GS00002", glycan.AnomerAlpha))

	_, _, err := storage.OpenFirst(ctx, store, storage.PDBCandidates("GS00003", glycan.AnomerAlpha))
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestProbe(t *testing.T) {
	raw := t.TempDir()
	upload := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(raw, "DManpa1-3DManpb1-4DGlcpNAcb1-4DGlcpNAcb1-OH"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(upload, "uploaded-entry"), 0o755))
	writeFile(t, raw, "loose-file.txt", "not a folder")

	probe := NewProbe(raw, upload, "")

	assert.True(t, probe.HasFolder("DManpa1-3DManpb1-4DGlcpNAcb1-4DGlcpNAcb1-OH"))
	assert.True(t, probe.HasFolder("uploaded-entry"))
	assert.False(t, probe.HasFolder("loose-file.txt"))
	assert.False(t, probe.HasFolder("absent"))
	assert.False(t, probe.HasFolder("../escape"))

	folders := probe.Folders()
	assert.Equal(t, []string{
		"DManpa1-3DManpb1-4DGlcpNAcb1-4DGlcpNAcb1-OH",
		"uploaded-entry",
	}, folders)
}
