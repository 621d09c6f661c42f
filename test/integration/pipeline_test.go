// Integration test for the identifier resolution and search pipeline.
// Builds a catalog from JSON on disk, wires the resolver against a real
// directory probe, and runs structural, free-text and end-residue searches
// over the loaded index. Everything here runs offline.
package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glycoshape/glycoshape-api/internal/catalog"
	"github.com/glycoshape/glycoshape-api/internal/config"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/storage/disk"
	"github.com/glycoshape/glycoshape-api/internal/resolver"
	"github.com/glycoshape/glycoshape-api/internal/search"
)

const catalogJSON = `{
  "GS00001": {
    "archetype": {
      "ID": "GS00001",
      "glytoucan": "G00028MO",
      "iupac": "Man(a1-3)Man(b1-4)GlcNAc(b1-4)GlcNAc",
      "wurcs": "WURCS=2.0/3,4,3/[a2122h-1x_1-5_2*NCC/3=O][a1122h-1b_1-5][a1122h-1a_1-5]/1-1-2-3/a4-b1_b4-c1_c3-d1",
      "glycam": "DManpa1-3DManpb1-4DGlcpNAcb1-4DGlcpNAcb1-OH",
      "mass": 748.7
    },
    "alpha": {
      "ID": "GS00001",
      "glytoucan": "G11111AA",
      "wurcs": "WURCS=2.0/3,4,3/[a2122h-1a_1-5_2*NCC/3=O][a1122h-1b_1-5][a1122h-1a_1-5]/1-1-2-3/a4-b1_b4-c1_c3-d1",
      "mass": 748.7
    },
    "beta": {
      "ID": "GS00001",
      "glytoucan": "G22222BB",
      "wurcs": "WURCS=2.0/3,4,3/[a2122h-1b_1-5_2*NCC/3=O][a1122h-1b_1-5][a1122h-1a_1-5]/1-1-2-3/a4-b1_b4-c1_c3-d1",
      "mass": 748.7
    }
  },
  "GS00002": {
    "archetype": {
      "ID": "GS00002",
      "glytoucan": "G07483YZ",
      "iupac": "Gal(b1-4)Glc",
      "wurcs": "WURCS=2.0/2,2,1/[a2122h-1x_1-5][a2112h-1b_1-5]/1-2/a4-b1",
      "mass": 342.3
    }
  }
}`

func loadPipeline(t *testing.T) (*catalog.Index, *resolver.Service, *search.Engine, string) {
	t.Helper()
	log := logging.NewNopLogger()

	dataDir := t.TempDir()
	catalogPath := filepath.Join(dataDir, "GLYCOSHAPE.json")
	require.NoError(t, os.WriteFile(catalogPath, []byte(catalogJSON), 0o644))

	index, err := catalog.Load(catalogPath, log)
	require.NoError(t, err)
	require.Equal(t, 2, index.Len())

	require.NoError(t, os.Mkdir(filepath.Join(dataDir, "GS00001"), 0o755))

	svc := resolver.NewService(index, resolver.NewNormalizer(nil, log), disk.NewProbe(dataDir), log)
	engine := search.NewEngine(index, config.SearchConfig{
		StructuralLimit: 10,
		TextLimit:       20,
		TextThreshold:   50,
	}, log)
	return index, svc, engine, dataDir
}

func TestResolutionPipeline(t *testing.T) {
	_, svc, _, _ := loadPipeline(t)
	ctx := context.Background()

	t.Run("FolderBeatsCatalog", func(t *testing.T) {
		got := svc.Exists(ctx, "GS00001")
		assert.True(t, got.Found)
		assert.Equal(t, "Folder Match", got.Reason)
	})

	t.Run("GlyTouCanAlphaVariant", func(t *testing.T) {
		got := svc.Exists(ctx, "G11111AA")
		assert.True(t, got.Found)
		assert.Equal(t, "GlyTouCan Match (Alpha)", got.Reason)
		assert.Equal(t, "GS00001", got.RecordID)
	})

	t.Run("IUPACCaseInsensitive", func(t *testing.T) {
		got := svc.Exists(ctx, "gal(B1-4)glc")
		assert.True(t, got.Found)
		assert.Equal(t, "IUPAC Match (Archetype)", got.Reason)
		assert.Equal(t, "GS00002", got.RecordID)
	})

	t.Run("GLYCAMThroughIUPACRewrite", func(t *testing.T) {
		got := svc.Exists(ctx, "DManpa1-3DManpb1-4DGlcpNAcb1-4DGlcpNAcb1-OH")
		assert.True(t, got.Found)
		assert.Equal(t, "GS00001", got.RecordID)
	})

	t.Run("RawWURCS", func(t *testing.T) {
		got := svc.Exists(ctx, "WURCS=2.0/2,2,1/[a2122h-1x_1-5][a2112h-1b_1-5]/1-2/a4-b1")
		assert.True(t, got.Found)
		assert.Equal(t, "WURCS Match (Archetype)", got.Reason)
	})

	t.Run("Miss", func(t *testing.T) {
		got := svc.Exists(ctx, "no such glycan")
		assert.False(t, got.Found)
		assert.Equal(t, "Not Found", got.Reason)
	})
}

func TestSearchPipeline(t *testing.T) {
	_, _, engine, _ := loadPipeline(t)

	t.Run("StructuralExactFirst", func(t *testing.T) {
		hits, err := engine.Structural("WURCS=2.0/2,2,1/[a2122h-1x_1-5][a2112h-1b_1-5]/1-2/a4-b1")
		require.NoError(t, err)
		require.NotEmpty(t, hits)
		assert.Equal(t, "GS00002", hits[0].Record.InternalID)
	})

	t.Run("FreeTextByAccession", func(t *testing.T) {
		hits := engine.FreeText("G00028MO")
		require.NotEmpty(t, hits)
		assert.Equal(t, "GS00001", hits[0].Record.InternalID)
	})

	t.Run("EndResidueMassOrder", func(t *testing.T) {
		hits := engine.EndResidue("Glc")
		require.Len(t, hits, 1)
		assert.Equal(t, "GS00002", hits[0].Record.InternalID)
	})
}
