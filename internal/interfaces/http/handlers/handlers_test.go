package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glycoshape/glycoshape-api/internal/catalog"
	"github.com/glycoshape/glycoshape-api/internal/config"
	"github.com/glycoshape/glycoshape-api/internal/domain/glycan"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/storage/disk"
	"github.com/glycoshape/glycoshape-api/internal/interfaces/http/handlers"
	"github.com/glycoshape/glycoshape-api/internal/resolver"
	"github.com/glycoshape/glycoshape-api/internal/search"
	"github.com/glycoshape/glycoshape-api/pkg/types"
)

const testWURCS = "WURCS=2.0/3,4,3/[a2122h-1b_1-5_2*NCC/3=O][a1122h-1b_1-5][a1122h-1a_1-5]/1-1-2-3/a4-b1_b4-c1_c3-d1"

type fixture struct {
	router chi.Router
	dbDir  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logging.NewNopLogger()

	idx := catalog.NewIndex(map[string]*glycan.Record{
		"GS00001": {
			Archetype: glycan.Variant{
				ID:        "GS00001",
				GlyTouCan: "G00028MO",
				IUPAC:     "Man(a1-3)Man(b1-4)GlcNAc(b1-4)GlcNAc",
				WURCS:     testWURCS,
				Mass:      748.7,
			},
			Alpha: &glycan.Variant{ID: "GS00001", GlyTouCan: "G11111AA", Mass: 748.7},
		},
	})

	dbDir := t.TempDir()
	pdbDir := filepath.Join(dbDir, "GS00001", "PDB_format_ATOM")
	require.NoError(t, os.MkdirAll(pdbDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(pdbDir, "cluster0_beta.PDB.pdb"), []byte("ATOM beta"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dbDir, "GS00001", "snfg.svg"), []byte("<svg/>"), 0o644))

	store := disk.NewStore(dbDir)
	res := resolver.NewService(idx, resolver.NewNormalizer(nil, log), nil, log)
	engine := search.NewEngine(idx, config.SearchConfig{
		StructuralLimit: 10, TextLimit: 20, TextThreshold: 50,
	}, log)

	glycanHandler := handlers.NewGlycanHandler(idx, res, store, nil, log)
	searchHandler := handlers.NewSearchHandler(engine, nil, log)
	fileHandler := handlers.NewFileHandler(store, log)
	requestHandler := handlers.NewRequestHandler(filepath.Join(t.TempDir(), "request.txt"), "1234", log)
	healthHandler := handlers.NewHealthHandler(idx)

	r := chi.NewRouter()
	r.Get("/healthz", healthHandler.Live)
	r.Get("/readyz", healthHandler.Ready)
	r.Route("/api", func(r chi.Router) {
		r.Get("/available", glycanHandler.Available)
		r.Get("/exist/{identifier}", glycanHandler.Exist)
		r.Get("/glycan/{identifier}", glycanHandler.Get)
		r.Get("/pdb/{identifier}", glycanHandler.PDB)
		r.Get("/svg/{identifier}", glycanHandler.SNFG)
		r.Post("/search", searchHandler.Search)
		r.Post("/request", requestHandler.Submit)
		r.Get("/access/{pin}", requestHandler.Access)
	})
	r.Get("/database/*", fileHandler.Serve)

	return &fixture{router: r, dbDir: dbDir}
}

func (f *fixture) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) post(t *testing.T, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestAvailable(t *testing.T) {
	f := newFixture(t)
	rec := f.get(t, "/api/available")
	require.Equal(t, http.StatusOK, rec.Code)

	var accessions []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &accessions))
	assert.ElementsMatch(t, []string{"G00028MO", "G11111AA"}, accessions)
}

func TestExist(t *testing.T) {
	f := newFixture(t)

	rec := f.get(t, "/api/exist/G00028MO")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp types.ExistResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Exists)
	assert.Equal(t, "GlyTouCan", resp.Channel)
	assert.Equal(t, "archetype", resp.Anomer)
	assert.Equal(t, "GlyTouCan Match (Archetype)", resp.Reason)

	rec = f.get(t, "/api/exist/G11111AA")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Exists)
	assert.Equal(t, "alpha", resp.Anomer)

	rec = f.get(t, "/api/exist/G99999ZZ")
	require.Equal(t, http.StatusOK, rec.Code)
	// omitempty drops empty fields from the response, so reset the reused
	// struct to avoid inheriting values from the previous unmarshal
	resp = types.ExistResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Exists)
	assert.Empty(t, resp.Channel)
	assert.Empty(t, resp.Anomer)
}

func TestGetGlycan(t *testing.T) {
	f := newFixture(t)

	rec := f.get(t, "/api/glycan/G11111AA")
	require.Equal(t, http.StatusOK, rec.Code)
	var record glycan.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, "G00028MO", record.Archetype.GlyTouCan)

	rec = f.get(t, "/api/glycan/G99999ZZ")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPDBDownload(t *testing.T) {
	f := newFixture(t)

	// the alpha variant matched but only the beta file exists on disk
	rec := f.get(t, "/api/pdb/G11111AA")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ATOM beta", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "cluster0_beta.PDB.pdb")

	rec = f.get(t, "/api/pdb/G99999ZZ")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSNFG(t *testing.T) {
	f := newFixture(t)
	rec := f.get(t, "/api/svg/G00028MO")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<svg/>", rec.Body.String())
}

func TestSearch(t *testing.T) {
	f := newFixture(t)

	t.Run("wurcs query ranks structurally", func(t *testing.T) {
		rec := f.post(t, "/api/search", types.SearchRequest{SearchString: testWURCS})
		require.Equal(t, http.StatusOK, rec.Code)
		var resp types.SearchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "wurcs", resp.SearchType)
		require.NotEmpty(t, resp.Results)
		assert.Equal(t, "GS00001", resp.Results[0].ID)
	})

	t.Run("explicit wurcs search type", func(t *testing.T) {
		rec := f.post(t, "/api/search", types.SearchRequest{
			SearchString: testWURCS,
			SearchType:   "wurcs",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		var resp types.SearchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "wurcs", resp.SearchType)
		require.NotEmpty(t, resp.Results)
		assert.Equal(t, "GS00001", resp.Results[0].ID)
	})

	t.Run("category named in search string", func(t *testing.T) {
		rec := f.post(t, "/api/search", types.SearchRequest{SearchString: "N-Glycans"})
		require.Equal(t, http.StatusOK, rec.Code)
		var resp types.SearchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "N-Glycans", resp.SearchType)
		require.Len(t, resp.Results, 1)
		assert.Equal(t, "GS00001", resp.Results[0].ID)
	})

	t.Run("category as search type", func(t *testing.T) {
		rec := f.post(t, "/api/search", types.SearchRequest{
			SearchString: "anything",
			SearchType:   "N-Glycans",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		var resp types.SearchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Results, 1)
	})

	t.Run("free text fallback", func(t *testing.T) {
		rec := f.post(t, "/api/search", types.SearchRequest{SearchString: "G00028MO"})
		require.Equal(t, http.StatusOK, rec.Code)
		var resp types.SearchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "text", resp.SearchType)
		require.NotEmpty(t, resp.Results)
	})

	t.Run("end residue search", func(t *testing.T) {
		rec := f.post(t, "/api/search", types.SearchRequest{
			SearchString: "GlcNAc(b1-4)GlcNAc",
			SearchType:   "end",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		var resp types.SearchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Results, 1)
	})

	t.Run("unknown search type rejected", func(t *testing.T) {
		rec := f.post(t, "/api/search", types.SearchRequest{
			SearchString: "x",
			SearchType:   "bogus",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty search string rejected", func(t *testing.T) {
		rec := f.post(t, "/api/search", types.SearchRequest{SearchString: "  "})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRequestAndAccess(t *testing.T) {
	f := newFixture(t)

	rec := f.post(t, "/api/request", types.GlycanRequest{GlyTouCan: "G12345AB"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.post(t, "/api/request", types.GlycanRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.get(t, "/api/access/1234")
	require.Equal(t, http.StatusOK, rec.Code)
	var access types.AccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &access))
	assert.True(t, access.Authenticated)

	rec = f.get(t, "/api/access/0000")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &access))
	assert.False(t, access.Authenticated)
}

func TestDatabaseFileServing(t *testing.T) {
	f := newFixture(t)

	rec := f.get(t, "/database/GS00001/snfg.svg")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<svg/>", rec.Body.String())

	rec = f.get(t, "/database/GS00001/absent.json")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusOK, f.get(t, "/healthz").Code)
	assert.Equal(t, http.StatusOK, f.get(t, "/readyz").Code)
}
