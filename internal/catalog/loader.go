package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/glycoshape/glycoshape-api/internal/domain/glycan"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
	apperrors "github.com/glycoshape/glycoshape-api/pkg/errors"
)

// Load reads the consolidated catalog JSON, a single document mapping
// internal IDs to records, and builds the immutable Index. Called once at
// process startup.
func Load(path string, log logging.Logger) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeCatalogLoadFailed,
			fmt.Sprintf("reading catalog file %s", path))
	}
	return Parse(data, log)
}

// Parse builds the Index from raw catalog JSON.
func Parse(data []byte, log logging.Logger) (*Index, error) {
	var raw map[string]*glycan.Record
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeCatalogCorrupt, "decoding catalog JSON")
	}

	for id, rec := range raw {
		if rec == nil {
			return nil, apperrors.Newf(apperrors.ErrCodeCatalogCorrupt, "catalog entry %q is null", id)
		}
	}

	idx := NewIndex(raw)
	log.Info("catalog loaded",
		logging.Int("records", idx.Len()),
	)
	return idx, nil
}
