package cli

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/glycoshape/glycoshape-api/internal/catalog"
	"github.com/glycoshape/glycoshape-api/internal/config"
	"github.com/glycoshape/glycoshape-api/internal/domain/glycan"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
	"github.com/glycoshape/glycoshape-api/internal/search"
	apperrors "github.com/glycoshape/glycoshape-api/pkg/errors"
	"github.com/glycoshape/glycoshape-api/pkg/types"
)

func newSearchCommand() *cobra.Command {
	var searchType string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog by structure, text, end residue or category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader(configFile).Load()
			if err != nil {
				return err
			}
			log := logging.NewNopLogger()

			catalogPath := cfg.Database.CatalogFile
			if !filepath.IsAbs(catalogPath) {
				catalogPath = filepath.Join(cfg.Database.Dir, catalogPath)
			}
			index, err := catalog.Load(catalogPath, log)
			if err != nil {
				return err
			}
			engine := search.NewEngine(index, cfg.Search, log)

			hits, err := runSearch(engine, args[0], searchType)
			if err != nil {
				return err
			}

			results := make([]types.SearchResult, 0, len(hits))
			for _, hit := range hits {
				results = append(results, types.SearchResult{
					GlyTouCan: hit.Record.Archetype.GlyTouCan,
					ID:        hit.Record.InternalID,
					Mass:      hit.Record.Archetype.Mass,
					Score:     hit.Score,
				})
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(types.SearchResponse{SearchString: args[0], SearchType: searchType, Results: results})
		},
	}
	cmd.Flags().StringVarP(&searchType, "type", "t", "", "search type: wurcs, end, all, a category name, or empty to detect")
	return cmd
}

func runSearch(engine *search.Engine, query, searchType string) ([]search.Hit, error) {
	switch {
	case searchType == "wurcs":
		return engine.Structural(query)
	case searchType == "end":
		return engine.EndResidue(query), nil
	case searchType == "all":
		return engine.All(), nil
	case searchType != "":
		if cat, ok := glycan.KnownCategory(searchType); ok {
			return engine.Category(cat), nil
		}
		return nil, apperrors.InvalidParam("unknown search type " + searchType)
	}
	if cat, ok := glycan.KnownCategory(query); ok {
		return engine.Category(cat), nil
	}
	if glycan.DetectNotation(query) == glycan.NotationWURCS {
		return engine.Structural(query)
	}
	return engine.FreeText(query), nil
}
