package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/glycoshape/glycoshape-api/internal/catalog"
	"github.com/glycoshape/glycoshape-api/internal/config"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/conversion"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
	"github.com/glycoshape/glycoshape-api/internal/resolver"
)

func newResolveCommand() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "resolve <identifier>",
		Short: "Resolve a glycan identifier against the catalog",
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

			converter := conversion.NewGlyCosmosClient(cfg.Conversion, nil, log)
			svc := resolver.NewService(index, resolver.NewNormalizer(converter, log), nil, log)

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			result := svc.Exists(ctx, args[0])

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "resolution timeout")
	return cmd
}
