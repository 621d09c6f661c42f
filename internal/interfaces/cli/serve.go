package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/glycoshape/glycoshape-api/internal/application"
	"github.com/glycoshape/glycoshape-api/internal/config"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader := config.NewLoader(configFile)
			cfg, err := loader.Load()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app, err := application.New(ctx, cfg)
			if err != nil {
				return err
			}

			loader.Watch(func(updated *config.Config) {
				logging.SetLevel(app.Logger, updated.Logging.Level)
				app.Search.SetConfig(updated.Search)
				app.Logger.Info("configuration reloaded; server settings still require a restart",
					logging.String("log_level", updated.Logging.Level),
					logging.Int("structural_limit", updated.Search.StructuralLimit),
					logging.Int("text_limit", updated.Search.TextLimit),
					logging.Float64("text_threshold", updated.Search.TextThreshold),
				)
			})

			return app.Run(ctx)
		},
	}
}
