package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gcs-food-backend/cmd/config"
	"gcs-food-backend/internal/utils"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return withRepositories(ctx, func(cfg *utils.Config, log *zap.Logger, repos config.Repositories) error {
			images, err := config.NewImageStore(ctx, cfg)
			if err != nil {
				return err
			}
			app, err := config.NewApp(cfg, repos, images, log)
			if err != nil {
				return err
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info("listening", zap.String("port", cfg.AppPort), zap.String("db_driver", cfg.DBDriver))
				errCh <- app.Listen(":" + cfg.AppPort)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Info("shutting down")
			if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
