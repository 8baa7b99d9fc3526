package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gcs-food-backend/cmd/config"
	"gcs-food-backend/internal/logger"
	"gcs-food-backend/internal/utils"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "gcs-food",
	Short:         "gcs-food serves the recipe and harmonization API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to the YAML config file")
}

// withRepositories loads config, builds the logger and opens the configured
// repositories for the duration of fn.
func withRepositories(ctx context.Context, fn func(cfg *utils.Config, log *zap.Logger, repos config.Repositories) error) error {
	cfg, err := utils.LoadConfig(configPath)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	repos, release, err := config.OpenRepositories(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer release()

	return fn(cfg, log, repos)
}
