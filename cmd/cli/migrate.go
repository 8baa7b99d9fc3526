package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gcs-food-backend/cmd/config"
	"gcs-food-backend/cmd/database/migrate"
	"gcs-food-backend/internal/store"
	"gcs-food-backend/internal/utils"
)

var seedOnMigrate bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the postgres schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := utils.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if cfg.DBDriver != utils.DriverPostgres {
			return fmt.Errorf("migrate needs DB_DRIVER=%s, got %q", utils.DriverPostgres, cfg.DBDriver)
		}

		db, err := config.ConnectDB(cfg)
		if err != nil {
			return err
		}
		if err := migrate.Migrate(db); err != nil {
			return err
		}
		if seedOnMigrate {
			if err := migrate.Seed(cmd.Context(), db, store.Seed()); err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Database migration complete")
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&seedOnMigrate, "seed", false, "Insert the demo catalogue after migrating")
	rootCmd.AddCommand(migrateCmd)
}
