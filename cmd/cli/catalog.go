package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"gcs-food-backend/cmd/config"
	"gcs-food-backend/internal/utils"
	"gcs-food-backend/pkg/catalog"
)

type catalogFile struct {
	Nationalities []struct {
		Name      string `yaml:"name"`
		FlagEmoji string `yaml:"flagEmoji"`
	} `yaml:"nationalities"`
	Categories []struct {
		Name  string `yaml:"name"`
		Emoji string `yaml:"emoji"`
	} `yaml:"categories"`
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage nationalities and categories",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List nationalities and categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepositories(cmd.Context(), func(_ *utils.Config, _ *zap.Logger, repos config.Repositories) error {
			svc := catalog.NewCatalogService(repos.Nationalities, repos.Categories)

			nationalities, err := svc.ListNationalities(cmd.Context())
			if err != nil {
				return err
			}
			categories, err := svc.ListCategories(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "KIND\tID\tNAME\tGLYPH")
			for _, n := range nationalities {
				fmt.Fprintf(out, "nationality\t%s\t%s\t%s\n", n.ID, n.Name, n.FlagEmoji)
			}
			for _, c := range categories {
				fmt.Fprintf(out, "category\t%s\t%s\t%s\n", c.ID, c.Name, c.Emoji)
			}
			return nil
		})
	},
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add the nationalities and categories listed in a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		overlay, err := loadOverlay(args[0])
		if err != nil {
			return err
		}
		pending := len(overlay.PendingNationalities()) + len(overlay.PendingCategories())

		return withRepositories(cmd.Context(), func(_ *utils.Config, _ *zap.Logger, repos config.Repositories) error {
			svc := catalog.NewCatalogService(repos.Nationalities, repos.Categories)
			if err := overlay.Persist(cmd.Context(), svc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d catalog entries\n", pending)
			return nil
		})
	},
}

func loadOverlay(path string) (*catalog.Overlay, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file catalogFile
	if err := yaml.UnmarshalStrict(raw, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	overlay := catalog.NewOverlay()
	for _, n := range file.Nationalities {
		if _, err := overlay.AddNationality(n.Name, n.FlagEmoji); err != nil {
			return nil, fmt.Errorf("nationality %q: %w", n.Name, err)
		}
	}
	for _, c := range file.Categories {
		if _, err := overlay.AddCategory(c.Name, c.Emoji); err != nil {
			return nil, fmt.Errorf("category %q: %w", c.Name, err)
		}
	}
	return overlay, nil
}

func init() {
	catalogCmd.AddCommand(catalogListCmd, catalogImportCmd)
	rootCmd.AddCommand(catalogCmd)
}
