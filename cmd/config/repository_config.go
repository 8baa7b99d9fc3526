package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"gcs-food-backend/cmd/database/migrate"
	"gcs-food-backend/internal/store"
	"gcs-food-backend/internal/utils"
	"gcs-food-backend/pkg/catalog"
	"gcs-food-backend/pkg/harmonization"
	"gcs-food-backend/pkg/query"
	"gcs-food-backend/pkg/recipe"
	"gcs-food-backend/pkg/user"
)

type Repositories struct {
	Users          user.UserRepository
	Nationalities  catalog.NationalityRepository
	Categories     catalog.CategoryRepository
	Recipes        recipe.RecipeRepository
	Harmonizations harmonization.HarmonizationRepository
}

// NewMemoryRepositories serves every repository from the query client over s.
func NewMemoryRepositories(s *store.Store) Repositories {
	client := query.NewClient(s)
	return Repositories{
		Users:          client.User,
		Nationalities:  client.Nationality,
		Categories:     client.Category,
		Recipes:        client.Recipe,
		Harmonizations: client.Harmonization,
	}
}

func NewGormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:          user.NewUserRepository(db),
		Nationalities:  catalog.NewNationalityRepository(db),
		Categories:     catalog.NewCategoryRepository(db),
		Recipes:        recipe.NewRecipeRepository(db),
		Harmonizations: harmonization.NewHarmonizationRepository(db),
	}
}

// OpenRepositories picks the backend named by DB_DRIVER. The returned func
// releases it.
func OpenRepositories(ctx context.Context, cfg *utils.Config, log *zap.Logger) (Repositories, func(), error) {
	if cfg.DBDriver == utils.DriverMemory {
		s := store.NewEmpty()
		if cfg.DBSeed {
			s.Load(store.Seed())
		}
		log.Info("using in-memory store", zap.Bool("seeded", cfg.DBSeed))
		return NewMemoryRepositories(s), func() {}, nil
	}

	db, err := ConnectDB(cfg)
	if err != nil {
		return Repositories{}, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return Repositories{}, nil, fmt.Errorf("database handle: %w", err)
	}
	closeDB := func() { _ = sqlDB.Close() }

	if err := migrate.Migrate(db); err != nil {
		closeDB()
		return Repositories{}, nil, err
	}
	if cfg.DBSeed {
		if err := migrate.Seed(ctx, db, store.Seed()); err != nil {
			closeDB()
			return Repositories{}, nil, err
		}
	}
	log.Info("using postgres", zap.String("host", cfg.DBHost), zap.String("database", cfg.DBName))
	return NewGormRepositories(db), closeDB, nil
}
