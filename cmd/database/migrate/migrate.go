package migrate

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gcs-food-backend/entities"
	"gcs-food-backend/internal/store"
)

func Migrate(db *gorm.DB) error {
	models := []any{
		&entities.User{},
		&entities.Nationality{},
		&entities.Category{},
		&entities.Recipe{},
		&entities.Harmonization{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("error migrating %T: %w", model, err)
		}
	}
	return nil
}

// Seed inserts d, skipping rows whose primary key is already present, so it
// can run on every start.
func Seed(ctx context.Context, db *gorm.DB, d store.Data) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tx = tx.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Session(&gorm.Session{})
		batches := []struct {
			name string
			rows any
			n    int
		}{
			{"users", &d.Users, len(d.Users)},
			{"nationalities", &d.Nationalities, len(d.Nationalities)},
			{"categories", &d.Categories, len(d.Categories)},
			{"recipes", &d.Recipes, len(d.Recipes)},
			{"harmonizations", &d.Harmonizations, len(d.Harmonizations)},
		}
		for _, b := range batches {
			if b.n == 0 {
				continue
			}
			if err := tx.Create(b.rows).Error; err != nil {
				return fmt.Errorf("error seeding %s: %w", b.name, err)
			}
		}
		return nil
	})
}
