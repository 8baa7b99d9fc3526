package recipe

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gcs-food-backend/domain"
	"gcs-food-backend/entities"
	"gcs-food-backend/internal/utils"
)

type (
	RecipeRepository interface {
		FindMany(ctx context.Context, where domain.RecipeWhere, include domain.RecipeInclude) ([]*entities.Recipe, error)
		FindUnique(ctx context.Context, id string, include domain.RecipeInclude) (*entities.Recipe, error)
		Create(ctx context.Context, recipe *entities.Recipe) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) FindMany(ctx context.Context, where domain.RecipeWhere, include domain.RecipeInclude) ([]*entities.Recipe, error) {
	q := r.db.WithContext(ctx).Model(&entities.Recipe{})
	if where.NationalityID != "" {
		q = q.Where("nationality_id = ?", where.NationalityID)
	}
	if where.CategoryID != "" {
		q = q.Where("category_id = ?", where.CategoryID)
	}
	if where.UserID != "" {
		q = q.Where("user_id = ?", where.UserID)
	}
	if where.Search != "" {
		like := utils.LikePattern(where.Search)
		q = q.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}

	recipes := make([]*entities.Recipe, 0)
	if err := preload(q, include).Order("created_at asc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) FindUnique(ctx context.Context, id string, include domain.RecipeInclude) (*entities.Recipe, error) {
	var recipe entities.Recipe
	err := preload(r.db.WithContext(ctx), include).Where("id = ?", id).First(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) Create(ctx context.Context, recipe *entities.Recipe) error {
	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(recipe).Error
}

func preload(q *gorm.DB, include domain.RecipeInclude) *gorm.DB {
	if include.User {
		q = q.Preload("User")
	}
	if include.Nationality {
		q = q.Preload("Nationality")
	}
	if include.Category {
		q = q.Preload("Category")
	}
	return q
}
