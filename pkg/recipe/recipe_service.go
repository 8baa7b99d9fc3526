package recipe

import (
	"context"
	"fmt"

	"gcs-food-backend/domain"
	"gcs-food-backend/entities"
	"gcs-food-backend/internal/utils/storage"
)

const imageFolder = "recipes"

type (
	RecipeService interface {
		ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]*entities.Recipe, error)
		GetRecipe(ctx context.Context, id string) (*entities.Recipe, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (*entities.Recipe, error)
	}

	// ReferenceChecker reports whether the records a recipe points at exist.
	ReferenceChecker interface {
		UserExists(ctx context.Context, id string) (bool, error)
		NationalityExists(ctx context.Context, id string) (bool, error)
		CategoryExists(ctx context.Context, id string) (bool, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		references       ReferenceChecker
		images           storage.ImageStore
	}
)

// NewRecipeService builds the service. A nil references skips foreign key
// checks on create; a nil images stores data URLs as submitted.
func NewRecipeService(recipeRepository RecipeRepository, references ReferenceChecker, images storage.ImageStore) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		references:       references,
		images:           images,
	}
}

func (s *recipeService) ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]*entities.Recipe, error) {
	recipes, err := s.recipeRepository.FindMany(ctx, filter.Where(), domain.AllRecipeRelations)
	if err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []*entities.Recipe{}
	}
	return recipes, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, id string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.FindUnique(ctx, id, domain.AllRecipeRelations)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrRecipeNotFound
	}
	return recipe, nil
}

// CreateRecipe expects a normalized, validated request.
func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (*entities.Recipe, error) {
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	imageURL := req.ImageURL
	if s.images != nil && storage.IsDataURL(imageURL) {
		img, err := storage.ParseDataURL(imageURL, storage.AllowImage...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidImage, err)
		}
		if imageURL, err = s.images.UploadImage(ctx, img, imageFolder); err != nil {
			return nil, err
		}
	}

	recipe := &entities.Recipe{
		Title:         req.Title,
		Description:   req.Description,
		Ingredients:   req.Ingredients,
		Instructions:  req.Instructions,
		Utensils:      req.Utensils,
		ImageURL:      imageURL,
		PrepTime:      req.PrepTime,
		Servings:      req.Servings,
		Difficulty:    req.Difficulty,
		UserID:        req.UserID,
		NationalityID: req.NationalityID,
		CategoryID:    req.CategoryID,
	}
	if recipe.Utensils == nil {
		recipe.Utensils = []string{}
	}

	if err := s.recipeRepository.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) checkReferences(ctx context.Context, req domain.CreateRecipeRequest) error {
	if s.references == nil {
		return nil
	}

	checks := []struct {
		exists func(context.Context, string) (bool, error)
		id     string
		err    error
	}{
		{s.references.UserExists, req.UserID, domain.ErrUnknownUser},
		{s.references.NationalityExists, req.NationalityID, domain.ErrUnknownNationality},
		{s.references.CategoryExists, req.CategoryID, domain.ErrUnknownCategory},
	}
	for _, c := range checks {
		ok, err := c.exists(ctx, c.id)
		if err != nil {
			return err
		}
		if !ok {
			return c.err
		}
	}
	return nil
}
