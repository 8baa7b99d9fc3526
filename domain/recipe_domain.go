package domain

import (
	"errors"
	"strings"
)

var (
	MessageFailedGetRecipes      = "Failed to fetch recipes"
	MessageFailedGetRecipeDetail = "Failed to fetch recipe"
	MessageFailedCreateRecipe    = "Failed to create recipe"
	MessageRecipeNotFound        = "Recipe not found"

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrUnknownNationality = errors.New("nationality does not exist")
	ErrUnknownCategory    = errors.New("category does not exist")
)

type (
	// RecipeWhere is a conjunction of exact-match foreign keys plus an optional
	// case-insensitive search over title and description. Empty fields are ignored.
	RecipeWhere struct {
		NationalityID string
		CategoryID    string
		UserID        string
		Search        string
	}

	RecipeInclude struct {
		User        bool
		Nationality bool
		Category    bool
	}

	RecipeFilter struct {
		NationalityID string `query:"nationalityId"`
		CategoryID    string `query:"categoryId"`
		UserID        string `query:"userId"`
		Search        string `query:"search"`
	}

	CreateRecipeRequest struct {
		Title         string   `json:"title" validate:"required"`
		Description   string   `json:"description" validate:"required"`
		Ingredients   []string `json:"ingredients" validate:"required,min=1,dive,required"`
		Instructions  []string `json:"instructions" validate:"required,min=1,dive,required"`
		Utensils      []string `json:"utensils" validate:"omitempty,dive,required"`
		ImageURL      string   `json:"imageUrl" validate:"omitempty"`
		PrepTime      int      `json:"prepTime" validate:"gt=0"`
		Servings      int      `json:"servings" validate:"gt=0"`
		Difficulty    string   `json:"difficulty" validate:"required,difficulty"`
		UserID        string   `json:"userId" validate:"required"`
		NationalityID string   `json:"nationalityId" validate:"required"`
		CategoryID    string   `json:"categoryId" validate:"required"`
	}
)

// AllRecipeRelations is what the list and detail endpoints hydrate.
var AllRecipeRelations = RecipeInclude{User: true, Nationality: true, Category: true}

// Normalize trims text fields and drops blank list entries before validation.
func (r *CreateRecipeRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Ingredients = TrimAll(r.Ingredients)
	r.Instructions = TrimAll(r.Instructions)
	r.Utensils = TrimAll(r.Utensils)
	r.ImageURL = strings.TrimSpace(r.ImageURL)
	r.Difficulty = strings.TrimSpace(r.Difficulty)
	r.UserID = strings.TrimSpace(r.UserID)
	r.NationalityID = strings.TrimSpace(r.NationalityID)
	r.CategoryID = strings.TrimSpace(r.CategoryID)
}

// Where trims the foreign keys; Search is matched exactly as sent.
func (f RecipeFilter) Where() RecipeWhere {
	return RecipeWhere{
		NationalityID: strings.TrimSpace(f.NationalityID),
		CategoryID:    strings.TrimSpace(f.CategoryID),
		UserID:        strings.TrimSpace(f.UserID),
		Search:        f.Search,
	}
}
