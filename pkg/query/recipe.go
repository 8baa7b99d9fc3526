package query

import (
	"context"
	"slices"

	"gcs-food-backend/domain"
	"gcs-food-backend/entities"
	"gcs-food-backend/internal/store"
)

type RecipeDelegate struct {
	store *store.Store
}

func (d *RecipeDelegate) FindMany(ctx context.Context, where domain.RecipeWhere, include domain.RecipeInclude) ([]*entities.Recipe, error) {
	matched := Filter(d.store.Recipes(),
		Equals(where.NationalityID, func(r entities.Recipe) string { return r.NationalityID }),
		Equals(where.CategoryID, func(r entities.Recipe) string { return r.CategoryID }),
		Equals(where.UserID, func(r entities.Recipe) string { return r.UserID }),
		AnyContains(where.Search,
			func(r entities.Recipe) string { return r.Title },
			func(r entities.Recipe) string { return r.Description },
		),
	)

	h := d.hydrator(include)
	out := make([]*entities.Recipe, 0, len(matched))
	for _, r := range matched {
		out = append(out, h(r))
	}
	return out, nil
}

// FindUnique returns nil without an error when no recipe has the id.
func (d *RecipeDelegate) FindUnique(ctx context.Context, id string, include domain.RecipeInclude) (*entities.Recipe, error) {
	r := first(d.store.Recipes(), func(r entities.Recipe) bool { return r.ID == id })
	if r == nil {
		return nil, nil
	}
	return d.hydrator(include)(*r), nil
}

// Create stores the recipe as given; foreign keys are not checked.
func (d *RecipeDelegate) Create(ctx context.Context, recipe *entities.Recipe) error {
	created := d.store.CreateRecipe(*recipe)
	*recipe = cloneRecipe(created)
	return nil
}

// hydrator snapshots the related collections once per query.
func (d *RecipeDelegate) hydrator(include domain.RecipeInclude) func(entities.Recipe) *entities.Recipe {
	var (
		users         []entities.User
		nationalities []entities.Nationality
		categories    []entities.Category
	)
	if include.User {
		users = d.store.Users()
	}
	if include.Nationality {
		nationalities = d.store.Nationalities()
	}
	if include.Category {
		categories = d.store.Categories()
	}

	return func(r entities.Recipe) *entities.Recipe {
		out := cloneRecipe(r)
		if include.User {
			out.User = first(users, func(u entities.User) bool { return u.ID == r.UserID })
		}
		if include.Nationality {
			out.Nationality = first(nationalities, func(n entities.Nationality) bool { return n.ID == r.NationalityID })
		}
		if include.Category {
			out.Category = first(categories, func(c entities.Category) bool { return c.ID == r.CategoryID })
		}
		return &out
	}
}

func cloneRecipe(r entities.Recipe) entities.Recipe {
	r.Ingredients = slices.Clone(r.Ingredients)
	r.Instructions = slices.Clone(r.Instructions)
	r.Utensils = slices.Clone(r.Utensils)
	r.User, r.Nationality, r.Category = nil, nil, nil
	return r
}
