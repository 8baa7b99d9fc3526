package catalog

import (
	"context"

	"gcs-food-backend/entities"
)

type UserFinder interface {
	FindUnique(ctx context.Context, id string) (*entities.User, error)
}

// ReferenceChecker resolves the foreign keys carried by recipes and
// harmonizations against the current records.
type ReferenceChecker struct {
	nationalities NationalityRepository
	categories    CategoryRepository
	users         UserFinder
}

func NewReferenceChecker(nationalities NationalityRepository, categories CategoryRepository, users UserFinder) *ReferenceChecker {
	return &ReferenceChecker{
		nationalities: nationalities,
		categories:    categories,
		users:         users,
	}
}

func (r *ReferenceChecker) UserExists(ctx context.Context, id string) (bool, error) {
	user, err := r.users.FindUnique(ctx, id)
	return user != nil, err
}

func (r *ReferenceChecker) NationalityExists(ctx context.Context, id string) (bool, error) {
	nationality, err := r.nationalities.FindUnique(ctx, id)
	return nationality != nil, err
}

func (r *ReferenceChecker) CategoryExists(ctx context.Context, id string) (bool, error) {
	category, err := r.categories.FindUnique(ctx, id)
	return category != nil, err
}
