package query

import (
	"context"
	"errors"

	"gcs-food-backend/domain"
	"gcs-food-backend/entities"
	"gcs-food-backend/internal/store"
)

type NationalityDelegate struct {
	store *store.Store
}

func (d *NationalityDelegate) FindMany(ctx context.Context) ([]*entities.Nationality, error) {
	all := d.store.Nationalities()
	out := make([]*entities.Nationality, 0, len(all))
	for i := range all {
		out = append(out, &all[i])
	}
	return out, nil
}

func (d *NationalityDelegate) FindUnique(ctx context.Context, id string) (*entities.Nationality, error) {
	return first(d.store.Nationalities(), func(n entities.Nationality) bool { return n.ID == id }), nil
}

func (d *NationalityDelegate) Create(ctx context.Context, nationality *entities.Nationality) error {
	created, err := d.store.CreateNationality(*nationality)
	if errors.Is(err, store.ErrDuplicateID) {
		return domain.ErrNationalityExists
	}
	if err != nil {
		return err
	}
	*nationality = created
	return nil
}

type CategoryDelegate struct {
	store *store.Store
}

func (d *CategoryDelegate) FindMany(ctx context.Context) ([]*entities.Category, error) {
	all := d.store.Categories()
	out := make([]*entities.Category, 0, len(all))
	for i := range all {
		out = append(out, &all[i])
	}
	return out, nil
}

func (d *CategoryDelegate) FindUnique(ctx context.Context, id string) (*entities.Category, error) {
	return first(d.store.Categories(), func(c entities.Category) bool { return c.ID == id }), nil
}

func (d *CategoryDelegate) Create(ctx context.Context, category *entities.Category) error {
	created, err := d.store.CreateCategory(*category)
	if errors.Is(err, store.ErrDuplicateID) {
		return domain.ErrCategoryExists
	}
	if err != nil {
		return err
	}
	*category = created
	return nil
}
