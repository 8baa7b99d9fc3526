package query

import (
	"context"
	"errors"
	"strings"

	"gcs-food-backend/domain"
	"gcs-food-backend/entities"
	"gcs-food-backend/internal/store"
)

type UserDelegate struct {
	store *store.Store
}

func (d *UserDelegate) FindMany(ctx context.Context) ([]*entities.User, error) {
	all := d.store.Users()
	out := make([]*entities.User, 0, len(all))
	for i := range all {
		out = append(out, &all[i])
	}
	return out, nil
}

func (d *UserDelegate) FindUnique(ctx context.Context, id string) (*entities.User, error) {
	return first(d.store.Users(), func(u entities.User) bool { return u.ID == id }), nil
}

func (d *UserDelegate) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return first(d.store.Users(), func(u entities.User) bool { return strings.EqualFold(u.Email, email) }), nil
}

func (d *UserDelegate) Create(ctx context.Context, user *entities.User) error {
	created, err := d.store.CreateUser(*user)
	if errors.Is(err, store.ErrDuplicateEmail) {
		return domain.ErrEmailRegistered
	}
	if err != nil {
		return err
	}
	*user = created
	return nil
}
