package query

import (
	"context"

	"gcs-food-backend/domain"
	"gcs-food-backend/entities"
	"gcs-food-backend/internal/store"
)

type HarmonizationDelegate struct {
	store *store.Store
}

func (d *HarmonizationDelegate) FindMany(ctx context.Context, where domain.HarmonizationWhere, include domain.HarmonizationInclude) ([]*entities.Harmonization, error) {
	matched := Filter(d.store.Harmonizations(),
		Equals(where.UserID, func(h entities.Harmonization) string { return h.UserID }),
		AnyContains(where.Search,
			func(h entities.Harmonization) string { return h.Title },
			func(h entities.Harmonization) string { return h.Description },
			func(h entities.Harmonization) string { return h.Item1Name },
			func(h entities.Harmonization) string { return h.Item2Name },
		),
	)

	hydrate := d.hydrator(include)
	out := make([]*entities.Harmonization, 0, len(matched))
	for _, h := range matched {
		out = append(out, hydrate(h))
	}
	return out, nil
}

func (d *HarmonizationDelegate) FindUnique(ctx context.Context, id string, include domain.HarmonizationInclude) (*entities.Harmonization, error) {
	h := first(d.store.Harmonizations(), func(h entities.Harmonization) bool { return h.ID == id })
	if h == nil {
		return nil, nil
	}
	return d.hydrator(include)(*h), nil
}

func (d *HarmonizationDelegate) Create(ctx context.Context, harmonization *entities.Harmonization) error {
	created := d.store.CreateHarmonization(*harmonization)
	*harmonization = created
	return nil
}

func (d *HarmonizationDelegate) hydrator(include domain.HarmonizationInclude) func(entities.Harmonization) *entities.Harmonization {
	var users []entities.User
	if include.User {
		users = d.store.Users()
	}

	return func(h entities.Harmonization) *entities.Harmonization {
		h.User = nil
		if include.User {
			h.User = first(users, func(u entities.User) bool { return u.ID == h.UserID })
		}
		return &h
	}
}
