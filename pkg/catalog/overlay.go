package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gcs-food-backend/domain"
	"gcs-food-backend/entities"
)

// Overlay holds nationalities and categories added locally before they reach
// the server. Merged listings show server records first, then pending local
// ones; a server record wins when both carry the same id.
type Overlay struct {
	mu            sync.Mutex
	nationalities []entities.Nationality
	categories    []entities.Category
}

func NewOverlay() *Overlay {
	return &Overlay{}
}

func (o *Overlay) AddNationality(name, flagEmoji string) (entities.Nationality, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Nationality{}, domain.ErrBlankName
	}
	n := entities.Nationality{ID: Slug(name), Name: name, FlagEmoji: strings.TrimSpace(flagEmoji)}
	if n.FlagEmoji == "" {
		n.FlagEmoji = domain.DefaultGlyph
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if slices.ContainsFunc(o.nationalities, func(p entities.Nationality) bool { return p.ID == n.ID }) {
		return entities.Nationality{}, domain.ErrNationalityExists
	}
	o.nationalities = append(o.nationalities, n)
	return n, nil
}

func (o *Overlay) AddCategory(name, emoji string) (entities.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Category{}, domain.ErrBlankName
	}
	c := entities.Category{ID: Slug(name), Name: name, Emoji: strings.TrimSpace(emoji)}
	if c.Emoji == "" {
		c.Emoji = domain.DefaultGlyph
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if slices.ContainsFunc(o.categories, func(p entities.Category) bool { return p.ID == c.ID }) {
		return entities.Category{}, domain.ErrCategoryExists
	}
	o.categories = append(o.categories, c)
	return c, nil
}

func (o *Overlay) PendingNationalities() []entities.Nationality {
	o.mu.Lock()
	defer o.mu.Unlock()
	return slices.Clone(o.nationalities)
}

func (o *Overlay) PendingCategories() []entities.Category {
	o.mu.Lock()
	defer o.mu.Unlock()
	return slices.Clone(o.categories)
}

func (o *Overlay) MergeNationalities(server []*entities.Nationality) []*entities.Nationality {
	return merge(server, o.PendingNationalities(), func(n entities.Nationality) string { return n.ID })
}

func (o *Overlay) MergeCategories(server []*entities.Category) []*entities.Category {
	return merge(server, o.PendingCategories(), func(c entities.Category) string { return c.ID })
}

func merge[T any](server []*T, pending []T, id func(T) string) []*T {
	out := make([]*T, 0, len(server)+len(pending))
	seen := make(map[string]struct{}, len(server))
	for _, s := range server {
		seen[id(*s)] = struct{}{}
		out = append(out, s)
	}
	for i := range pending {
		if _, ok := seen[id(pending[i])]; ok {
			continue
		}
		out = append(out, &pending[i])
	}
	return out
}

// Persist creates every pending entry through svc. Entries that are created,
// or that the server already has, leave the overlay; the rest stay pending
// and their errors are joined.
func (o *Overlay) Persist(ctx context.Context, svc CatalogService) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	var errs []error

	keptNationalities := o.nationalities[:0]
	for _, n := range o.nationalities {
		_, err := svc.CreateNationality(ctx, domain.CreateNationalityRequest{ID: n.ID, Name: n.Name, FlagEmoji: n.FlagEmoji})
		if err == nil || errors.Is(err, domain.ErrNationalityExists) {
			continue
		}
		errs = append(errs, fmt.Errorf("nationality %q: %w", n.ID, err))
		keptNationalities = append(keptNationalities, n)
	}
	o.nationalities = keptNationalities

	keptCategories := o.categories[:0]
	for _, c := range o.categories {
		_, err := svc.CreateCategory(ctx, domain.CreateCategoryRequest{ID: c.ID, Name: c.Name, Emoji: c.Emoji})
		if err == nil || errors.Is(err, domain.ErrCategoryExists) {
			continue
		}
		errs = append(errs, fmt.Errorf("category %q: %w", c.ID, err))
		keptCategories = append(keptCategories, c)
	}
	o.categories = keptCategories

	return errors.Join(errs...)
}
