// Package store holds the authoritative in-memory collections of users,
// nationalities, categories, recipes and harmonizations.
//
// Records are append-only. Reads hand out copies so callers never share
// backing arrays with the store, and every create is visible to the next read.
package store

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"gcs-food-backend/entities"
)

var (
	ErrDuplicateID    = errors.New("store: id already exists")
	ErrDuplicateEmail = errors.New("store: email already exists")
)

type Store struct {
	mu sync.RWMutex

	users          []entities.User
	nationalities  []entities.Nationality
	categories     []entities.Category
	recipes        []entities.Recipe
	harmonizations []entities.Harmonization

	userSeq          atomic.Int64
	recipeSeq        atomic.Int64
	harmonizationSeq atomic.Int64

	now func() time.Time
}

// NewEmpty returns a store with no records.
func NewEmpty() *Store {
	return &Store{now: time.Now}
}

// New returns a store loaded with the demo catalogue.
func New() *Store {
	s := NewEmpty()
	s.Load(Seed())
	return s
}

// Load appends a batch of records as-is, keeping their ids. Id counters are
// moved past the loaded records so minted ids never collide with them.
func (s *Store) Load(d Data) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, d.Users...)
	s.nationalities = append(s.nationalities, d.Nationalities...)
	s.categories = append(s.categories, d.Categories...)
	s.recipes = append(s.recipes, d.Recipes...)
	s.harmonizations = append(s.harmonizations, d.Harmonizations...)

	s.userSeq.Add(int64(len(d.Users)))
	s.recipeSeq.Add(int64(len(d.Recipes)))
	s.harmonizationSeq.Add(int64(len(d.Harmonizations)))
}

func (s *Store) Users() []entities.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.users)
}

func (s *Store) Nationalities() []entities.Nationality {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.nationalities)
}

func (s *Store) Categories() []entities.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories)
}

func (s *Store) Recipes() []entities.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.recipes)
}

func (s *Store) Harmonizations() []entities.Harmonization {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.harmonizations)
}

func (s *Store) CreateUser(u entities.User) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return entities.User{}, ErrDuplicateEmail
		}
	}

	u.ID = fmt.Sprintf("user-%d", s.userSeq.Add(1))
	u.CreatedAt = s.now().UTC()
	s.users = append(s.users, u)
	return u, nil
}

// CreateNationality keeps the caller supplied id; reference data is keyed by slug.
func (s *Store) CreateNationality(n entities.Nationality) (entities.Nationality, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.nationalities {
		if existing.ID == n.ID {
			return entities.Nationality{}, ErrDuplicateID
		}
	}
	s.nationalities = append(s.nationalities, n)
	return n, nil
}

func (s *Store) CreateCategory(c entities.Category) (entities.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.categories {
		if existing.ID == c.ID {
			return entities.Category{}, ErrDuplicateID
		}
	}
	s.categories = append(s.categories, c)
	return c, nil
}

func (s *Store) CreateRecipe(r entities.Recipe) entities.Recipe {
	r.Ingredients = slices.Clone(r.Ingredients)
	r.Instructions = slices.Clone(r.Instructions)
	r.Utensils = slices.Clone(r.Utensils)
	r.User, r.Nationality, r.Category = nil, nil, nil

	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = fmt.Sprintf("recipe-%d", s.recipeSeq.Add(1))
	r.CreatedAt = s.now().UTC()
	s.recipes = append(s.recipes, r)
	return r
}

func (s *Store) CreateHarmonization(h entities.Harmonization) entities.Harmonization {
	h.User = nil

	s.mu.Lock()
	defer s.mu.Unlock()
	h.ID = fmt.Sprintf("harm-%d", s.harmonizationSeq.Add(1))
	h.CreatedAt = s.now().UTC()
	s.harmonizations = append(s.harmonizations, h)
	return h
}
