// Package query answers filtered reads over the in-memory store the way an
// ORM client would: per-kind delegates with FindMany, FindUnique and Create,
// a where filter and an include spec for relation hydration.
//
// Nothing is cached. Every call re-reads the store, so a create is visible to
// the very next read.
package query

import (
	"strings"

	"gcs-food-backend/internal/store"
)

type Client struct {
	User          *UserDelegate
	Nationality   *NationalityDelegate
	Category      *CategoryDelegate
	Recipe        *RecipeDelegate
	Harmonization *HarmonizationDelegate
}

func NewClient(s *store.Store) *Client {
	return &Client{
		User:          &UserDelegate{store: s},
		Nationality:   &NationalityDelegate{store: s},
		Category:      &CategoryDelegate{store: s},
		Recipe:        &RecipeDelegate{store: s},
		Harmonization: &HarmonizationDelegate{store: s},
	}
}

// Predicate reports whether a record passes one clause of a where filter.
type Predicate[T any] func(T) bool

// Filter keeps the items accepted by every predicate, preserving input order.
// The result is never nil.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
next:
	for _, item := range items {
		for _, p := range preds {
			if !p(item) {
				continue next
			}
		}
		out = append(out, item)
	}
	return out
}

// Equals builds an exact-match clause. An empty want matches everything so
// absent filter fields are tolerated.
func Equals[T any](want string, field func(T) string) Predicate[T] {
	return func(item T) bool {
		return want == "" || field(item) == want
	}
}

// AnyContains builds the OR-group search clause: the item passes when at
// least one field contains q, ignoring case. An empty q matches everything.
func AnyContains[T any](q string, fields ...func(T) string) Predicate[T] {
	return func(item T) bool {
		if q == "" {
			return true
		}
		values := make([]string, 0, len(fields))
		for _, f := range fields {
			values = append(values, f(item))
		}
		return ContainsFold(q, values...)
	}
}

// ContainsFold reports whether any of fields contains q, case-insensitively.
func ContainsFold(q string, fields ...string) bool {
	needle := strings.ToLower(q)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// first returns a copy of the first matching item, or nil.
func first[T any](items []T, match func(T) bool) *T {
	for _, item := range items {
		if match(item) {
			found := item
			return &found
		}
	}
	return nil
}
