package domain

import (
	"errors"
	"strings"
)

var (
	MessageFailedGetNationalities   = "Failed to fetch nationalities"
	MessageFailedCreateNationality  = "Failed to create nationality"
	MessageFailedGetCategories      = "Failed to fetch categories"
	MessageFailedCreateCategory     = "Failed to create category"
	MessageNationalityAlreadyExists = "Nationality already exists"
	MessageCategoryAlreadyExists    = "Category already exists"

	ErrNationalityExists = errors.New("nationality already exists")
	ErrCategoryExists    = errors.New("category already exists")
	ErrBlankName         = errors.New("name must not be blank")
)

type (
	CreateNationalityRequest struct {
		ID        string `json:"id" validate:"omitempty"`
		Name      string `json:"name" validate:"required"`
		FlagEmoji string `json:"flagEmoji" validate:"omitempty"`
	}

	CreateCategoryRequest struct {
		ID    string `json:"id" validate:"omitempty"`
		Name  string `json:"name" validate:"required"`
		Emoji string `json:"emoji" validate:"omitempty"`
	}
)

func (r *CreateNationalityRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	r.FlagEmoji = strings.TrimSpace(r.FlagEmoji)
}

func (r *CreateCategoryRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	r.Emoji = strings.TrimSpace(r.Emoji)
}
