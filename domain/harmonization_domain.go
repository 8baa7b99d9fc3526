package domain

import (
	"errors"
	"strings"
)

var (
	MessageFailedGetHarmonizations      = "Failed to fetch harmonizations"
	MessageFailedGetHarmonizationDetail = "Failed to fetch harmonization"
	MessageFailedCreateHarmonization    = "Failed to create harmonization"
	MessageHarmonizationNotFound        = "Harmonization not found"

	ErrHarmonizationNotFound = errors.New("harmonization not found")
)

type (
	// HarmonizationWhere searches title, description and both item names.
	HarmonizationWhere struct {
		UserID string
		Search string
	}

	HarmonizationInclude struct {
		User bool
	}

	HarmonizationFilter struct {
		UserID string `query:"userId"`
		Search string `query:"search"`
	}

	CreateHarmonizationRequest struct {
		Title       string `json:"title" validate:"required"`
		Description string `json:"description" validate:"required"`
		Item1Name   string `json:"item1Name" validate:"required"`
		Item2Name   string `json:"item2Name" validate:"required"`
		ImageURL    string `json:"imageUrl" validate:"required"`
		Item1Color  string `json:"item1Color" validate:"required,itemcolor"`
		UserID      string `json:"userId" validate:"required"`
	}
)

// Normalize trims text fields and falls back to the default item color.
func (r *CreateHarmonizationRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Item1Name = strings.TrimSpace(r.Item1Name)
	r.Item2Name = strings.TrimSpace(r.Item2Name)
	r.ImageURL = strings.TrimSpace(r.ImageURL)
	r.UserID = strings.TrimSpace(r.UserID)
	if r.Item1Color = strings.TrimSpace(r.Item1Color); r.Item1Color == "" {
		r.Item1Color = DefaultItemColor
	}
}

// Where trims the user id; Search is matched exactly as sent.
func (f HarmonizationFilter) Where() HarmonizationWhere {
	return HarmonizationWhere{
		UserID: strings.TrimSpace(f.UserID),
		Search: f.Search,
	}
}
