// File: entities/recipe.go
package entities

import (
	"time"
)

type Recipe struct {
	ID            string    `gorm:"primary_key;size:64" json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description" gorm:"type:text"`
	Ingredients   []string  `json:"ingredients" gorm:"type:text;serializer:json"`
	Instructions  []string  `json:"instructions" gorm:"type:text;serializer:json"`
	Utensils      []string  `json:"utensils" gorm:"type:text;serializer:json"`
	ImageURL      string    `json:"imageUrl,omitempty" gorm:"type:text"`
	PrepTime      int       `json:"prepTime"`
	Servings      int       `json:"servings"`
	Difficulty    string    `json:"difficulty"`
	UserID        string    `gorm:"index;size:64" json:"userId"`
	NationalityID string    `gorm:"index;size:64" json:"nationalityId"`
	CategoryID    string    `gorm:"index;size:64" json:"categoryId"`
	CreatedAt     time.Time `gorm:"type:timestamp" json:"createdAt"`

	// Relations are hydrated on demand and never persisted through these fields.
	User        *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Nationality *Nationality `gorm:"foreignKey:NationalityID" json:"nationality,omitempty"`
	Category    *Category    `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
