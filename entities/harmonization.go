package entities

import (
	"time"
)

type Harmonization struct {
	ID          string    `gorm:"primary_key;size:64" json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description" gorm:"type:text"`
	Item1Name   string    `gorm:"column:item1_name" json:"item1Name"`
	Item2Name   string    `gorm:"column:item2_name" json:"item2Name"`
	ImageURL    string    `json:"imageUrl" gorm:"type:text"`
	Item1Color  string    `gorm:"column:item1_color" json:"item1Color"`
	UserID      string    `gorm:"index;size:64" json:"userId"`
	CreatedAt   time.Time `gorm:"type:timestamp" json:"createdAt"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
