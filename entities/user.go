package entities

import "time"

type User struct {
	ID        string    `gorm:"primary_key;size:64" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:191" json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Avatar    *string   `json:"avatar,omitempty"`
	GoogleID  *string   `json:"googleId,omitempty"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"createdAt"`
}
