package entities

type Nationality struct {
	ID        string `gorm:"primary_key;size:64" json:"id"`
	Name      string `json:"name"`
	FlagEmoji string `json:"flagEmoji"`
}

type Category struct {
	ID    string `gorm:"primary_key;size:64" json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}
