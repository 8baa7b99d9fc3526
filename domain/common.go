package domain

import (
	"errors"
	"strings"
)

const (
	RoleUser = "user"

	DifficultyEasy   = "Fácil"
	DifficultyMedium = "Médio"
	DifficultyHard   = "Difícil"

	DefaultItemColor = "text-red-700"
	DefaultGlyph     = "❓"
)

var (
	Difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

	// ItemColors is the palette offered by the harmonization form.
	ItemColors = []string{
		"text-red-700",
		"text-red-500",
		"text-yellow-600",
		"text-green-600",
		"text-blue-600",
		"text-pink-500",
		"text-orange-500",
		"text-purple-600",
		"text-amber-800",
		"text-gray-500",
	}
)

var (
	MessageFailedBodyRequest  = "Invalid request body"
	MessageFailedValidation   = "Missing or invalid fields"
	MessageFailedTokenInvalid = "Invalid token"
	MessageTokenExpired       = "Token expired"
	MessageUnknownReference   = "Referenced record does not exist"
	MessageInvalidImage       = "Invalid image"

	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
	ErrUnknownUser  = errors.New("user does not exist")
	ErrInvalidImage = errors.New("image must be an http(s) URL or a base64 data URL")
)

// TrimAll trims every entry and drops the ones left blank. The result is
// never nil.
func TrimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
