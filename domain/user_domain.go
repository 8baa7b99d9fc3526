package domain

import (
	"errors"
	"strings"

	"gcs-food-backend/entities"
)

var (
	MessageFailedLogin     = "Failed to login"
	MessageFailedRegister  = "Failed to register"
	MessageFailedGetUser   = "Failed to fetch user"
	MessageUserNotFound    = "User not found"
	MessageEmailRegistered = "Email already registered"

	ErrUserNotFound    = errors.New("user not found")
	ErrEmailRegistered = errors.New("email already registered")
)

type (
	RegisterRequest struct {
		FirstName string `json:"firstName" validate:"required"`
		LastName  string `json:"lastName" validate:"required"`
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"omitempty"`
		GoogleID  string `json:"googleId" validate:"omitempty"`
		Avatar    string `json:"avatar" validate:"omitempty"`
	}

	// LoginRequest carries the password only for form parity; it is not checked.
	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"omitempty"`
	}

	LoginResponse struct {
		Token string         `json:"token"`
		User  *entities.User `json:"user"`
	}
)

func (r *RegisterRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.GoogleID = strings.TrimSpace(r.GoogleID)
	r.Avatar = strings.TrimSpace(r.Avatar)
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}
