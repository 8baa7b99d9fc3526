package user

import (
	"context"

	"gcs-food-backend/domain"
	"gcs-food-backend/entities"
	"gcs-food-backend/pkg/jwt"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*entities.User, error)
		// Login looks the user up by email only; passwords are not checked.
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (*entities.User, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*entities.User, error) {
	existing, err := s.userRepository.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailRegistered
	}

	user := &entities.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Avatar:    optional(req.Avatar),
		GoogleID:  optional(req.GoogleID),
	}
	if err := s.userRepository.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.FindByEmail(ctx, req.Email)
	if err != nil {
		return domain.LoginResponse{}, err
	}
	if user == nil {
		return domain.LoginResponse{}, domain.ErrUserNotFound
	}

	token, err := s.jwtService.GenerateTokenUser(user.ID, domain.RoleUser)
	if err != nil {
		return domain.LoginResponse{}, err
	}
	return domain.LoginResponse{Token: token, User: user}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*entities.User, error) {
	user, err := s.userRepository.FindUnique(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
