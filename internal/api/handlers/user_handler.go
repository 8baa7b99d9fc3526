package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gcs-food-backend/domain"
	"gcs-food-backend/internal/api/presenters"
	"gcs-food-backend/pkg/user"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Normalize()

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, err)
	}

	res, err := h.userService.Register(c.Context(), *req)
	if errors.Is(err, domain.ErrEmailRegistered) {
		return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageEmailRegistered, nil)
	}
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRegister, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Normalize()

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, err)
	}

	res, err := h.userService.Login(c.Context(), *req)
	if errors.Is(err, domain.ErrUserNotFound) {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, nil)
	}
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLogin, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *userHandler) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	res, err := h.userService.Me(c.Context(), userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageUserNotFound, nil)
	}
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetUser, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
