package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gcs-food-backend/domain"
	"gcs-food-backend/internal/api/presenters"
	"gcs-food-backend/pkg/catalog"
)

type (
	CatalogHandler interface {
		GetNationalities(c *fiber.Ctx) error
		CreateNationality(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		CreateCategory(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
		validator      *validator.Validate
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService, validator *validator.Validate) CatalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
		validator:      validator,
	}
}

func (h *catalogHandler) GetNationalities(c *fiber.Ctx) error {
	res, err := h.catalogService.ListNationalities(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetNationalities, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *catalogHandler) CreateNationality(c *fiber.Ctx) error {
	req := new(domain.CreateNationalityRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Normalize()

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, err)
	}

	res, err := h.catalogService.CreateNationality(c.Context(), *req)
	switch {
	case errors.Is(err, domain.ErrNationalityExists):
		return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageNationalityAlreadyExists, nil)
	case errors.Is(err, domain.ErrBlankName):
		return presenters.FieldErrorResponse(c, domain.MessageFailedValidation, map[string]string{"name": "is required"})
	case err != nil:
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateNationality, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *catalogHandler) GetCategories(c *fiber.Ctx) error {
	res, err := h.catalogService.ListCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCategories, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *catalogHandler) CreateCategory(c *fiber.Ctx) error {
	req := new(domain.CreateCategoryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Normalize()

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, err)
	}

	res, err := h.catalogService.CreateCategory(c.Context(), *req)
	switch {
	case errors.Is(err, domain.ErrCategoryExists):
		return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageCategoryAlreadyExists, nil)
	case errors.Is(err, domain.ErrBlankName):
		return presenters.FieldErrorResponse(c, domain.MessageFailedValidation, map[string]string{"name": "is required"})
	case err != nil:
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateCategory, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}
