package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gcs-food-backend/domain"
	"gcs-food-backend/internal/api/presenters"
	"gcs-food-backend/pkg/harmonization"
)

type (
	HarmonizationHandler interface {
		GetHarmonizations(c *fiber.Ctx) error
		GetHarmonization(c *fiber.Ctx) error
		CreateHarmonization(c *fiber.Ctx) error
	}

	harmonizationHandler struct {
		harmonizationService harmonization.HarmonizationService
		validator            *validator.Validate
	}
)

func NewHarmonizationHandler(harmonizationService harmonization.HarmonizationService, validator *validator.Validate) HarmonizationHandler {
	return &harmonizationHandler{
		harmonizationService: harmonizationService,
		validator:            validator,
	}
}

func (h *harmonizationHandler) GetHarmonizations(c *fiber.Ctx) error {
	filter := new(domain.HarmonizationFilter)
	if err := c.QueryParser(filter); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetHarmonizations, err)
	}

	res, err := h.harmonizationService.ListHarmonizations(c.Context(), *filter)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetHarmonizations, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *harmonizationHandler) GetHarmonization(c *fiber.Ctx) error {
	res, err := h.harmonizationService.GetHarmonization(c.Context(), c.Params("id"))
	if errors.Is(err, domain.ErrHarmonizationNotFound) {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageHarmonizationNotFound, nil)
	}
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetHarmonizationDetail, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *harmonizationHandler) CreateHarmonization(c *fiber.Ctx) error {
	req := new(domain.CreateHarmonizationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if userID, ok := c.Locals("user_id").(string); ok && userID != "" {
		req.UserID = userID
	}
	req.Normalize()

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, err)
	}

	res, err := h.harmonizationService.CreateHarmonization(c.Context(), *req)
	if err != nil {
		return createError(c, domain.MessageFailedCreateHarmonization, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}
