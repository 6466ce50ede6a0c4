package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/everafter/gallery-backend/internal/models"
	"github.com/everafter/gallery-backend/internal/repository"
	"github.com/everafter/gallery-backend/internal/service"
	"github.com/everafter/gallery-backend/pkg/utils"
)

type GalleryHandler struct {
	galleryService *service.GalleryService
	validator      *utils.Validator
}

func NewGalleryHandler(galleryService *service.GalleryService, validator *utils.Validator) *GalleryHandler {
	return &GalleryHandler{
		galleryService: galleryService,
		validator:      validator,
	}
}

func (h *GalleryHandler) GetCustomerGalleries(c *fiber.Ctx) error {
	customerID, err := parseIDParam(c, "customerId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid customer ID"))
	}

	galleries, err := h.galleryService.GetCustomerGalleries(customerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	return c.JSON(galleries)
}

// GetGalleryBySlug serves the public gallery page. Unknown slugs and
// unpublished drafts get the same 404 body.
func (h *GalleryHandler) GetGalleryBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	gallery, err := h.galleryService.GetPublishedBySlug(slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Gallery not found or not published"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	return c.JSON(gallery)
}

func (h *GalleryHandler) CreateGallery(c *fiber.Ctx) error {
	customerID, err := parseIDParam(c, "customerId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid customer ID"))
	}

	var req models.CreateGalleryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if fieldErrs := h.validator.StructErrors(req); fieldErrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse("Validation error", fieldErrs))
	}

	gallery, err := h.galleryService.CreateGallery(customerID, req)
	if err != nil {
		if errors.Is(err, service.ErrSlugTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Slug already exists"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	return c.Status(fiber.StatusCreated).JSON(gallery)
}

func (h *GalleryHandler) UpdateGallery(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid gallery ID"))
	}

	var req models.UpdateGalleryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if fieldErrs := h.validator.StructErrors(req); fieldErrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse("Validation error", fieldErrs))
	}

	gallery, err := h.galleryService.UpdateGallery(id, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Gallery not found"))
		case errors.Is(err, service.ErrSlugTaken):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Slug already exists"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	return c.JSON(gallery)
}

func (h *GalleryHandler) DeleteGallery(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid gallery ID"))
	}

	if err := h.galleryService.DeleteGallery(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Gallery not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	return c.JSON(models.MessageResponse{Message: "Gallery deleted successfully"})
}
