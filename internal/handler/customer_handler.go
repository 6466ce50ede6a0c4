package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/everafter/gallery-backend/internal/models"
	"github.com/everafter/gallery-backend/internal/repository"
	"github.com/everafter/gallery-backend/internal/service"
	"github.com/everafter/gallery-backend/pkg/utils"
)

type CustomerHandler struct {
	customerService *service.CustomerService
	validator       *utils.Validator
}

func NewCustomerHandler(customerService *service.CustomerService, validator *utils.Validator) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		validator:       validator,
	}
}

func (h *CustomerHandler) ListCustomers(c *fiber.Ctx) error {
	customers, err := h.customerService.ListCustomersWithStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}
	return c.JSON(customers)
}

func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var req models.CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if fieldErrs := h.validator.StructErrors(req); fieldErrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse("Invalid data", fieldErrs))
	}

	customer, err := h.customerService.CreateCustomer(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Username already exists"))
		case errors.Is(err, service.ErrEmailTaken):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Email already exists"))
		case errors.Is(err, repository.ErrDuplicate):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Username or email already exists"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	return c.Status(fiber.StatusCreated).JSON(models.CreateCustomerResponse{
		Customer: customer,
		Message:  "Customer created successfully",
	})
}

func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid customer ID"))
	}

	var req models.UpdateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if fieldErrs := h.validator.StructErrors(req); fieldErrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse("Invalid data", fieldErrs))
	}

	customer, err := h.customerService.UpdateCustomer(id, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Customer not found"))
		case errors.Is(err, repository.ErrDuplicate):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Username or email already exists"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	return c.JSON(models.UpdateCustomerResponse{
		Customer: customer,
		Message:  "Customer updated successfully",
	})
}

func (h *CustomerHandler) DeactivateCustomer(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid customer ID"))
	}

	if err := h.customerService.DeactivateCustomer(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Customer not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	return c.JSON(models.MessageResponse{Message: "Customer deactivated successfully"})
}

func (h *CustomerHandler) GetSettings(c *fiber.Ctx) error {
	customerID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid customer ID"))
	}

	settings, err := h.customerService.GetSettings(customerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Settings not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	return c.JSON(settings)
}

func (h *CustomerHandler) UpdateSettings(c *fiber.Ctx) error {
	customerID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid customer ID"))
	}

	var req models.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if fieldErrs := h.validator.StructErrors(req); fieldErrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse("Invalid data", fieldErrs))
	}

	settings, err := h.customerService.UpdateSettings(customerID, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Settings not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	return c.JSON(models.UpdateSettingsResponse{
		Settings: settings,
		Message:  "Settings updated successfully",
	})
}

func (h *CustomerHandler) UpdateStats(c *fiber.Ctx) error {
	customerID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid customer ID"))
	}

	var req models.UpdateStatsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if fieldErrs := h.validator.StructErrors(req); fieldErrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse("Invalid data", fieldErrs))
	}

	stats, err := h.customerService.UpdateStats(customerID, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Statistics not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	return c.JSON(models.UpdateStatsResponse{
		Stats:   stats,
		Message: "Statistics updated successfully",
	})
}

func (h *CustomerHandler) GetProfile(c *fiber.Ctx) error {
	customerID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid customer ID"))
	}

	profile, err := h.customerService.GetProfile(customerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Customer not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	return c.JSON(profile)
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
