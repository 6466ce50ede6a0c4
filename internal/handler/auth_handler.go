package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/everafter/gallery-backend/internal/models"
	"github.com/everafter/gallery-backend/internal/service"
	"github.com/everafter/gallery-backend/pkg/utils"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *utils.Validator
}

func NewAuthHandler(authService *service.AuthService, validator *utils.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var req models.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Username and password required"))
	}

	admin, err := h.authService.AdminLogin(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid credentials"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	return c.JSON(models.AdminLoginResponse{
		Success: true,
		Admin:   models.AdminSummary{ID: admin.ID, Username: admin.Username},
		Message: "Admin login successful",
	})
}

func (h *AuthHandler) CustomerLogin(c *fiber.Ctx) error {
	var req models.CustomerLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Username and password required"))
	}

	customer, settings, err := h.authService.CustomerLogin(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid credentials or account deactivated"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	return c.JSON(models.CustomerLoginResponse{
		Success: true,
		Customer: models.CustomerSummary{
			ID:       customer.ID,
			Username: customer.Username,
			Email:    customer.Email,
		},
		Settings: settings,
		Message:  "Customer login successful",
	})
}
