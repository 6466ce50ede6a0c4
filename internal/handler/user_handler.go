package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/everafter/gallery-backend/internal/models"
	"github.com/everafter/gallery-backend/internal/service"
	"github.com/everafter/gallery-backend/pkg/utils"
)

// UserHandler exposes the legacy users table. Only creation remains routed.
type UserHandler struct {
	userService *service.UserService
	validator   *utils.Validator
}

func NewUserHandler(userService *service.UserService, validator *utils.Validator) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if fieldErrs := h.validator.StructErrors(req); fieldErrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse("Invalid data", fieldErrs))
	}

	user, err := h.userService.CreateUser(req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Username already exists"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}
