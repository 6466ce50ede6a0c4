package database

import (
	"errors"

	"go.uber.org/zap"

	"github.com/everafter/gallery-backend/internal/models"
	"github.com/everafter/gallery-backend/internal/repository"
	"github.com/everafter/gallery-backend/internal/service"
	"github.com/everafter/gallery-backend/pkg/bcrypt"
)

// Seed creates the default admin account and, optionally, the demo tenants.
// Records that already exist are left alone, so it is safe on every start.
func Seed(
	adminRepo repository.AdminRepository,
	customerService *service.CustomerService,
	seedDemo bool,
	logger *zap.Logger,
) error {
	if err := seedAdmin(adminRepo, logger); err != nil {
		return err
	}
	if seedDemo {
		return seedDemoCustomers(customerService, logger)
	}
	return nil
}

func seedAdmin(adminRepo repository.AdminRepository, logger *zap.Logger) error {
	if _, err := adminRepo.GetByUsername("admin"); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hashed, err := bcrypt.HashPassword("admin123")
	if err != nil {
		return err
	}
	admin := &models.Admin{Username: "admin", Password: hashed}
	if err := adminRepo.Create(admin); err != nil {
		return err
	}
	logger.Info("seeded default admin", zap.String("username", admin.Username))
	return nil
}

func seedDemoCustomers(customerService *service.CustomerService, logger *zap.Logger) error {
	demoCustomers := []models.CreateCustomerRequest{
		{Username: "john_jane", Email: "john.jane@example.com", Password: "demo123"},
		{Username: "sarah_mike", Email: "sarah.mike@example.com", Password: "demo123"},
		{Username: "emma_david", Email: "emma.david@example.com", Password: "demo123"},
	}

	for _, req := range demoCustomers {
		_, err := customerService.CreateCustomer(req)
		if err != nil {
			if errors.Is(err, service.ErrUsernameTaken) || errors.Is(err, service.ErrEmailTaken) {
				continue
			}
			return err
		}
		logger.Info("seeded demo customer", zap.String("username", req.Username))
	}
	return nil
}
