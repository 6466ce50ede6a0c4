package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/everafter/gallery-backend/internal/models"
	"github.com/everafter/gallery-backend/internal/repository"
	"github.com/everafter/gallery-backend/pkg/bcrypt"
)

type AuthService struct {
	adminRepo    repository.AdminRepository
	customerRepo repository.CustomerRepository
	settingsRepo repository.SettingsRepository
	logger       *zap.Logger
}

func NewAuthService(
	adminRepo repository.AdminRepository,
	customerRepo repository.CustomerRepository,
	settingsRepo repository.SettingsRepository,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		adminRepo:    adminRepo,
		customerRepo: customerRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

func (s *AuthService) AdminLogin(username, password string) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.ComparePassword(admin.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("admin login", zap.String("username", username))
	return admin, nil
}

// CustomerLogin authenticates a tenant and returns their branding settings in
// the same call so the dashboard can render without a second round trip.
// Settings may be nil if the row is missing.
func (s *AuthService) CustomerLogin(username, password string) (*models.Customer, *models.CustomerSettings, error) {
	customer, err := s.customerRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.ComparePassword(customer.Password, password); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	// Deactivated accounts keep their data but cannot sign in.
	if !customer.IsActive {
		return nil, nil, ErrInvalidCredentials
	}

	settings, err := s.settingsRepo.GetByCustomerID(customer.ID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, nil, err
	}

	s.logger.Info("customer login", zap.String("username", username), zap.Uint("customer_id", customer.ID))
	return customer, settings, nil
}
