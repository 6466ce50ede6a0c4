package service

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/everafter/gallery-backend/internal/models"
	"github.com/everafter/gallery-backend/internal/repository"
	"github.com/everafter/gallery-backend/pkg/bcrypt"
)

type CustomerService struct {
	customerRepo repository.CustomerRepository
	settingsRepo repository.SettingsRepository
	statsRepo    repository.StatsRepository
	logger       *zap.Logger
}

func NewCustomerService(
	customerRepo repository.CustomerRepository,
	settingsRepo repository.SettingsRepository,
	statsRepo repository.StatsRepository,
	logger *zap.Logger,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		settingsRepo: settingsRepo,
		statsRepo:    statsRepo,
		logger:       logger,
	}
}

// CreateCustomer provisions a tenant: the account plus its default branding
// settings and a zeroed stats row, all keyed to the new ID. Not side-effect
// free.
func (s *CustomerService) CreateCustomer(req models.CreateCustomerRequest) (*models.Customer, error) {
	if _, err := s.customerRepo.GetByUsername(req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if _, err := s.customerRepo.GetByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		IsActive: true,
	}

	// Create is an atomic conditional insert; ErrDuplicate here means a
	// concurrent request won the race after our checks above.
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}

	settings := &models.CustomerSettings{
		CustomerID:     customer.ID,
		SiteName:       fmt.Sprintf("%s's Wedding Gallery", customer.Username),
		PrimaryColor:   models.DefaultPrimaryColor,
		SecondaryColor: models.DefaultSecondaryColor,
		AccentColor:    models.DefaultAccentColor,
		ThemeID:        models.DefaultThemeID,
	}
	if err := s.settingsRepo.Create(settings); err != nil {
		return nil, err
	}

	stats := &models.UsageStats{
		CustomerID:   customer.ID,
		LastActivity: time.Now(),
	}
	if err := s.statsRepo.Create(stats); err != nil {
		return nil, err
	}

	s.logger.Info("customer created", zap.Uint("customer_id", customer.ID), zap.String("username", customer.Username))
	return customer, nil
}

func (s *CustomerService) UpdateCustomer(id uint, req models.UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		customer.Username = *req.Username
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Password != nil {
		hashed, err := bcrypt.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		customer.Password = hashed
	}
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}

	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeactivateCustomer is the soft delete: the account and everything it owns
// stay in storage, only login and the admin "active" flag change.
func (s *CustomerService) DeactivateCustomer(id uint) error {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		return err
	}

	customer.IsActive = false
	if err := s.customerRepo.Update(customer); err != nil {
		return err
	}

	s.logger.Info("customer deactivated", zap.Uint("customer_id", id))
	return nil
}

// ListCustomersWithStats enriches every customer with their usage counters.
// A customer whose stats row is missing gets zero values rather than failing
// the whole listing.
func (s *CustomerService) ListCustomersWithStats() ([]models.CustomerWithStats, error) {
	customers, err := s.customerRepo.GetAll()
	if err != nil {
		return nil, err
	}

	rows := make([]models.CustomerWithStats, 0, len(customers))
	for _, customer := range customers {
		row := models.CustomerWithStats{Customer: customer}
		stats, err := s.statsRepo.GetByCustomerID(customer.ID)
		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				return nil, err
			}
			row.Stats = models.UsageStats{CustomerID: customer.ID}
		} else {
			row.Stats = *stats
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// GetProfile aggregates customer, settings and stats. Only the customer lookup
// gates on not-found; settings and stats pass through as nil when absent.
func (s *CustomerService) GetProfile(id uint) (*models.CustomerProfile, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	profile := &models.CustomerProfile{Customer: customer}

	settings, err := s.settingsRepo.GetByCustomerID(id)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	profile.Settings = settings

	stats, err := s.statsRepo.GetByCustomerID(id)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	profile.Stats = stats

	return profile, nil
}

func (s *CustomerService) GetSettings(customerID uint) (*models.CustomerSettings, error) {
	return s.settingsRepo.GetByCustomerID(customerID)
}

func (s *CustomerService) UpdateSettings(customerID uint, req models.UpdateSettingsRequest) (*models.CustomerSettings, error) {
	settings, err := s.settingsRepo.GetByCustomerID(customerID)
	if err != nil {
		return nil, err
	}

	if req.SiteName != nil {
		settings.SiteName = *req.SiteName
	}
	if req.ProfileImageURL != nil {
		settings.ProfileImageURL = *req.ProfileImageURL
	}
	if req.LogoURL != nil {
		settings.LogoURL = *req.LogoURL
	}
	if req.PrimaryColor != nil {
		settings.PrimaryColor = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		settings.SecondaryColor = *req.SecondaryColor
	}
	if req.AccentColor != nil {
		settings.AccentColor = *req.AccentColor
	}
	if req.CustomTexts != nil {
		settings.CustomTexts = req.CustomTexts
	}
	if req.SocialLinks != nil {
		settings.SocialLinks = req.SocialLinks
	}
	if req.ContactInfo != nil {
		settings.ContactInfo = req.ContactInfo
	}
	if req.ThemeID != nil {
		settings.ThemeID = *req.ThemeID
	}

	if err := s.settingsRepo.Update(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateStats overwrites the supplied counters and refreshes LastActivity.
func (s *CustomerService) UpdateStats(customerID uint, req models.UpdateStatsRequest) (*models.UsageStats, error) {
	stats, err := s.statsRepo.GetByCustomerID(customerID)
	if err != nil {
		return nil, err
	}

	if req.TotalViews != nil {
		stats.TotalViews = *req.TotalViews
	}
	if req.UniqueVisitors != nil {
		stats.UniqueVisitors = *req.UniqueVisitors
	}
	if req.MediaUploads != nil {
		stats.MediaUploads = *req.MediaUploads
	}
	stats.LastActivity = time.Now()

	if err := s.statsRepo.Update(stats); err != nil {
		return nil, err
	}
	return stats, nil
}
