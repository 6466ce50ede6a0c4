package repository

import (
	"errors"

	"github.com/everafter/gallery-backend/internal/models"
	"gorm.io/gorm"
)

type SettingsRepository interface {
	GetByCustomerID(customerID uint) (*models.CustomerSettings, error)
	Create(settings *models.CustomerSettings) error
	Update(settings *models.CustomerSettings) error
}

type GormSettingsRepository struct {
	db *gorm.DB
}

func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

func (r *GormSettingsRepository) GetByCustomerID(customerID uint) (*models.CustomerSettings, error) {
	var settings models.CustomerSettings
	if err := r.db.Where("customer_id = ?", customerID).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &settings, nil
}

func (r *GormSettingsRepository) Create(settings *models.CustomerSettings) error {
	if err := r.db.Create(settings).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *GormSettingsRepository) Update(settings *models.CustomerSettings) error {
	result := r.db.Save(settings)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
