package repository

import (
	"errors"

	"github.com/everafter/gallery-backend/internal/models"
	"gorm.io/gorm"
)

type StatsRepository interface {
	GetByCustomerID(customerID uint) (*models.UsageStats, error)
	Create(stats *models.UsageStats) error
	Update(stats *models.UsageStats) error
}

type GormStatsRepository struct {
	db *gorm.DB
}

func NewGormStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

func (r *GormStatsRepository) GetByCustomerID(customerID uint) (*models.UsageStats, error) {
	var stats models.UsageStats
	if err := r.db.Where("customer_id = ?", customerID).First(&stats).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &stats, nil
}

func (r *GormStatsRepository) Create(stats *models.UsageStats) error {
	if err := r.db.Create(stats).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *GormStatsRepository) Update(stats *models.UsageStats) error {
	result := r.db.Save(stats)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
