package repository

import (
	"errors"

	"github.com/everafter/gallery-backend/internal/models"
	"gorm.io/gorm"
)

type GalleryRepository interface {
	GetByID(id uint) (*models.WeddingGallery, error)
	GetBySlug(slug string) (*models.WeddingGallery, error)
	GetByCustomerID(customerID uint) ([]models.WeddingGallery, error)
	Create(gallery *models.WeddingGallery) error
	Update(gallery *models.WeddingGallery) error
	Delete(id uint) error
}

type GormGalleryRepository struct {
	db *gorm.DB
}

func NewGormGalleryRepository(db *gorm.DB) *GormGalleryRepository {
	return &GormGalleryRepository{db: db}
}

func (r *GormGalleryRepository) GetByID(id uint) (*models.WeddingGallery, error) {
	var gallery models.WeddingGallery
	if err := r.db.First(&gallery, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &gallery, nil
}

func (r *GormGalleryRepository) GetBySlug(slug string) (*models.WeddingGallery, error) {
	var gallery models.WeddingGallery
	if err := r.db.Where("slug = ?", slug).First(&gallery).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &gallery, nil
}

func (r *GormGalleryRepository) GetByCustomerID(customerID uint) ([]models.WeddingGallery, error) {
	var galleries []models.WeddingGallery
	err := r.db.Where("customer_id = ?", customerID).Order("id").Find(&galleries).Error
	return galleries, err
}

func (r *GormGalleryRepository) Create(gallery *models.WeddingGallery) error {
	if err := r.db.Create(gallery).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *GormGalleryRepository) Update(gallery *models.WeddingGallery) error {
	result := r.db.Save(gallery)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormGalleryRepository) Delete(id uint) error {
	result := r.db.Delete(&models.WeddingGallery{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
