package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/everafter/gallery-backend/internal/models"
	"github.com/everafter/gallery-backend/internal/repository"
	"github.com/everafter/gallery-backend/pkg/utils"
)

type GalleryService struct {
	galleryRepo repository.GalleryRepository
	logger      *zap.Logger
}

func NewGalleryService(galleryRepo repository.GalleryRepository, logger *zap.Logger) *GalleryService {
	return &GalleryService{
		galleryRepo: galleryRepo,
		logger:      logger,
	}
}

func (s *GalleryService) CreateGallery(customerID uint, req models.CreateGalleryRequest) (*models.WeddingGallery, error) {
	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}

	if _, err := s.galleryRepo.GetBySlug(slug); err == nil {
		return nil, ErrSlugTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	gallery := &models.WeddingGallery{
		CustomerID:      customerID,
		Slug:            slug,
		Title:           req.Title,
		Description:     req.Description,
		WeddingDate:     req.WeddingDate,
		CoupleNames:     req.CoupleNames,
		ProfileImageURL: req.ProfileImageURL,
		WelcomeMessage:  req.WelcomeMessage,
		CustomTexts:     req.CustomTexts,
		Branding:        req.Branding,
		MediaItems:      normalizeMediaItems(req.MediaItems),
		IsPublished:     req.IsPublished,
	}

	if err := s.galleryRepo.Create(gallery); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}

	s.logger.Info("gallery created",
		zap.Uint("gallery_id", gallery.ID),
		zap.Uint("customer_id", customerID),
		zap.String("slug", gallery.Slug),
	)
	return gallery, nil
}

func (s *GalleryService) GetGallery(id uint) (*models.WeddingGallery, error) {
	return s.galleryRepo.GetByID(id)
}

// GetPublishedBySlug is the public lookup. Drafts answer exactly like missing
// slugs so their existence cannot be probed.
func (s *GalleryService) GetPublishedBySlug(slug string) (*models.WeddingGallery, error) {
	gallery, err := s.galleryRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if !gallery.IsPublished {
		return nil, repository.ErrNotFound
	}
	return gallery, nil
}

func (s *GalleryService) GetCustomerGalleries(customerID uint) ([]models.WeddingGallery, error) {
	galleries, err := s.galleryRepo.GetByCustomerID(customerID)
	if err != nil {
		return nil, err
	}
	if galleries == nil {
		galleries = []models.WeddingGallery{}
	}
	return galleries, nil
}

func (s *GalleryService) UpdateGallery(id uint, req models.UpdateGalleryRequest) (*models.WeddingGallery, error) {
	gallery, err := s.galleryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Slug != nil && *req.Slug != gallery.Slug {
		if _, err := s.galleryRepo.GetBySlug(*req.Slug); err == nil {
			return nil, ErrSlugTaken
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		gallery.Slug = *req.Slug
	}
	if req.Title != nil {
		gallery.Title = *req.Title
	}
	if req.Description != nil {
		gallery.Description = *req.Description
	}
	if req.WeddingDate != nil {
		gallery.WeddingDate = *req.WeddingDate
	}
	if req.CoupleNames != nil {
		gallery.CoupleNames = *req.CoupleNames
	}
	if req.ProfileImageURL != nil {
		gallery.ProfileImageURL = *req.ProfileImageURL
	}
	if req.WelcomeMessage != nil {
		gallery.WelcomeMessage = *req.WelcomeMessage
	}
	if req.CustomTexts != nil {
		gallery.CustomTexts = req.CustomTexts
	}
	if req.Branding != nil {
		gallery.Branding = req.Branding
	}
	if req.MediaItems != nil {
		gallery.MediaItems = normalizeMediaItems(*req.MediaItems)
	}
	if req.IsPublished != nil {
		gallery.IsPublished = *req.IsPublished
	}

	if err := s.galleryRepo.Update(gallery); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return gallery, nil
}

func (s *GalleryService) DeleteGallery(id uint) error {
	if err := s.galleryRepo.Delete(id); err != nil {
		return err
	}
	s.logger.Info("gallery deleted", zap.Uint("gallery_id", id))
	return nil
}

// normalizeMediaItems keeps the stored sequence well-formed: never nil, every
// item carries an ID, a type and an upload timestamp.
func normalizeMediaItems(items []models.MediaItem) []models.MediaItem {
	if items == nil {
		return []models.MediaItem{}
	}
	now := time.Now()
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.New().String()
		}
		if items[i].Type == "" {
			items[i].Type = models.MediaTypePhoto
		}
		if items[i].UploadedAt.IsZero() {
			items[i].UploadedAt = now
		}
	}
	return items
}
