package models

import (
	"time"
)

type MediaType string

const (
	MediaTypePhoto MediaType = "photo"
	MediaTypeVideo MediaType = "video"
)

// MediaItem is one entry in a gallery's ordered media sequence. URL carries a
// data URL supplied by the client; nothing is written to disk or object
// storage.
type MediaItem struct {
	ID         string    `json:"id"`
	Type       MediaType `json:"type" validate:"omitempty,oneof=photo video"`
	URL        string    `json:"url" validate:"required"`
	Caption    string    `json:"caption,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Branding overrides the owner's site-wide colors for a single gallery.
type Branding struct {
	PrimaryColor   string `json:"primary_color,omitempty" validate:"omitempty,hexcolor"`
	SecondaryColor string `json:"secondary_color,omitempty" validate:"omitempty,hexcolor"`
	AccentColor    string `json:"accent_color,omitempty" validate:"omitempty,hexcolor"`
	FontFamily     string `json:"font_family,omitempty"`
}

type WeddingGallery struct {
	ID              uint         `json:"id" gorm:"primaryKey"`
	CustomerID      uint         `json:"customer_id" gorm:"not null;index"`
	Slug            string       `json:"slug" gorm:"unique;not null"`
	Title           string       `json:"title" gorm:"not null"`
	Description     string       `json:"description"`
	WeddingDate     string       `json:"wedding_date"`
	CoupleNames     string       `json:"couple_names" gorm:"not null"`
	ProfileImageURL string       `json:"profile_image_url"`
	WelcomeMessage  string       `json:"welcome_message"`
	CustomTexts     *CustomTexts `json:"custom_texts" gorm:"type:json;serializer:json"`
	Branding        *Branding    `json:"branding" gorm:"type:json;serializer:json"`
	MediaItems      []MediaItem  `json:"media_items" gorm:"type:json;serializer:json"`
	IsPublished     bool         `json:"is_published" gorm:"default:false"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type CreateGalleryRequest struct {
	Slug            string       `json:"slug" validate:"omitempty,gallery_slug"`
	Title           string       `json:"title" validate:"required"`
	Description     string       `json:"description"`
	WeddingDate     string       `json:"wedding_date"`
	CoupleNames     string       `json:"couple_names" validate:"required"`
	ProfileImageURL string       `json:"profile_image_url"`
	WelcomeMessage  string       `json:"welcome_message"`
	CustomTexts     *CustomTexts `json:"custom_texts"`
	Branding        *Branding    `json:"branding"`
	MediaItems      []MediaItem  `json:"media_items" validate:"omitempty,dive"`
	IsPublished     bool         `json:"is_published"`
}

type UpdateGalleryRequest struct {
	Slug            *string      `json:"slug" validate:"omitnil,gallery_slug"`
	Title           *string      `json:"title" validate:"omitempty,min=1"`
	Description     *string      `json:"description"`
	WeddingDate     *string      `json:"wedding_date"`
	CoupleNames     *string      `json:"couple_names" validate:"omitempty,min=1"`
	ProfileImageURL *string      `json:"profile_image_url"`
	WelcomeMessage  *string      `json:"welcome_message"`
	CustomTexts     *CustomTexts `json:"custom_texts"`
	Branding        *Branding    `json:"branding"`
	MediaItems      *[]MediaItem `json:"media_items" validate:"omitempty,dive"`
	IsPublished     *bool        `json:"is_published"`
}
