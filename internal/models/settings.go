package models

import (
	"time"
)

// Settings defaults applied when a customer is created.
const (
	DefaultSiteName       = "My Wedding Gallery"
	DefaultPrimaryColor   = "#8B5CF6"
	DefaultSecondaryColor = "#A855F7"
	DefaultAccentColor    = "#C084FC"
	DefaultThemeID        = "default"
)

// CustomTexts holds the free-text overrides a customer can place on their
// public pages.
type CustomTexts struct {
	WelcomeMessage string `json:"welcome_message,omitempty"`
	Description    string `json:"description,omitempty"`
	Footer         string `json:"footer,omitempty"`
}

type SocialLinks struct {
	Instagram string `json:"instagram,omitempty" validate:"omitempty,url"`
	Facebook  string `json:"facebook,omitempty" validate:"omitempty,url"`
	Twitter   string `json:"twitter,omitempty" validate:"omitempty,url"`
	Website   string `json:"website,omitempty" validate:"omitempty,url"`
}

type ContactInfo struct {
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type CustomerSettings struct {
	ID              uint         `json:"id" gorm:"primaryKey"`
	CustomerID      uint         `json:"customer_id" gorm:"uniqueIndex;not null"`
	SiteName        string       `json:"site_name" gorm:"not null;default:'My Wedding Gallery'"`
	ProfileImageURL string       `json:"profile_image_url"`
	LogoURL         string       `json:"logo_url"`
	PrimaryColor    string       `json:"primary_color" gorm:"not null;default:'#8B5CF6'"`
	SecondaryColor  string       `json:"secondary_color" gorm:"not null;default:'#A855F7'"`
	AccentColor     string       `json:"accent_color" gorm:"not null;default:'#C084FC'"`
	CustomTexts     *CustomTexts `json:"custom_texts" gorm:"type:json;serializer:json"`
	SocialLinks     *SocialLinks `json:"social_links" gorm:"type:json;serializer:json"`
	ContactInfo     *ContactInfo `json:"contact_info" gorm:"type:json;serializer:json"`
	ThemeID         string       `json:"theme_id" gorm:"not null;default:'default'"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type UpdateSettingsRequest struct {
	SiteName        *string      `json:"site_name"`
	ProfileImageURL *string      `json:"profile_image_url"`
	LogoURL         *string      `json:"logo_url"`
	PrimaryColor    *string      `json:"primary_color" validate:"omitempty,hexcolor"`
	SecondaryColor  *string      `json:"secondary_color" validate:"omitempty,hexcolor"`
	AccentColor     *string      `json:"accent_color" validate:"omitempty,hexcolor"`
	CustomTexts     *CustomTexts `json:"custom_texts"`
	SocialLinks     *SocialLinks `json:"social_links"`
	ContactInfo     *ContactInfo `json:"contact_info"`
	ThemeID         *string      `json:"theme_id"`
}

type UpdateSettingsResponse struct {
	Settings *CustomerSettings `json:"settings"`
	Message  string            `json:"message"`
}
