package models

import (
	"time"
)

type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"unique;not null"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Password  string    `json:"-" gorm:"not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CustomerLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateCustomerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UpdateCustomerRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	IsActive *bool   `json:"is_active"`
}

type CustomerSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type CustomerLoginResponse struct {
	Success  bool              `json:"success"`
	Customer CustomerSummary   `json:"customer"`
	Settings *CustomerSettings `json:"settings"`
	Message  string            `json:"message"`
}

// CustomerWithStats is the admin listing row. Stats is always present; a
// customer whose stats row is missing gets a zero-valued one instead of
// failing the whole listing.
type CustomerWithStats struct {
	Customer
	Stats UsageStats `json:"stats"`
}

// CustomerProfile aggregates everything the customer dashboard needs in one
// fetch. Settings and Stats may be null when the rows are absent.
type CustomerProfile struct {
	Customer *Customer         `json:"customer"`
	Settings *CustomerSettings `json:"settings"`
	Stats    *UsageStats       `json:"stats"`
}
