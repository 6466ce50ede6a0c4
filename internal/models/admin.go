package models

import (
	"time"
)

type Admin struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"unique;not null"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminSummary is what login echoes back. The password hash never leaves the server.
type AdminSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type AdminLoginResponse struct {
	Success bool         `json:"success"`
	Admin   AdminSummary `json:"admin"`
	Message string       `json:"message"`
}
