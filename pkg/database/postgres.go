package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/everafter/gallery-backend/internal/models"
)

// NewDatabase opens the Postgres connection. TranslateError lets the
// repositories detect unique-constraint violations as gorm.ErrDuplicatedKey.
func NewDatabase(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Customer{},
		&models.CustomerSettings{},
		&models.WeddingGallery{},
		&models.UsageStats{},
		&models.User{},
	)
}
