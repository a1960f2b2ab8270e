package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"localpro_backend/internal/config"
	"localpro_backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens the GORM connection using the configured DSN.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model of the application.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Category{},
		&models.Service{},
		&models.Review{},
		&models.Upload{},
		&models.RefreshToken{},
	)
}

// SeedCategories inserts the built-in categories, skipping any name
// that already exists so restarts are safe.
func SeedCategories(db *gorm.DB) error {
	for _, category := range models.SeedCategories() {
		var count int64
		if err := db.Model(&models.Category{}).Where("name = ?", category.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check category %q: %w", category.Name, err)
		}
		if count > 0 {
			continue
		}
		c := category
		if err := db.Create(&c).Error; err != nil {
			return fmt.Errorf("failed to seed category %q: %w", category.Name, err)
		}
	}
	return nil
}
