package database

import (
	"errors"
	"fmt"

	"starwars/config"
	"starwars/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrSeedPasswordMissing = errors.New("SEED_USER_PASSWORD is required when SEED_USER_EMAIL is set")

// SeedUsers inserts the configured administrative user if the usuario table is empty.
// There is no endpoint that creates users.
func SeedUsers(db *gorm.DB, cfg *config.Config) error {
	if cfg.SeedUserEmail == "" {
		return nil
	}
	if cfg.SeedUserPassword == "" {
		return ErrSeedPasswordMissing
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}
	user := models.User{
		Email:    cfg.SeedUserEmail,
		Password: string(hash),
		IsActive: true,
	}
	return db.Create(&user).Error
}
