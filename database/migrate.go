package database

import (
	"starwars/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// Favorite last: its foreign keys need the other three tables
	return db.AutoMigrate(&models.User{}, &models.Character{}, &models.Planet{}, &models.Favorite{})
}
