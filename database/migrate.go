package database

import (
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every model the application
// owns, including the (job_id, user_id) unique index applications rely on.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Organization{},
		&models.Job{},
		&models.Vendor{},
		&models.Application{},
		&models.Notification{},
		&models.JobAlert{},
	)
}
