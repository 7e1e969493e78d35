package repository

import (
	"review_project/internal/domain"

	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Employee{},
		&domain.Review{},
		&domain.ReviewReviewer{},
	)
}
