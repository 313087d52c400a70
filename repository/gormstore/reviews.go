package gormstore

import (
	"garagepro-backend/models"

	"gorm.io/gorm"
)

type reviewRepo struct {
	db *gorm.DB
}

func (r *reviewRepo) Create(review *models.Review) error {
	return translate(r.db.Create(review).Error)
}

func (r *reviewRepo) FindByBooking(bookingID uint) (models.Review, error) {
	var review models.Review
	err := r.db.Preload("Reviewer").First(&review, "booking_id = ?", bookingID).Error
	return review, translate(err)
}

func (r *reviewRepo) List() ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("Reviewer").Order("created_at DESC").Find(&reviews).Error
	return reviews, translate(err)
}
