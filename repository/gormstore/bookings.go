package gormstore

import (
	"garagepro-backend/models"

	"gorm.io/gorm"
)

type bookingRepo struct {
	db *gorm.DB
}

func (r *bookingRepo) Create(booking *models.Booking) error {
	return translate(r.db.Create(booking).Error)
}

func (r *bookingRepo) FindByID(id uint) (models.Booking, error) {
	var booking models.Booking
	err := r.db.Preload("Vehicle").Preload("Vehicle.Brand").Preload("Vehicle.Type").
		Preload("Status").
		First(&booking, "id = ?", id).Error
	return booking, translate(err)
}

func (r *bookingRepo) ListByOwner(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("Vehicle").Preload("Vehicle.Brand").Preload("Vehicle.Type").
		Preload("Status").
		Joins("JOIN vehicles ON vehicles.id = bookings.vehicle_id").
		Where("vehicles.user_id = ?", userID).
		Order("bookings.created_at DESC").
		Find(&bookings).Error
	return bookings, translate(err)
}

func (r *bookingRepo) ListByStatus(statusID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("Vehicle").Preload("Status").
		Where("status_id = ?", statusID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, translate(err)
}

func (r *bookingRepo) List() ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("Vehicle").Preload("Vehicle.Owner").
		Preload("Vehicle.Brand").Preload("Vehicle.Type").
		Preload("Status").
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, translate(err)
}

func (r *bookingRepo) Update(booking *models.Booking) error {
	return translate(r.db.Save(booking).Error)
}

func (r *bookingRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Booking{}).Count(&n).Error
	return n, translate(err)
}

func (r *bookingRepo) CountByVehicle(vehicleID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.Booking{}).Where("vehicle_id = ?", vehicleID).Count(&n).Error
	return n, translate(err)
}

func (r *bookingRepo) CountPerStatus() ([]models.LabelCount, error) {
	var rows []models.LabelCount
	err := r.db.Table("bookings").
		Select("statuses.name as label, COUNT(bookings.id) as count").
		Joins("JOIN statuses ON statuses.id = bookings.status_id").
		Group("statuses.name").
		Order("count DESC").
		Scan(&rows).Error
	return rows, translate(err)
}
