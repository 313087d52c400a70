package gormstore

import (
	"garagepro-backend/models"

	"gorm.io/gorm"
)

type vehicleRepo struct {
	db *gorm.DB
}

func (r *vehicleRepo) Create(vehicle *models.Vehicle) error {
	return translate(r.db.Create(vehicle).Error)
}

func (r *vehicleRepo) FindByID(id uint) (models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.Preload("Owner").Preload("Brand").Preload("Type").
		First(&vehicle, "id = ?", id).Error
	return vehicle, translate(err)
}

func (r *vehicleRepo) ListByOwner(userID uint) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := r.db.Preload("Brand").Preload("Type").
		Where("user_id = ?", userID).
		Order("id").
		Find(&vehicles).Error
	return vehicles, translate(err)
}

func (r *vehicleRepo) List() ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := r.db.Preload("Owner").Preload("Brand").Preload("Type").
		Order("id").
		Find(&vehicles).Error
	return vehicles, translate(err)
}

func (r *vehicleRepo) Update(vehicle *models.Vehicle) error {
	return translate(r.db.Save(vehicle).Error)
}

func (r *vehicleRepo) Delete(id uint) error {
	res := r.db.Delete(&models.Vehicle{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *vehicleRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Vehicle{}).Count(&n).Error
	return n, translate(err)
}

func (r *vehicleRepo) CountByOwner(userID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.Vehicle{}).Where("user_id = ?", userID).Count(&n).Error
	return n, translate(err)
}

func (r *vehicleRepo) CountByBrandID(brandID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.Vehicle{}).Where("brand_id = ?", brandID).Count(&n).Error
	return n, translate(err)
}

func (r *vehicleRepo) CountByTypeID(typeID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.Vehicle{}).Where("type_id = ?", typeID).Count(&n).Error
	return n, translate(err)
}

func (r *vehicleRepo) CountPerBrand() ([]models.LabelCount, error) {
	var rows []models.LabelCount
	err := r.db.Table("vehicles").
		Select("vehicle_brands.name as label, COUNT(vehicles.id) as count").
		Joins("JOIN vehicle_brands ON vehicle_brands.id = vehicles.brand_id").
		Group("vehicle_brands.name").
		Order("count DESC").
		Scan(&rows).Error
	return rows, translate(err)
}

func (r *vehicleRepo) CountPerType() ([]models.LabelCount, error) {
	var rows []models.LabelCount
	err := r.db.Table("vehicles").
		Select("vehicle_types.name as label, COUNT(vehicles.id) as count").
		Joins("JOIN vehicle_types ON vehicle_types.id = vehicles.type_id").
		Group("vehicle_types.name").
		Order("count DESC").
		Scan(&rows).Error
	return rows, translate(err)
}
