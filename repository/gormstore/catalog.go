package gormstore

import (
	"fmt"

	"garagepro-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type brandRepo struct {
	db *gorm.DB
}

func (r *brandRepo) List() ([]models.VehicleBrand, error) {
	var brands []models.VehicleBrand
	err := r.db.Order("id").Find(&brands).Error
	return brands, translate(err)
}

func (r *brandRepo) FindByID(id uint) (models.VehicleBrand, error) {
	var brand models.VehicleBrand
	err := r.db.First(&brand, "id = ?", id).Error
	return brand, translate(err)
}

func (r *brandRepo) Create(brand *models.VehicleBrand) error {
	return translate(r.db.Create(brand).Error)
}

func (r *brandRepo) Update(brand *models.VehicleBrand) error {
	return translate(r.db.Save(brand).Error)
}

func (r *brandRepo) Delete(id uint) error {
	res := r.db.Delete(&models.VehicleBrand{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

type typeRepo struct {
	db *gorm.DB
}

func (r *typeRepo) List() ([]models.VehicleType, error) {
	var types []models.VehicleType
	err := r.db.Order("id").Find(&types).Error
	return types, translate(err)
}

func (r *typeRepo) FindByID(id uint) (models.VehicleType, error) {
	var t models.VehicleType
	err := r.db.First(&t, "id = ?", id).Error
	return t, translate(err)
}

func (r *typeRepo) Create(t *models.VehicleType) error {
	return translate(r.db.Create(t).Error)
}

func (r *typeRepo) Update(t *models.VehicleType) error {
	return translate(r.db.Save(t).Error)
}

func (r *typeRepo) Delete(id uint) error {
	res := r.db.Delete(&models.VehicleType{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

type partRepo struct {
	db *gorm.DB
}

func (r *partRepo) List() ([]models.Part, error) {
	var parts []models.Part
	err := r.db.Order("id").Find(&parts).Error
	return parts, translate(err)
}

func (r *partRepo) FindByID(id string) (models.Part, error) {
	var part models.Part
	err := r.db.First(&part, "id = ?", id).Error
	return part, translate(err)
}

func (r *partRepo) FindByIDForUpdate(id string) (models.Part, error) {
	var part models.Part
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&part, "id = ?", id).Error
	return part, translate(err)
}

// MaxID compares by numeric suffix, not lexicographically, so the sequence
// survives the widening past P999.
func (r *partRepo) MaxID() (string, error) {
	var max int64
	err := r.db.Model(&models.Part{}).
		Select("COALESCE(MAX(CAST(SUBSTRING(id FROM 2) AS INTEGER)), 0)").
		Scan(&max).Error
	if err != nil {
		return "", translate(err)
	}
	if max == 0 {
		return "", nil
	}
	return fmt.Sprintf("P%03d", max), nil
}

func (r *partRepo) Create(part *models.Part) error {
	return translate(r.db.Create(part).Error)
}

func (r *partRepo) Update(part *models.Part) error {
	return translate(r.db.Save(part).Error)
}

func (r *partRepo) Delete(id string) error {
	res := r.db.Delete(&models.Part{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *partRepo) ListBelow(threshold int) ([]models.Part, error) {
	var parts []models.Part
	err := r.db.Where("quantity < ?", threshold).Order("quantity").Find(&parts).Error
	return parts, translate(err)
}
