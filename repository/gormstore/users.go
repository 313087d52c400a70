package gormstore

import (
	"garagepro-backend/models"

	"gorm.io/gorm"
)

type userRepo struct {
	db *gorm.DB
}

func (r *userRepo) Create(user *models.User) error {
	return translate(r.db.Create(user).Error)
}

func (r *userRepo) FindByID(id uint) (models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	return user, translate(err)
}

func (r *userRepo) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	return user, translate(err)
}

func (r *userRepo) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id").Find(&users).Error
	return users, translate(err)
}

func (r *userRepo) ListByRole(role string) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role = ?", role).Order("id").Find(&users).Error
	return users, translate(err)
}

func (r *userRepo) Update(user *models.User) error {
	return translate(r.db.Save(user).Error)
}

func (r *userRepo) Delete(id uint) error {
	res := r.db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *userRepo) CountCustomers() (int64, error) {
	var n int64
	err := r.db.Model(&models.User{}).Where("role = ?", models.RoleCustomer).Count(&n).Error
	return n, translate(err)
}
