package gormstore

import (
	"garagepro-backend/models"

	"gorm.io/gorm"
)

type repairItemRepo struct {
	db *gorm.DB
}

func (r *repairItemRepo) Find(bookingID uint, partID string) (models.RepairItem, error) {
	var item models.RepairItem
	err := r.db.First(&item, "booking_id = ? AND part_id = ?", bookingID, partID).Error
	return item, translate(err)
}

func (r *repairItemRepo) ListByBooking(bookingID uint) ([]models.RepairItemLine, error) {
	var lines []models.RepairItemLine
	err := r.db.Table("repair_items").
		Select(`repair_items.part_id,
			parts.name as part_name,
			parts.marque,
			repair_items.quantity,
			repair_items.unit_price,
			repair_items.quantity * repair_items.unit_price as subtotal`).
		Joins("JOIN parts ON parts.id = repair_items.part_id").
		Where("repair_items.booking_id = ?", bookingID).
		Order("repair_items.part_id").
		Scan(&lines).Error
	return lines, translate(err)
}

func (r *repairItemRepo) Create(item *models.RepairItem) error {
	return translate(r.db.Create(item).Error)
}

func (r *repairItemRepo) Update(item *models.RepairItem) error {
	return translate(r.db.Save(item).Error)
}

func (r *repairItemRepo) Delete(bookingID uint, partID string) error {
	res := r.db.Delete(&models.RepairItem{}, "booking_id = ? AND part_id = ?", bookingID, partID)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *repairItemRepo) CountByPart(partID string) (int64, error) {
	var n int64
	err := r.db.Model(&models.RepairItem{}).Where("part_id = ?", partID).Count(&n).Error
	return n, translate(err)
}

func (r *repairItemRepo) MaterialCost(bookingID uint) (float64, error) {
	var total float64
	err := r.db.Model(&models.RepairItem{}).
		Where("booking_id = ?", bookingID).
		Select("COALESCE(SUM(quantity * unit_price), 0)").
		Scan(&total).Error
	return total, translate(err)
}
