package models

import "time"

type VehicleBrand struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

type VehicleType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

type Vehicle struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	LicensePlate string `gorm:"uniqueIndex;not null" json:"license_plate"`
	Model        string `gorm:"not null" json:"model"`
	BrandID      uint   `gorm:"index;not null" json:"brand_id"`
	TypeID       uint   `gorm:"index;not null" json:"type_id"`

	Owner *User         `gorm:"foreignKey:UserID" json:"owner,omitempty"`
	Brand *VehicleBrand `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Type  *VehicleType  `gorm:"foreignKey:TypeID" json:"type,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LabelCount is a generic (label, count) aggregate row used by reports.
type LabelCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}
